package health

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Avinava/sf-preflight/internal/config"
	"github.com/Avinava/sf-preflight/internal/probe"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Render produces the health check summary: issues first, then warnings,
// then informational lines.
func Render(r *Result, cfg *config.Settings) string {
	var issues, warnings, ok []string

	collectRuntime(&issues, &warnings, &ok, r.Node, cfg.Node.MinMajor,
		"Install Node.js "+fmt.Sprint(cfg.Node.MinMajor)+" or newer from https://nodejs.org")
	collectRuntime(&issues, &warnings, &ok, r.Java, cfg.Java.MinMajor,
		"Install a Java "+fmt.Sprint(cfg.Java.MinMajor)+"+ runtime (required by the Apex language server)")

	if r.CLI.Installed {
		ok = append(ok, successStyle.Render("✓")+" Salesforce CLI "+r.CLI.Version)
	} else {
		issues = append(issues, errorStyle.Render("✗")+" Salesforce CLI is not installed"+
			subtleStyle.Render(" ("+probe.SFInstallCommand+")"))
	}

	collectSet(&issues, &ok, r.Plugins, func(name string) string {
		return probe.PluginInstallCommand(name)
	})
	collectSet(&issues, &ok, r.Packages, func(name string) string {
		return probe.PackageInstallCommand(name)
	})

	var b strings.Builder
	b.WriteString(titleStyle.Render("Environment Health") + "\n")

	for _, line := range issues {
		b.WriteString("  " + line + "\n")
	}
	for _, line := range warnings {
		b.WriteString("  " + line + "\n")
	}
	for _, line := range ok {
		b.WriteString("  " + line + "\n")
	}

	if r.IsProject && r.Project != nil {
		b.WriteString("  " + successStyle.Render("✓") + " Salesforce DX project: " + r.Project.Name + "\n")
	} else {
		b.WriteString("  " + subtleStyle.Render("· Not a Salesforce DX project") + "\n")
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func collectRuntime(issues, warnings, ok *[]string, s probe.Status, floor int, remedy string) {
	switch {
	case !s.Installed:
		// A missing Node.js is an issue; a missing Java only a warning. The
		// severity split mirrors Classify.
		if s.Name == "Java" {
			*warnings = append(*warnings, warningStyle.Render("⚠")+" "+s.Name+" is not installed"+
				subtleStyle.Render(" — "+remedy))
		} else {
			*issues = append(*issues, errorStyle.Render("✗")+" "+s.Name+" is not installed"+
				subtleStyle.Render(" — "+remedy))
		}
	case !s.Valid:
		*warnings = append(*warnings, warningStyle.Render("⚠")+fmt.Sprintf(" %s %s is below the required major version %d",
			s.Name, s.Version, floor)+subtleStyle.Render(" — "+remedy))
	default:
		*ok = append(*ok, successStyle.Render("✓")+fmt.Sprintf(" %s %s", s.Name, s.Version))
	}
}

func collectSet(issues, ok *[]string, s probe.SetStatus, installCmd func(string) string) {
	for _, name := range s.Missing {
		*issues = append(*issues, errorStyle.Render("✗")+" "+s.Name+": "+name+" is missing"+
			subtleStyle.Render(" ("+installCmd(name)+")"))
	}
	for _, name := range s.Installed {
		*ok = append(*ok, successStyle.Render("✓")+" "+s.Name+": "+name)
	}
	if s.Error != "" && len(s.Missing) == 0 && len(s.Installed) == 0 {
		*issues = append(*issues, errorStyle.Render("✗")+" "+s.Name+": "+s.Error)
	}
}

// RenderStatusLine produces the one-line indicator for the status surface
func RenderStatusLine(v Verdict) string {
	switch v {
	case VerdictOK:
		return successStyle.Render("✓ sf-preflight: environment healthy")
	case VerdictWarning:
		return warningStyle.Render("⚠ sf-preflight: environment has warnings")
	default:
		return errorStyle.Render("✗ sf-preflight: environment has issues")
	}
}
