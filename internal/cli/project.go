package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Avinava/sf-preflight/internal/project"
)

var (
	projectTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	projectKeyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	projectValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	projectWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// ProjectParams contains parameters for the Project command
type ProjectParams struct {
	CommonParams
}

// Project renders the parsed project descriptor, or a short message when no
// workspace root holds one
func Project(params ProjectParams) error {
	a, err := newApp(params.CommonParams)
	if err != nil {
		return err
	}

	info, found := a.detector.Info()
	if !found {
		fmt.Fprintln(a.out, "Not a Salesforce DX project (no "+project.DescriptorName+" found)")
		return nil
	}

	var b strings.Builder
	b.WriteString(projectTitleStyle.Render("Salesforce DX Project") + "\n")
	b.WriteString("  " + projectKeyStyle.Render("Name: ") + projectValueStyle.Render(info.Name) + "\n")
	b.WriteString("  " + projectKeyStyle.Render("Path: ") + projectValueStyle.Render(info.Path) + "\n")
	if info.Namespace != "" {
		b.WriteString("  " + projectKeyStyle.Render("Namespace: ") + projectValueStyle.Render(info.Namespace) + "\n")
	}
	b.WriteString("  " + projectKeyStyle.Render("API version: ") + projectValueStyle.Render(info.APIVersion) + "\n")

	if len(info.PackageDirectories) > 0 {
		b.WriteString("  " + projectKeyStyle.Render("Package directories:") + "\n")
		for _, dir := range info.PackageDirectories {
			marker := ""
			if dir.Default {
				marker = " (default)"
			}
			b.WriteString("    " + projectValueStyle.Render(dir.Path+marker) + "\n")
		}
	}

	warnings, err := project.ValidateDescriptor(info.Path)
	if err == nil {
		for _, w := range warnings {
			b.WriteString("  " + projectWarnStyle.Render("⚠ "+w) + "\n")
		}
	}

	fmt.Fprint(a.out, b.String())
	return nil
}
