// Package ui provides the interactive terminal prompts used by sf-preflight.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	optionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// UI reads prompt answers from In and writes prompts to Out
type UI struct {
	In  io.Reader
	Out io.Writer

	// scanner is created once over In; a scanner reads ahead, so a fresh one
	// per prompt would swallow answers to later prompts on piped input.
	scanner *bufio.Scanner
}

// New creates a UI bound to stdin/stdout
func New() *UI {
	return &UI{In: os.Stdin, Out: os.Stdout}
}

// Confirm asks a yes/no question. A dismissal (empty answer or EOF) yields
// the default, never an error.
func (u *UI) Confirm(question string, defaultYes bool) bool {
	hint := "[y/N]"
	if defaultYes {
		hint = "[Y/n]"
	}
	fmt.Fprintf(u.Out, "%s %s ", promptStyle.Render(question), hintStyle.Render(hint))

	answer, ok := u.readLine()
	if !ok || answer == "" {
		return defaultYes
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		return defaultYes
	}
}

// Select presents a numbered list and returns the chosen index. A dismissal
// or unparseable answer returns ok=false.
func (u *UI) Select(title string, options []string) (int, bool) {
	fmt.Fprintln(u.Out, promptStyle.Render(title))
	for i, option := range options {
		fmt.Fprintf(u.Out, "  %s %s\n", hintStyle.Render(strconv.Itoa(i+1)+"."), optionStyle.Render(option))
	}
	fmt.Fprintf(u.Out, "%s ", hintStyle.Render("Choice:"))

	answer, ok := u.readLine()
	if !ok || answer == "" {
		return 0, false
	}
	choice, err := strconv.Atoi(answer)
	if err != nil || choice < 1 || choice > len(options) {
		return 0, false
	}
	return choice - 1, true
}

func (u *UI) readLine() (string, bool) {
	if u.scanner == nil {
		u.scanner = bufio.NewScanner(u.In)
	}
	if !u.scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(u.scanner.Text()), true
}
