package ui

import (
	"fmt"
	"strings"
)

// Renderer handles all CLI output formatting.
type Renderer struct{}

// NewRenderer creates a new renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// WelcomeMessage returns the styled banner shown at startup.
func (r *Renderer) WelcomeMessage() string {
	var sb strings.Builder

	title := TitleStyle.Render(IconWizard + " Taraplan")
	subtitle := Subtle.Render("LLM-powered implementation planner")

	sb.WriteString(fmt.Sprintf("%s - %s\n", title, subtitle))
	return sb.String()
}

// MemoryBankMessage reports whether a memory bank was found at startup.
func (r *Renderer) MemoryBankMessage(found bool) string {
	if found {
		return SuccessStyle.Render(IconFolder+" Memory bank loaded from memory-bank/") + "\n"
	}
	return WarningStyle.Render(IconTip+" Run 'taraplan init' to create a memory bank") + "\n"
}

// ErrorMessage formats an error message.
func (r *Renderer) ErrorMessage(err error) string {
	return ErrorStyle.Render(fmt.Sprintf("%s Error: %v", IconError, err))
}

// WarningMessage formats a warning message.
func (r *Renderer) WarningMessage(msg string) string {
	return WarningStyle.Render(fmt.Sprintf("%s %s", IconWarning, msg))
}

// InfoMessage formats an info message.
func (r *Renderer) InfoMessage(msg string) string {
	return InfoStyle.Render(fmt.Sprintf("%s %s", IconInfo, msg))
}

// SuccessMessage formats a success message.
func (r *Renderer) SuccessMessage(msg string) string {
	return SuccessStyle.Render(fmt.Sprintf("%s %s", IconSuccess, msg))
}

// TipMessage formats a hint for the user.
func (r *Renderer) TipMessage(msg string) string {
	return InfoStyle.Render(fmt.Sprintf("%s %s", IconTip, msg))
}

// Statusf formats a transient progress line.
func (r *Renderer) Statusf(format string, args ...interface{}) string {
	return StatusStyle.Render(fmt.Sprintf(format, args...))
}

// RawResponse formats an unparseable model response for inspection.
func (r *Renderer) RawResponse(raw string) string {
	var sb strings.Builder
	sb.WriteString(Subtle.Render("--- raw model response ---"))
	sb.WriteString("\n")
	sb.WriteString(raw)
	sb.WriteString("\n")
	sb.WriteString(Subtle.Render("--------------------------"))
	return sb.String()
}
