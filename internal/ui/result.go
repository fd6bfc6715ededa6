package ui

import (
	"fmt"
	"strings"
)

// ResultType indicates success or failure
type ResultType int

const (
	ResultSuccess ResultType = iota
	ResultFailure
)

// Result represents a result box
type Result struct {
	Type    ResultType
	Title   string  // e.g., "Lighting applied"
	Details []Field // Key-value details to display
	Error   error   // Error (for failure results)
	Hint    string  // Troubleshooting text, may span lines
	Width   int
}

// NewSuccessResult creates a success result box
func NewSuccessResult(title string, details ...Field) *Result {
	return &Result{
		Type:    ResultSuccess,
		Title:   title,
		Details: details,
		Width:   GetTerminalWidth(),
	}
}

// NewFailureResult creates a failure result box
func NewFailureResult(title string, err error, hint string) *Result {
	return &Result{
		Type:  ResultFailure,
		Title: title,
		Error: err,
		Hint:  hint,
		Width: GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (r *Result) SetWidth(width int) *Result {
	r.Width = width
	return r
}

// Render returns the styled result box as a string
func (r *Result) Render() string {
	width := r.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	if r.Type == ResultFailure {
		return ErrorBoxStyle(width).Render(r.failureContent())
	}
	return SuccessBoxStyle(width).Render(r.successContent())
}

func (r *Result) successContent() string {
	lines := []string{
		"",
		SuccessTitleStyle.Render(fmt.Sprintf("%s  %s", SuccessMarker, r.Title)),
	}
	if len(r.Details) > 0 {
		lines = append(lines, "")
		for _, f := range r.Details {
			lines = append(lines, renderField(f))
		}
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (r *Result) failureContent() string {
	lines := []string{
		"",
		ErrorTitleStyle.Render(fmt.Sprintf("%s  FAILED  ─  %s", FailureMarker, r.Title)),
		"",
	}

	if r.Error != nil {
		lines = append(lines, ErrorMessageStyle.Render("Error: "+r.Error.Error()), "")
	}

	if r.Hint != "" {
		for _, line := range strings.Split(r.Hint, "\n") {
			lines = append(lines, TroubleshootingItemStyle.Render(line))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// String implements fmt.Stringer
func (r *Result) String() string {
	return r.Render()
}
