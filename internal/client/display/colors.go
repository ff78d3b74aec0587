package display

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const reset = "\033[0m"

// Palette holds the escape sequences used for rendering. The zero value
// renders plain text.
type Palette struct {
	Reset     string
	Black     string
	Red       string
	Highlight string
	Dim       string
	Info      string
	Error     string
	Prompt    string
}

// NewPalette builds a 256-color palette from theme indexes
func NewPalette(black, red, highlight, dim int) Palette {
	return Palette{
		Reset:     reset,
		Black:     color256(black),
		Red:       color256(red),
		Highlight: color256(highlight),
		Dim:       color256(dim),
		Info:      "\033[36m",
		Error:     "\033[31m",
		Prompt:    "\033[33m",
	}
}

func color256(idx int) string {
	return fmt.Sprintf("\033[38;5;%dm", idx)
}

// ColorEnabled reports whether f is an interactive terminal
func ColorEnabled(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (p Palette) paint(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + p.Reset
}

// PromptText returns a colored prompt string
func (p Palette) PromptText(text string) string {
	return p.paint(p.Prompt, text+" > ")
}
