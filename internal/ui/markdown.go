package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown writes markdown to w, rendered for the terminal when
// possible. If the renderer cannot be built or the input cannot be rendered,
// the raw markdown is written instead so output is never lost.
func RenderMarkdown(w io.Writer, markdown string) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Fprint(w, markdown)
		return
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		// Fallback to plain text
		fmt.Fprint(w, markdown)
		return
	}
	fmt.Fprint(w, out)
}
