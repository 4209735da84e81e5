package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
)

// markdownMargin is the left margin used for terminal markdown rendering.
const markdownMargin = 2

var codeTheme string

// ConfigureMarkdownCodeTheme sets the Chroma theme used for code blocks in
// rendered markdown (e.g. "monokai", "dracula", "github").
func ConfigureMarkdownCodeTheme(theme string) {
	codeTheme = theme
}

// RenderMarkdown renders markdown content for terminal display using the
// shared mdq style configuration.
func RenderMarkdown(content string, width int) (string, error) {
	if width <= 0 {
		width = DefaultTermWidth
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(mdqMarkdownStyle()),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}

	rendered, err := r.Render(content)
	if err != nil {
		return "", err
	}

	// glamour adds trailing newlines; normalize to a single one.
	return strings.TrimRight(rendered, "\n") + "\n", nil
}

func mdqMarkdownStyle() ansi.StyleConfig {
	muted := mdStringPtr("8")
	accent := mdStringPtr(AccentColor())

	return ansi.StyleConfig{
		Document: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				BlockPrefix: "\n",
				BlockSuffix: "\n",
			},
			Margin: mdUintPtr(markdownMargin),
		},
		Heading: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: accent,
				Bold:  mdBoolPtr(true),
			},
		},
		BlockQuote: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: muted,
			},
			Indent:      mdUintPtr(1),
			IndentToken: mdStringPtr("│ "),
		},
		Code: ansi.StyleBlock{
			StylePrimitive: ansi.StylePrimitive{
				Color: accent,
			},
		},
		CodeBlock: ansi.StyleCodeBlock{
			StyleBlock: ansi.StyleBlock{
				Margin: mdUintPtr(markdownMargin),
			},
			Theme: codeTheme,
		},
		HorizontalRule: ansi.StylePrimitive{
			Color:  muted,
			Format: "\n--------\n",
		},
	}
}

func mdStringPtr(s string) *string { return &s }
func mdUintPtr(u uint) *uint       { return &u }
func mdBoolPtr(b bool) *bool       { return &b }
