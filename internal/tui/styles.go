package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains all styling for the TUI
type Styles struct {
	// Pane styles
	Frame   lipgloss.Style
	Popup   lipgloss.Style
	Button  lipgloss.Style
	Hovered lipgloss.Style
	Pressed lipgloss.Style

	// Content styles
	Header  lipgloss.Style
	Prompt  lipgloss.Style
	Score   lipgloss.Style
	History lipgloss.Style
	Help    lipgloss.Style

	// Status styles
	Win     lipgloss.Style
	Lose    lipgloss.Style
	Draw    lipgloss.Style
	Warning lipgloss.Style
}

type palette struct {
	accent, header, text, muted, win, lose, draw, warn, hover, press string
}

var palettes = map[string]palette{
	"default": {
		accent: "#7D56F4", header: "#FAFAFA", text: "#FAFAFA", muted: "#626262",
		win: "#96CEB4", lose: "#FF6B6B", draw: "#FFEAA7", warn: "#FFD700",
		hover: "#D3D3D3", press: "#ADD8E6",
	},
	"dark": {
		accent: "#04B575", header: "#FAFAFA", text: "#DDDDDD", muted: "#4A4A4A",
		win: "#04B575", lose: "#FF6B6B", draw: "#FFEAA7", warn: "#FFD700",
		hover: "#888888", press: "#5F87AF",
	},
	"light": {
		accent: "#0000FF", header: "#FFFFFF", text: "#1A1A1A", muted: "#8A8A8A",
		win: "#008000", lose: "#C00000", draw: "#806000", warn: "#B8860B",
		hover: "#A9A9A9", press: "#4682B4",
	},
}

// Themes returns the names of the available themes
func Themes() []string {
	return []string{"default", "dark", "light", "mono"}
}

// NewStyles builds the styles for a theme. The mono theme uses no colour and
// relies on borders and bold text alone.
func NewStyles(theme string) (*Styles, error) {
	if theme == "mono" {
		return monoStyles(), nil
	}
	p, ok := palettes[theme]
	if !ok {
		return nil, fmt.Errorf("unknown theme %q", theme)
	}

	button := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(p.muted)).
		Padding(0, 2).
		Align(lipgloss.Center)

	return &Styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.accent)).
			Padding(1, 2),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color(p.accent)).
			Padding(1, 2),
		Button:  button,
		Hovered: button.BorderForeground(lipgloss.Color(p.hover)).Bold(true),
		Pressed: button.Border(lipgloss.ThickBorder()).BorderForeground(lipgloss.Color(p.press)).Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.header)).
			Background(lipgloss.Color(p.accent)).
			Padding(0, 1).
			Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)).Bold(true),
		Score:   lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		History: lipgloss.NewStyle().Foreground(lipgloss.Color(p.text)),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.muted)),

		Win:     lipgloss.NewStyle().Foreground(lipgloss.Color(p.win)).Bold(true),
		Lose:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.lose)).Bold(true),
		Draw:    lipgloss.NewStyle().Foreground(lipgloss.Color(p.draw)).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color(p.warn)).Bold(true),
	}, nil
}

func monoStyles() *Styles {
	plain := lipgloss.NewStyle()
	button := plain.Border(lipgloss.NormalBorder()).Padding(0, 2).Align(lipgloss.Center)
	bold := plain.Bold(true)
	return &Styles{
		Frame:   plain.Border(lipgloss.NormalBorder()).Padding(1, 2),
		Popup:   plain.Border(lipgloss.DoubleBorder()).Padding(1, 2),
		Button:  button,
		Hovered: button.Border(lipgloss.DoubleBorder()),
		Pressed: button.Border(lipgloss.ThickBorder()).Bold(true),
		Header:  bold.Padding(0, 1),
		Prompt:  bold,
		Score:   plain,
		History: plain,
		Help:    plain.Faint(true),
		Win:     bold,
		Lose:    bold,
		Draw:    bold,
		Warning: bold.Italic(true),
	}
}

// DisableColor forces lipgloss to render without ANSI colour sequences
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}
