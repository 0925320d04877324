package tui

import (
	"github.com/SanjoDeundiak/lazy-launcher/pkg/lib/config"
	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	accent lipgloss.Color
	text   lipgloss.Color
	muted  lipgloss.Color
	ok     lipgloss.Color
	bad    lipgloss.Color
	cursor lipgloss.Color
}

var (
	darkPalette = palette{
		accent: lipgloss.Color("39"),  // blue
		text:   lipgloss.Color("15"),  // white
		muted:  lipgloss.Color("242"), // gray
		ok:     lipgloss.Color("76"),  // green
		bad:    lipgloss.Color("196"), // red
		cursor: lipgloss.Color("236"),
	}
	lightPalette = palette{
		accent: lipgloss.Color("25"),
		text:   lipgloss.Color("0"),
		muted:  lipgloss.Color("245"),
		ok:     lipgloss.Color("28"),
		bad:    lipgloss.Color("160"),
		cursor: lipgloss.Color("254"),
	}
)

type styles struct {
	title    lipgloss.Style
	item     lipgloss.Style
	cursor   lipgloss.Style
	path     lipgloss.Style
	logBox   lipgloss.Style
	status   lipgloss.Style
	errorMsg lipgloss.Style
	checked  lipgloss.Style
	help     lipgloss.Style
}

func newStyles(theme config.Theme) styles {
	p := darkPalette
	if theme == config.ThemeLight {
		p = lightPalette
	}
	return styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			MarginBottom(1),
		item: lipgloss.NewStyle().
			Foreground(p.text),
		cursor: lipgloss.NewStyle().
			Background(p.cursor).
			Foreground(p.text).
			Bold(true),
		path: lipgloss.NewStyle().
			Foreground(p.muted),
		logBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.muted).
			Padding(0, 1),
		status: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),
		errorMsg: lipgloss.NewStyle().
			Foreground(p.bad),
		checked: lipgloss.NewStyle().
			Foreground(p.ok).
			Bold(true),
		help: lipgloss.NewStyle().
			Foreground(p.muted),
	}
}
