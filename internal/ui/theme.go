package ui

import "github.com/charmbracelet/lipgloss"

// Theme bundles the palette for every visible region.
// Only two exist: Light and Dark.
type Theme struct {
	Name string

	Fg, Bg, Border lipgloss.Color

	Base     lipgloss.Style
	Title    lipgloss.Style
	Muted    lipgloss.Style
	Accent   lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Button   lipgloss.Style
	Focused  lipgloss.Style

	BoxChecked, BoxUnchecked string

	// Glamour standard style name used for the help overlay.
	Markdown string
}

func Light() Theme {
	return build("light", palette{
		fg: "235", bg: "255", border: "245",
		accent: "25", success: "28", errc: "160", muted: "243",
		selFg: "255", selBg: "25",
	})
}

func Dark() Theme {
	return build("dark", palette{
		fg: "252", bg: "235", border: "240",
		accent: "75", success: "42", errc: "203", muted: "245",
		selFg: "235", selBg: "75",
	})
}

// For returns the dark palette when dark is set, the light one otherwise.
func For(dark bool) Theme {
	if dark {
		return Dark()
	}
	return Light()
}

type palette struct {
	fg, bg, border               lipgloss.Color
	accent, success, errc, muted lipgloss.Color
	selFg, selBg                 lipgloss.Color
}

func build(name string, p palette) Theme {
	base := lipgloss.NewStyle().Foreground(p.fg).Background(p.bg)
	t := Theme{
		Name:   name,
		Fg:     p.fg,
		Bg:     p.bg,
		Border: p.border,
		Base:   base,

		Title:    base.Bold(true).Foreground(p.accent),
		Muted:    base.Foreground(p.muted),
		Accent:   base.Foreground(p.accent),
		Success:  base.Foreground(p.success),
		Error:    base.Foreground(p.errc).Bold(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(p.selFg).Background(p.selBg),
		Done:     base.Faint(true).Strikethrough(true),
		Button:   base.Padding(0, 1).Foreground(p.muted),
		Focused:  lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(p.selFg).Background(p.selBg),

		BoxChecked:   "☑",
		BoxUnchecked: "☐",
		Markdown:     name,
	}
	return t
}
