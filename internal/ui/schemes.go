package ui

import "github.com/charmbracelet/lipgloss"

// Scheme names the four role colors a view is drawn with. Schemes are
// fixed configuration: the dashboard cycles an index over this list and
// never mutates an entry.
type Scheme struct {
	Name      string
	BG        lipgloss.Color // table background
	FG        lipgloss.Color // table text
	Header    lipgloss.Color // header and footer text
	Highlight lipgloss.Color // alternating row background
}

// Schemes is the compiled-in scheme list. Colors are basic ANSI so the
// palette follows the terminal theme.
var Schemes = []Scheme{
	{Name: "Light", BG: lipgloss.Color("7"), FG: lipgloss.Color("0"), Header: lipgloss.Color("4"), Highlight: lipgloss.Color("6")},
	{Name: "Solarized Light", BG: lipgloss.Color("3"), FG: lipgloss.Color("0"), Header: lipgloss.Color("4"), Highlight: lipgloss.Color("6")},
	{Name: "Solarized Dark", BG: lipgloss.Color("0"), FG: lipgloss.Color("2"), Header: lipgloss.Color("4"), Highlight: lipgloss.Color("6")},
	{Name: "Dark", BG: lipgloss.Color("0"), FG: lipgloss.Color("7"), Header: lipgloss.Color("3"), Highlight: lipgloss.Color("5")},
	{Name: "Blue", BG: lipgloss.Color("4"), FG: lipgloss.Color("7"), Header: lipgloss.Color("3"), Highlight: lipgloss.Color("6")},
}
