package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)

// theme is the notes page palette. Dark mode is cosmetic and lives only
// as long as the page.
type theme struct {
	page  lipgloss.Style
	table table.Styles
}

func themeFor(dark bool) theme {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true)

	if !dark {
		styles.Selected = styles.Selected.
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))
		return theme{page: appStyle, table: styles}
	}

	styles.Header = styles.Header.Foreground(lipgloss.Color("252"))
	styles.Cell = styles.Cell.Foreground(lipgloss.Color("250"))
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("16")).
		Background(lipgloss.Color("214"))

	return theme{
		page: appStyle.
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("235")),
		table: styles,
	}
}
