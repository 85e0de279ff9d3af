package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aka-Harsh/eventbook/internal/client/nav"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	activeTabStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).Underline(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	faintStyle     = lipgloss.NewStyle().Faint(true)
)

// render draws the single top-level view the navigator resolves to. It is
// called after every state mutation; there is no partial redraw.
func (a *App) render(ctx context.Context) {
	switch a.nav.CurrentView() {
	case nav.ViewLanding:
		a.renderLanding()
	case nav.ViewLogin:
		fmt.Fprintln(a.out, titleStyle.Render("Sign in"))
		fmt.Fprintln(a.out, faintStyle.Render("Type 'login' or 'register' to continue, 'back' for the welcome screen."))
	case nav.ViewTab:
		a.renderTabBar()
		a.renderActiveTab(ctx)
	}
}

func (a *App) renderLanding() {
	fmt.Fprintln(a.out, titleStyle.Render("eventbook: browse events, book tickets, leave reviews"))
	fmt.Fprintln(a.out, faintStyle.Render("Type 'login' to sign in or 'register' to create an account."))
}

// renderTabBar prints the tab strip for the current role with the active
// tab highlighted, the terminal stand-in for the navigation bar.
func (a *App) renderTabBar() {
	tabs := a.nav.Tabs()
	parts := make([]string, 0, len(tabs))
	for _, t := range tabs {
		if t == a.nav.ActiveTab() {
			parts = append(parts, activeTabStyle.Render(string(t)))
		} else {
			parts = append(parts, tabStyle.Render(string(t)))
		}
	}
	fmt.Fprintln(a.out, strings.Join(parts, tabStyle.Render(" | ")))
}

func (a *App) renderActiveTab(ctx context.Context) {
	switch a.nav.ActiveTab() {
	case nav.TabDashboard:
		_ = a.showDashboard(ctx)
	case nav.TabEvents:
		_ = a.showEvents(ctx)
	case nav.TabBookings:
		_ = a.showBookings(ctx)
	case nav.TabReviews:
		_ = a.showReviews(ctx)
	case nav.TabScanner:
		fmt.Fprintln(a.out, headerStyle.Render("QR scanner"))
		fmt.Fprintln(a.out, faintStyle.Render("verify <payload> checks a scanned code; lookup <reference> finds a booking."))
	}
}

// printErr reports a failure inline, next to the action that caused it.
func (a *App) printErr(msg string) {
	fmt.Fprintln(a.out, errorStyle.Render(msg))
}

func (a *App) printOK(msg string) {
	fmt.Fprintln(a.out, okStyle.Render(msg))
}

// printTable renders rows under a styled header, padding columns to the
// widest cell. Widths are recomputed per call; tables here are small.
func (a *App) printTable(headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		fmt.Fprintf(&b, "%-*s  ", widths[i], h)
	}
	fmt.Fprintln(a.out, headerStyle.Render(strings.TrimRight(b.String(), " ")))

	for _, row := range rows {
		b.Reset()
		for i, cell := range row {
			fmt.Fprintf(&b, "%-*s  ", widths[i], cell)
		}
		fmt.Fprintln(a.out, strings.TrimRight(b.String(), " "))
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, faintStyle.Render("(nothing here yet)"))
	}
}
