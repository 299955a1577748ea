package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bonsai/internal/bonsai"
	"bonsai/internal/shop"
)

var gameStyles = struct {
	title   lipgloss.Style
	env     lipgloss.Style
	stats   lipgloss.Style
	state   lipgloss.Style
	warning lipgloss.Style
	menu    lipgloss.Style
	help    lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#87D787")).
		Padding(0, 1),

	env: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8787FF")),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87D787")).
		Width(36),

	state: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#D7D787")),

	warning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF8787")),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#87D787")),

	help: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#626262")),
}

// treeArt returns a small sketch of the tree for the given growth stage.
func treeArt(stage bonsai.GrowthStage) string {
	switch stage {
	case bonsai.Seedling:
		return "  .\n  |\n _|_"
	case bonsai.Sprout:
		return "  ,\n  |/\n _|_"
	case bonsai.Sapling:
		return " \\|/\n  |\n _|_"
	case bonsai.YoungTree:
		return " \\\"/\n--|--\n _|_"
	case bonsai.Mature:
		return "\\\\\"//\n--|--\n _|_"
	default: // Ancient
		return "\\\\\"//\n==|==\n_/|\\_"
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.Quitting {
		return "The tree rests. Goodbye!\n"
	}
	if m.InShop {
		return m.shopView()
	}

	eng := m.Engine
	title := gameStyles.title.Render(fmt.Sprintf("%s — %s, level %d", eng.Name(), eng.Stage(), eng.Level()))

	clock := eng.Clock()
	period := bonsai.PeriodFor(clock.Hour)
	env := gameStyles.env.Render(fmt.Sprintf("%s (%s, bonus x%.1f)", eng.Describe(), period, bonsai.BonusFactor(clock.Hour)))

	stateLine := gameStyles.state.Render(fmt.Sprintf("Mood: %s  Activity: %s  Wellbeing: %.0f",
		eng.Mood(), eng.Activity(), eng.Wellbeing()))

	var condLine string
	if cond := eng.Condition(); cond != bonsai.Healthy {
		condLine = gameStyles.warning.Render("Condition: " + cond.String())
	} else {
		condLine = gameStyles.state.Render("Condition: healthy")
	}

	wallet := gameStyles.state.Render(fmt.Sprintf("Credits: %d", m.Wallet.Credits))

	sections := []string{
		title,
		"",
		gameStyles.stats.Render(treeArt(eng.Stage())),
		"",
		env,
		stateLine,
		condLine,
		wallet,
		"",
		m.renderStats(),
		"",
		m.renderMenu(),
	}

	if lines := m.messages.lines; len(lines) > 0 {
		sections = append(sections, "", gameStyles.env.Render(strings.Join(lines, "\n")))
	}

	sections = append(sections, "",
		gameStyles.help.Render("arrows move • enter selects • f cycles food • s shop • q quits"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStats() string {
	stats := m.Engine.Stats()
	var b strings.Builder
	for i, name := range bonsai.AllStats {
		if i > 0 {
			b.WriteString("\n")
		}
		value := stats.Get(name)
		b.WriteString(fmt.Sprintf("%-12s [%s] %3.0f%%", name.Label()+":", makeBar(value), value))
	}
	return gameStyles.stats.Render(b.String())
}

// makeBar renders a ten-cell gauge.
func makeBar(value float64) string {
	filled := int(value / 10)
	var bar strings.Builder
	for i := 0; i < 10; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}
	return bar.String()
}

func (m Model) renderMenu() string {
	labels := make([]string, 0, menuEntries)
	for _, a := range bonsai.Actions {
		name := string(a)
		label := strings.ToUpper(name[:1]) + name[1:]
		if a == bonsai.ActionFeed {
			label = fmt.Sprintf("Feed (%s)", bonsai.FoodKinds[m.FoodIndex])
		}
		labels = append(labels, label)
	}
	labels = append(labels, "Shop", "Quit")

	var b strings.Builder
	for i, label := range labels {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", cursor, label))
	}
	return gameStyles.menu.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) shopView() string {
	title := gameStyles.title.Render(fmt.Sprintf("Shop — %d credits", m.Wallet.Credits))

	var b strings.Builder
	for i, item := range shop.Catalog() {
		cursor := " "
		if m.ShopChoice == i {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %-16s %3d credits\n", cursor, item.Name, item.Cost))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		gameStyles.menu.Render(strings.TrimRight(b.String(), "\n")),
		"",
		gameStyles.help.Render("enter buys • esc returns • q quits"),
	)
}
