package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SidebarItem represents an item in the sidebar.
type SidebarItem struct {
	ID          string
	Title       string
	Description string
	Icon        string
	IsCategory  bool
	Category    string
	Completed   bool
	// BestScore is the best percentage reached, or -1 if never played.
	BestScore int
	Children  []SidebarItem
}

// SidebarModel represents the left sidebar with collapsible categories.
type SidebarModel struct {
	items          []SidebarItem
	cursor         int
	expanded       map[string]bool
	width          int
	height         int
	focused        bool
	styles         SidebarStyles
	completedCount int
	totalCount     int
	coins          int
}

// SidebarStyles contains styles for the sidebar.
type SidebarStyles struct {
	Container     lipgloss.Style
	FocusedBorder lipgloss.Style
	Heading       lipgloss.Style
	Category      lipgloss.Style
	Item          lipgloss.Style
	Active        lipgloss.Style
	Earned        lipgloss.Style
	Score         lipgloss.Style
	Muted         lipgloss.Style
}

// NewSidebarStyles creates adaptive sidebar styles.
func NewSidebarStyles() SidebarStyles {
	border := lipgloss.AdaptiveColor{Light: "#bcc0cc", Dark: "#45475a"}
	primary := lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#89b4fa"}
	text := lipgloss.AdaptiveColor{Light: "#4c4f69", Dark: "#cdd6f4"}
	subtext := lipgloss.AdaptiveColor{Light: "#6c6f85", Dark: "#a6adc8"}
	textMuted := lipgloss.AdaptiveColor{Light: "#8c8fa1", Dark: "#6c7086"}
	earned := lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#a6e3a1"}
	coin := lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#f9e2af"}

	frame := lipgloss.NewStyle().Padding(1, 1).Border(lipgloss.RoundedBorder())

	return SidebarStyles{
		Container:     frame.BorderForeground(border),
		FocusedBorder: frame.BorderForeground(primary),
		Heading:       lipgloss.NewStyle().Bold(true).Foreground(primary),
		Category:      lipgloss.NewStyle().Bold(true).Foreground(text),
		Item:          lipgloss.NewStyle().Foreground(subtext),
		Active:        lipgloss.NewStyle().Bold(true).Foreground(primary),
		Earned:        lipgloss.NewStyle().Foreground(earned),
		Score:         lipgloss.NewStyle().Foreground(coin),
		Muted:         lipgloss.NewStyle().Foreground(textMuted),
	}
}

// NewSidebarModel creates a new sidebar model.
func NewSidebarModel() SidebarModel {
	return SidebarModel{
		expanded: make(map[string]bool),
		styles:   NewSidebarStyles(),
	}
}

// SetItems sets the sidebar items, keeping the cursor on the same item when
// it is still present.
func (m *SidebarModel) SetItems(items []SidebarItem) {
	var selected string
	if item := m.SelectedItem(); item != nil {
		selected = item.ID
	}

	for _, item := range items {
		if _, seen := m.expanded[item.ID]; item.IsCategory && !seen {
			m.expanded[item.ID] = true
		}
	}
	m.items = items
	m.cursor = 0
	for i, item := range m.flattenItems() {
		if item.ID == selected {
			m.cursor = i
			break
		}
	}

	// Count total and completed
	m.totalCount = 0
	m.completedCount = 0
	for _, item := range items {
		for _, child := range item.Children {
			m.totalCount++
			if child.Completed {
				m.completedCount++
			}
		}
	}
}

// SetCoins sets the coin total shown under the list.
func (m *SidebarModel) SetCoins(coins int) {
	m.coins = coins
}

// SetSize sets the sidebar dimensions.
func (m *SidebarModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetFocus sets the focus state.
func (m *SidebarModel) SetFocus(focused bool) {
	m.focused = focused
}

// IsFocused returns the focus state.
func (m SidebarModel) IsFocused() bool {
	return m.focused
}

// SelectedItem returns the currently selected item.
func (m SidebarModel) SelectedItem() *SidebarItem {
	flat := m.flattenItems()
	if m.cursor >= 0 && m.cursor < len(flat) {
		return flat[m.cursor]
	}
	return nil
}

// flattenItems returns a flat list of visible items.
func (m SidebarModel) flattenItems() []*SidebarItem {
	var result []*SidebarItem
	for i := range m.items {
		result = append(result, &m.items[i])
		if m.items[i].IsCategory && m.expanded[m.items[i].ID] {
			for j := range m.items[i].Children {
				result = append(result, &m.items[i].Children[j])
			}
		}
	}
	return result
}

// Update handles input.
func (m SidebarModel) Update(msg tea.Msg) (SidebarModel, tea.Cmd) {
	if !m.focused {
		return m, nil
	}

	flat := m.flattenItems()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			if m.cursor < len(flat)-1 {
				m.cursor++
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("left", "h"))):
			// Collapse category
			if item := m.SelectedItem(); item != nil && item.IsCategory {
				m.expanded[item.ID] = false
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("right", "l"))):
			// Expand category
			if item := m.SelectedItem(); item != nil && item.IsCategory {
				m.expanded[item.ID] = true
			}
		case key.Matches(msg, key.NewBinding(key.WithKeys("g"))):
			m.cursor = 0
		case key.Matches(msg, key.NewBinding(key.WithKeys("G"))):
			m.cursor = len(flat) - 1
		}
	}

	return m, nil
}

// View renders the sidebar.
func (m SidebarModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Heading.Render("🦉 Games") + "\n\n")

	for i, item := range m.flattenItems() {
		active := i == m.cursor
		if item.IsCategory {
			b.WriteString(m.renderCategory(item, active) + "\n")
		} else {
			b.WriteString(m.renderGame(item, active) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("🏅 %d/%d badges", m.completedCount, m.totalCount)) + "\n")
	b.WriteString(m.styles.Score.Render(fmt.Sprintf("🪙 %d coins", m.coins)) + "\n")

	container := m.styles.Container
	if m.focused {
		container = m.styles.FocusedBorder
	}

	return container.
		Width(m.width - 2).
		Height(m.height - 2).
		Render(b.String())
}

func (m SidebarModel) renderCategory(item *SidebarItem, active bool) string {
	arrow := "▸"
	if m.expanded[item.ID] {
		arrow = "▾"
	}
	earned := 0
	for _, c := range item.Children {
		if c.Completed {
			earned++
		}
	}

	label := fmt.Sprintf("%s %s %s", arrow, item.Icon, item.Title)
	count := m.styles.Muted.Render(fmt.Sprintf(" %d/%d", earned, len(item.Children)))
	if active {
		return m.styles.Active.Render(label) + count
	}
	return m.styles.Category.Render(label) + count
}

func (m SidebarModel) renderGame(item *SidebarItem, active bool) string {
	marker := "○"
	switch {
	case item.Completed:
		marker = "🏅"
	case item.BestScore >= 0:
		marker = "◐"
	}

	var score string
	if item.BestScore >= 0 {
		score = fmt.Sprintf(" %d%%", item.BestScore)
	}

	title := truncate(item.Title, m.width-10-len(score))
	label := fmt.Sprintf("   %s %s", marker, title)

	style := m.styles.Item
	switch {
	case active:
		style = m.styles.Active
	case item.Completed:
		style = m.styles.Earned
	}
	return style.Render(label) + m.styles.Score.Render(score)
}

// truncate shortens s to at most width cells.
func truncate(s string, width int) string {
	if width < 4 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	for lipgloss.Width(string(r)) > width-2 {
		r = r[:len(r)-1]
	}
	return string(r) + ".."
}
