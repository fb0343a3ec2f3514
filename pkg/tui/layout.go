package tui

// Terminal size limits.
const (
	MinWidth  = 80
	MinHeight = 24
)

// Fixed chrome heights.
const (
	HeaderHeight    = 3
	StatusBarHeight = 2
)

const (
	sidebarMinWidth = 26
	sidebarMaxWidth = 38
)

// Layout contains calculated dimensions for the UI.
type Layout struct {
	Width  int
	Height int

	// SidebarWidth is shared by the game list and the question tracker.
	SidebarWidth int
	ContentWidth int
}

// NewLayout splits the terminal between the side panel and the content
// panel. Sizes below the minimum are laid out as if they were the minimum.
func NewLayout(width, height int) Layout {
	width = max(width, MinWidth)
	height = max(height, MinHeight)

	sidebar := min(max(width*3/10, sidebarMinWidth), sidebarMaxWidth)

	return Layout{
		Width:        width,
		Height:       height,
		SidebarWidth: sidebar,
		// Both panels draw a two-cell border.
		ContentWidth: width - sidebar - 4,
	}
}

// MainAreaHeight returns the height between header and status bar.
func (l Layout) MainAreaHeight() int {
	return l.Height - HeaderHeight - StatusBarHeight
}

// CenteredBoxWidth returns width for a centered dialog box.
func (l Layout) CenteredBoxWidth() int {
	return min(max(l.Width/2, 30), 50)
}
