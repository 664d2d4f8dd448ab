package ui

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

const (
	sidebarOpenWidth      = 28
	sidebarCollapsedWidth = 6
	headerHeight          = 2 // breadcrumb and a blank line
	footerHeight          = 1 // status line
)

// shellLayout places the sidebar on the left and the page to its right.
type shellLayout struct {
	sidebar     View
	content     View
	sidebarOpen bool
}

var _ Layout = shellLayout{}

// Panels implements Layout.
func (l shellLayout) Panels() []Panel {
	sw := sidebarCollapsedWidth
	if l.sidebarOpen {
		sw = sidebarOpenWidth
	}
	return []Panel{
		{
			ID:   FocusSidebar,
			View: l.sidebar,
			Bounds: func(width, height int) (int, int, int, int) {
				return 0, 0, min(sw, width), height
			},
		},
		{
			ID:   FocusContent,
			View: l.content,
			Bounds: func(width, height int) (int, int, int, int) {
				x := min(sw, width)
				h := max(height-headerHeight-footerHeight, 0)
				return x, headerHeight, max(width-x-1, 0), h
			},
		},
	}
}

// FocusOrder implements Layout.
func (l shellLayout) FocusOrder() []string {
	return []string{FocusSidebar, FocusContent}
}

// panelBounds returns the bounds of the panel with id, or zeros.
func panelBounds(l Layout, id string, width, height int) (x, y, w, h int) {
	for _, p := range l.Panels() {
		if p.ID == id {
			return p.Bounds(width, height)
		}
	}
	return 0, 0, 0, 0
}
