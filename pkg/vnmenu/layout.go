package vnmenu

// RootHeight is the height in rows of the root command bar.
const RootHeight = 3

// Rect is a screen rectangle in cells.
type Rect struct {
	X, Y, Width, Height int
}

// Layout positions the overlay's windows on screen.
type Layout struct {
	Root  Rect
	Panel Rect
}

// ComputeLayout puts the root bar across the top of the screen and tiles the panel
// below it, filling the remaining height.
func ComputeLayout(width, height int) Layout {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	root := Rect{X: 0, Y: 0, Width: width, Height: RootHeight}
	panel := Rect{X: 0, Y: RootHeight, Width: width, Height: height - RootHeight}
	if panel.Height < 0 {
		panel.Height = 0
	}

	return Layout{Root: root, Panel: panel}
}
