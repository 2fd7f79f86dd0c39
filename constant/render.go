package constant

// Display Geometry
const (
	// WindowedWidth is the windowed presentation width in pixels
	WindowedWidth = 800

	// WindowedHeight is the windowed presentation height in pixels
	WindowedHeight = 600

	// CellWidth is the pixel width covered by one terminal cell
	CellWidth = 10

	// CellHeight is the pixel height covered by one terminal cell
	// Terminal cells are roughly twice as tall as wide
	CellHeight = 20
)

// Score Labels
const (
	// ScoreFontSize is the label height in pixels
	ScoreFontSize = 40

	// ScoreMargin is the label offset from the top and left edges
	ScoreMargin = 10

	// ScoreRightInset is the distance of the right-hand label from the right edge
	ScoreRightInset = 100
)
