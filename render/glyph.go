package render

// GlyphWidth and GlyphHeight are the block digit dimensions in cells
const (
	GlyphWidth  = 3
	GlyphHeight = 5
)

// digitGlyphs are 3x5 bitmaps, one row per string, '#' marks a lit cell
var digitGlyphs = [10][GlyphHeight]string{
	{"###", "#.#", "#.#", "#.#", "###"},
	{".#.", "##.", ".#.", ".#.", "###"},
	{"###", "..#", "###", "#..", "###"},
	{"###", "..#", "###", "..#", "###"},
	{"#.#", "#.#", "###", "..#", "..#"},
	{"###", "#..", "###", "..#", "###"},
	{"###", "#..", "###", "#.#", "###"},
	{"###", "..#", ".#.", ".#.", ".#."},
	{"###", "#.#", "###", "#.#", "###"},
	{"###", "#.#", "###", "..#", "###"},
}

// Glyph returns the bitmap for a decimal digit rune
func Glyph(r rune) ([GlyphHeight]string, bool) {
	if r < '0' || r > '9' {
		return [GlyphHeight]string{}, false
	}
	return digitGlyphs[r-'0'], true
}

// GlyphLit reports whether cell (col,row) of the digit r is lit
func GlyphLit(r rune, col, row int) bool {
	g, ok := Glyph(r)
	if !ok || row < 0 || row >= GlyphHeight || col < 0 || col >= GlyphWidth {
		return false
	}
	return g[row][col] == '#'
}
