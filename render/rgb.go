package render

// RGB is a 24-bit color
type RGB struct {
	R, G, B uint8
}

// Game palette
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
	RGBRed   = RGB{255, 0, 0}
	RGBBlue  = RGB{0, 0, 255}
)

// Player1Color and Player2Color tint a player's paddle and score label
var (
	Player1Color = RGBRed
	Player2Color = RGBBlue
	BallColor    = RGBWhite
	Background   = RGBBlack
)
