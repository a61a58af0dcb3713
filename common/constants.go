package common

// Playfield geometry. The field is a 12x12 grid of tiles; walls occupy the
// left, right, and bottom edges.
const (
	FieldWidth  = 768
	FieldHeight = 768
	TileSize    = 64
)

// Sprite footprints shared by the factories and the texture builder.
const (
	PlayerSize = 64
	BallSize   = 64
	PetalSize  = 32
	HeartSize  = 32
)
