package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TileSize is the rendered size of one map cell in pixels.
	TileSize = 64
	// AtlasCell is the size of one cell in the tileset image.
	AtlasCell = 16

	DefaultMapWidth  = 30
	DefaultMapHeight = 17

	PlayerSpeed = 5.0
	SpriteCell  = 32
	SpriteScale = 6
	PlayerSize  = SpriteCell * SpriteScale

	FrameDelay      = 8
	AnimationFrames = 4

	// GroundRowLimit is the last atlas row considered ground when the
	// editor infers a layer from a tile.
	GroundRowLimit = 2
)
