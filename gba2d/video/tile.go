package video

// Tile4 is an 8x8 tile at 4 bits per pixel: eight rows of one word each.
type Tile4 struct {
	Data [8]uint32
}

// Tile8 is an 8x8 tile at 8 bits per pixel: eight rows of two words each.
type Tile8 struct {
	Data [16]uint32
}

// CharBlock4 is one 16KB character block of 4bpp tiles.
type CharBlock4 [512]Tile4

// CharBlock8 is one 16KB character block of 8bpp tiles.
type CharBlock8 [256]Tile8
