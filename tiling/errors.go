package tiling

import "errors"

var (
	// ErrUnknownTileSet indicates TileSet was asked for a name it does not know.
	ErrUnknownTileSet = errors.New("tiling: unknown tile set")
	// ErrBadPort indicates a port number outside 0..15.
	ErrBadPort = errors.New("tiling: port out of range")
)
