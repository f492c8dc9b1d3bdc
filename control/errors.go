package control

import (
	"errors"

	"github.com/agiangrant/skinned/theme"
)

// Errors shared with the theme package, re-exported so callers can match
// them without importing theme.
var (
	ErrBadState     = theme.ErrBadState
	ErrInvalidMask  = theme.ErrInvalidMask
	ErrUnknownImage = theme.ErrUnknownImage
	ErrNullStyle    = theme.ErrNullStyle
)

var (
	// ErrUnknownProperty is returned for an animation property id outside
	// the defined set.
	ErrUnknownProperty = errors.New("unknown animation property")

	// ErrValueSize is returned when an animation value has fewer
	// components than the property needs.
	ErrValueSize = errors.New("animation value too short")
)
