package theme

import "errors"

var (
	// ErrBadState is returned when a string does not name a control state.
	ErrBadState = errors.New("bad state")

	// ErrInvalidMask is returned when a state mask selects no state.
	ErrInvalidMask = errors.New("invalid state mask")

	// ErrUnknownImage is returned when an image id is absent from an overlay.
	ErrUnknownImage = errors.New("unknown image")

	// ErrNullStyle is returned when an operation needs a style and none is set.
	ErrNullStyle = errors.New("null style")

	// ErrUnknownSkin is returned by the loader for a dangling skin reference.
	ErrUnknownSkin = errors.New("unknown skin")

	// ErrUnknownFont is returned by the loader when a font name cannot be resolved.
	ErrUnknownFont = errors.New("unknown font")

	// ErrUnknownStyle is returned when a style name is absent from a theme.
	ErrUnknownStyle = errors.New("unknown style")

	// ErrBadJustify is returned when a string does not name a text alignment.
	ErrBadJustify = errors.New("bad text alignment")
)
