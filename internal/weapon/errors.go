package weapon

import "errors"

var (
	// ErrNotFound is returned when a weapon script does not exist.
	ErrNotFound = errors.New("not found")
	// ErrIO is returned when a weapon script exists but cannot be read.
	ErrIO = errors.New("i/o error")
	// ErrMalformedField is returned when a recognized key has no extractable
	// value, or an expected key is missing from the crosshair block.
	ErrMalformedField = errors.New("malformed field")
	// ErrMissingRequiredField is returned when an explosion-capable weapon
	// has no ExplosionEffect key.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrUnsupportedOperation is returned when an explosion change is
	// requested for a weapon that does not use explosions.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)
