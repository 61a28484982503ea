package version

import "errors"

var (
	// ErrInvalidVersion is returned when a string is not a valid semantic version.
	ErrInvalidVersion = errors.New("version: invalid semantic version")

	// ErrInvalidRange is returned when a range expression cannot be parsed.
	ErrInvalidRange = errors.New("version: invalid version range")
)
