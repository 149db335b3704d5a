package tempeval

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidThreshold indicates an IoU threshold outside (0, 1].
	ErrInvalidThreshold = errors.New("tempeval: threshold must be in (0, 1]")

	// ErrNoInput indicates no input files were given.
	ErrNoInput = errors.New("tempeval: no input files")

	// ErrLoadFile indicates an input file could not be read or decoded.
	ErrLoadFile = errors.New("tempeval: cannot load file")

	// ErrInvalidRecord indicates a record is missing a required field.
	ErrInvalidRecord = errors.New("tempeval: invalid record")
)
