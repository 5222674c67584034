package config

import "errors"

var (
	// ErrUnknownPreset indicates a preset name with no entry in Presets.
	ErrUnknownPreset = errors.New("config: unknown preset")

	// ErrInvalidWindow indicates a non-positive window size or frame rate.
	ErrInvalidWindow = errors.New("config: invalid window settings")

	// ErrUnknownBackend indicates a renderer backend that is not built in.
	ErrUnknownBackend = errors.New("config: unknown backend")

	// ErrDuplicateSection indicates two page sections sharing an id.
	ErrDuplicateSection = errors.New("config: duplicate section id")
)
