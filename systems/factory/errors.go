package factory

import "errors"

var (
	// ErrNoSpace is returned when an entity needs a collider but the world
	// has no collision space yet.
	ErrNoSpace = errors.New("no collision space in world")
	// ErrMissingAudioCue is returned when a hazard's sound has no decoded
	// cue to time its removal by.
	ErrMissingAudioCue = errors.New("audio cue not registered")
	ErrUnknownHazard   = errors.New("unknown hazard kind")
)
