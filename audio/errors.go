package audio

import "errors"

var (
	ErrDeviceInit    = errors.New("audio: device init failed")
	ErrContextClosed = errors.New("audio: context closed")
	ErrTrackNotFound = errors.New("audio: track not found")
	ErrTrackExists   = errors.New("audio: track already exists")
	ErrNilSound      = errors.New("audio: nil sound")
)
