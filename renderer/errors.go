package renderer

import "errors"

var (
	ErrInvalidFrameDims   = errors.New("renderer: frame dimensions must be non-zero")
	ErrInvalidSampleCount = errors.New("renderer: samples per pixel must be non-zero")
	ErrInvalidBounceCount = errors.New("renderer: number of bounces must be non-zero")
	ErrInvalidWorkerCount = errors.New("renderer: worker count must not be negative")
	ErrSceneNotDefined    = errors.New("renderer: no scene defined")
	ErrCameraNotDefined   = errors.New("renderer: no camera defined")
	ErrInterrupted        = errors.New("renderer: interrupted while rendering")
)
