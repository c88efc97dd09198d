package flac

import "errors"

var (
	ErrMissingStreamInfo = errors.New("flac stream has no StreamInfo block")
)
