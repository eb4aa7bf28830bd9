package tui

import "errors"

// ErrAborted is returned when the operator interrupts a prompt.
var ErrAborted = errors.New("tui: aborted by user")
