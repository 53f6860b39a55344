package theory

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNoteName is returned for a spelling with an unknown letter or
	// an accidental mixing sharp and flat symbols.
	ErrInvalidNoteName = errors.New("invalid note name")
	// ErrUnsupportedRootName is returned when a root cannot be placed on the
	// circle of fifths, or its key would fall off the ends of the circle.
	ErrUnsupportedRootName = errors.New("unsupported root name")
	// ErrInvalidModeName is returned for a mode name outside the mode table.
	ErrInvalidModeName = errors.New("invalid mode name")
)

// NoteError reports the spelling that could not be parsed.
type NoteError struct {
	Name string
}

func (e *NoteError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidNoteName, e.Name)
}

func (e *NoteError) Unwrap() error { return ErrInvalidNoteName }

// RootError reports the root and mode whose key could not be resolved.
type RootError struct {
	Root string
	Mode Mode
}

func (e *RootError) Error() string {
	return fmt.Sprintf("%v: %q (mode %v)", ErrUnsupportedRootName, e.Root, e.Mode)
}

func (e *RootError) Unwrap() error { return ErrUnsupportedRootName }

// ModeError reports the mode name that was not recognized.
type ModeError struct {
	Name string
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("%v: %q", ErrInvalidModeName, e.Name)
}

func (e *ModeError) Unwrap() error { return ErrInvalidModeName }
