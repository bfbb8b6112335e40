package main

import (
	"errors"
	"fmt"
)

// Sentinel errors for the operational failures regrep can hit while
// searching, in the teacher's own errors.New-plus-wrapped-struct style
// (see the teacher's nfa/error.go).
// The engine itself never returns an error; these exist only at the
// I/O boundary cmd/regrep owns.
var (
	ErrNoInput = errors.New("regrep: no readable input")
	ErrStat    = errors.New("regrep: cannot stat path")
	ErrWalk    = errors.New("regrep: directory walk failed")
)

// pathError wraps one of the sentinels above with the specific path
// and underlying cause, so callers can errors.Is against the sentinel
// while still getting a useful message and errors.Unwrap chain.
type pathError struct {
	Sentinel error
	Path     string
	Err      error
}

func (e *pathError) Error() string {
	return fmt.Sprintf("%v: %s: %v", e.Sentinel, e.Path, e.Err)
}

func (e *pathError) Unwrap() error {
	return e.Err
}

func (e *pathError) Is(target error) bool {
	return target == e.Sentinel
}
