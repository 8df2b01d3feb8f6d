package model

import (
	"fmt"
	"strings"
)

// ValidationError indicates bad user input when building a plant.
type ValidationError struct {
	Field   string // the field that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// StorageError indicates a load or save failure, including unparseable data.
type StorageError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to %s plants: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("failed to %s plants %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IndexError indicates a position outside the current collection.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range (collection has %d plants)", e.Index, e.Len)
}

// NotFoundError indicates a plant reference matched nothing.
type NotFoundError struct {
	Ref string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("plant %q not found", e.Ref)
}

// AmbiguousError indicates a plant reference matched more than one plant.
type AmbiguousError struct {
	Ref     string
	Matches []string
}

func (e *AmbiguousError) Error() string {
	return fmt.Sprintf("ambiguous plant %q matches: %s", e.Ref, strings.Join(e.Matches, ", "))
}
