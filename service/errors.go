package service

import (
	"errors"
	"fmt"
)

var (
	// ErrLoad matches every catalog load failure
	ErrLoad = errors.New("catalog load failed")
	// ErrProductNotFound is returned by lookups for an unknown product code
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidImagePath is returned for image paths outside the static directory
	ErrInvalidImagePath = errors.New("invalid image path")
)

// LoadError is a transport or structural failure while loading the catalog
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load catalog from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrLoad) true for every LoadError
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}
