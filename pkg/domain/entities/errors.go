package entities

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownBike    = errors.New("unknown bike")
	ErrDivisionByZero = errors.New("division by zero")
	ErrInvalidPart    = errors.New("invalid part")
	ErrInvalidBike    = errors.New("invalid bike")
	ErrPartNotFound   = errors.New("part not found")
)

// UnknownBikeError is returned when a bike name is absent from the registry
type UnknownBikeError struct {
	Bike BikeName
}

func (e *UnknownBikeError) Error() string {
	return fmt.Sprintf("unknown bike: %q", e.Bike)
}

func (e *UnknownBikeError) Unwrap() error {
	return ErrUnknownBike
}

// DivisionByZeroError is returned when an upgrade set brings a bike's final
// weight to exactly zero, leaving power-to-weight undefined
type DivisionByZeroError struct {
	Bike        BikeName
	FinalWeight float64
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("division by zero: final weight of %s is %g kg", e.Bike, e.FinalWeight)
}

func (e *DivisionByZeroError) Unwrap() error {
	return ErrDivisionByZero
}
