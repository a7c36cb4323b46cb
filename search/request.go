package search

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Request is one search submission as entered by the user.
type Request struct {
	Origin       string `validate:"required"`
	Destination  string `validate:"required,nefield=Origin"`
	MaxTransfers int    `validate:"gte=0"`
	TravelDate   string
}

// ValidationError reports invalid user input, caught before any network call.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// validateRequest maps validator findings onto actionable messages.
func validateRequest(v *validator.Validate, r Request) *ValidationError {
	err := v.Struct(r)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &ValidationError{Msg: err.Error()}
	}
	for _, fe := range fieldErrs {
		switch {
		case fe.Tag() == "required":
			return &ValidationError{Msg: "Please select both origin and destination stations."}
		case fe.Tag() == "nefield":
			return &ValidationError{Msg: "Origin and destination must be different stations."}
		case fe.Field() == "MaxTransfers":
			return &ValidationError{Msg: "Max transfers must be zero or more."}
		}
	}
	return &ValidationError{Msg: fieldErrs.Error()}
}
