package recipe

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for recipe reconstruction and identity

var (
	ErrInvalidIdentifier = errors.New("recipe identifier must be a positive integer")
	ErrRecipeNotFound    = errors.New("recipe not found")
)

// ValidationError reports the brewing-condition fields that failed
// validation. All offending fields are collected into one error.
type ValidationError struct {
	Fields []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid brewing conditions: %s", strings.Join(e.Fields, ", "))
}
