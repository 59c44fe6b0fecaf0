package errors_test

import (
	"fmt"

	"github.com/romweave/romcheck/pkg/errors"
)

// Example demonstrates basic error creation and checking.
func Example() {
	// Create a not found error
	err := &errors.NotFoundError{
		Resource: "archive",
		Name:     "pacman",
	}

	// Check error type
	if errors.IsNotFound(err) {
		fmt.Println("Archive not found")
	}

	// Output: Archive not found
}

// Example_validationError shows input validation errors.
func Example_validationError() {
	// Validate input
	setType := ""
	if setType == "" {
		err := &errors.ValidationError{
			Field:   "set-type",
			Value:   setType,
			Message: "set type cannot be empty",
		}
		fmt.Println(err.Error())
	}

	// Output: validation failed for field set-type: set type cannot be empty
}

// Example_errorChaining shows chained error handling.
func Example_errorChaining() {
	// Create a chain of errors
	baseErr := &errors.NotFoundError{
		Resource: "file",
		Name:     "mame.dat",
	}

	parseErr := &errors.ParseError{
		Format:  "xml",
		File:    "mame.dat",
		Message: "failed to open catalog",
		Err:     baseErr,
	}

	// Check through the chain using standard library
	if errors.IsNotFound(parseErr) {
		fmt.Println("File not found in parse chain")
	}

	// Output: File not found in parse chain
}

// Example_errorWrapping demonstrates error wrapping patterns.
func Example_errorWrapping() {
	// Original error
	originalErr := fmt.Errorf("unexpected EOF")

	// Wrap with IO error
	ioErr := errors.WrapIO("read", "/roms/dino.zip", originalErr)

	fmt.Println(ioErr.Error())

	// Output: IO error during read of /roms/dino.zip: unexpected EOF
}
