package constants_test

import (
	"fmt"

	"github.com/romweave/romcheck/pkg/constants"
)

// Example demonstrates using the shared constants.
func Example() {
	name := "pacman"
	fmt.Println(name + constants.ZipExt)
	fmt.Println(constants.DefaultSetType)

	// Output:
	// pacman.zip
	// split
}
