package cli

import (
	"fmt"
	"os"
)

// Version is the current version of gocalc
const Version = "0.1.0"

// ShowVersion displays the version information and exits
func ShowVersion() {
	fmt.Fprintf(Stdout, "gocalc version %s\n", Version)
	os.Exit(0)
}
