package main

import (
	"fmt"
	"os"
)

func main() {
	Execute()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
