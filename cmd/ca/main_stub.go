//go:build !ebiten

package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	headlessUsage(os.Stderr)
	os.Exit(2)
}

// headlessUsage points at the terminal host first; the GUI needs a rebuild.
func headlessUsage(w io.Writer) {
	fmt.Fprintln(w, "This binary was built without the GUI. For a terminal view run:")
	fmt.Fprintln(w, "    go run ./cmd/life-term")
	fmt.Fprintln(w, "For the window, rebuild with the ebiten tag:")
	fmt.Fprintln(w, "    go run -tags ebiten ./cmd/ca")
}
