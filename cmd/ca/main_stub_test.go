//go:build !ebiten

package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestHeadlessUsageOffersTerminalHostFirst(t *testing.T) {
	var buf bytes.Buffer
	headlessUsage(&buf)
	out := buf.String()
	term := strings.Index(out, "./cmd/life-term")
	gui := strings.Index(out, "-tags ebiten")
	if term < 0 || gui < 0 {
		t.Fatalf("usage %q misses a host", out)
	}
	if term > gui {
		t.Fatalf("usage lists the GUI rebuild before the terminal host: %q", out)
	}
}
