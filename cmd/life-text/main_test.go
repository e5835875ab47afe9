package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunPrintsSeedPattern(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, options{width: 3, height: 3}); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := "generation 0, 6 alive\n■□■\n□■□\n■■■\n\n"
	if got := out.String(); got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
}

func TestRunEveryGeneration(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, options{width: 8, height: 8, generations: 2, every: true}); err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"generation 0,", "generation 1,", "generation 2,"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestRunRejectsBadOptions(t *testing.T) {
	cases := []options{
		{width: 0, height: 4},
		{width: 4, height: -1},
		{width: 4, height: 4, generations: -1},
	}
	for _, opts := range cases {
		if err := run(&bytes.Buffer{}, opts); err == nil {
			t.Fatalf("run(%+v) succeeded", opts)
		}
	}
}
