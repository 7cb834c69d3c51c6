package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cwbudde/algo-geopot/inclination"
)

func TestRunNormalization(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "norm", options{lmax: 2, l: -1, m: -1}); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "2.236067977499790e+00") {
		t.Fatalf("missing N(2,0) in output:\n%s", out)
	}
	// header, separator and 6 (l, m) rows
	if lines := strings.Count(out, "\n"); lines != 8 {
		t.Fatalf("got %d lines, want 8:\n%s", lines, out)
	}
}

func TestRunSelection(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "flmp", options{lmax: 20, deg: 109.9, l: 15, m: 15, workers: 2}); err != nil {
		t.Fatalf("run: %v", err)
	}
	// header, separator and p = 0..15
	if lines := strings.Count(buf.String(), "\n"); lines != 18 {
		t.Fatalf("got %d lines, want 18:\n%s", lines, buf.String())
	}
}

func TestRunLegendreAtPole(t *testing.T) {
	var buf bytes.Buffer
	if err := run(&buf, "legendre", options{lmax: 3, deg: 0, l: -1, m: -1}); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(buf.String(), "n/a") {
		t.Fatalf("expected derivatives to be reported as n/a at the pole:\n%s", buf.String())
	}
}

func TestRunErrors(t *testing.T) {
	var buf bytes.Buffer

	if err := run(&buf, "bogus", options{lmax: 3, l: -1, m: -1}); err == nil {
		t.Fatal("expected error for unknown table")
	}
	if err := run(&buf, "norm", options{lmax: 3, l: 4, m: -1}); err == nil {
		t.Fatal("expected error for degree above lmax")
	}
	if err := run(&buf, "star", options{lmax: 3, deg: 0, l: -1, m: -1}); !errors.Is(err, inclination.ErrSingularInclination) {
		t.Fatalf("err = %v, want ErrSingularInclination", err)
	}
}

func TestPrintListSorted(t *testing.T) {
	var buf bytes.Buffer
	printList(&buf)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(registry) {
		t.Fatalf("got %d entries, want %d", len(lines), len(registry))
	}
	for i := 1; i < len(lines); i++ {
		if lines[i-1] > lines[i] {
			t.Fatalf("list not sorted: %q before %q", lines[i-1], lines[i])
		}
	}
}
