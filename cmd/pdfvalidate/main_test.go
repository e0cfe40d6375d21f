package main

import (
	"os"
	"testing"

	"github.com/sctg-development/pdfvalidate/pkg/pagecheck"
)

// TestRunWithoutPDFFlag tests that the renderer probe gates the run before
// the required -pdf flag is checked: without a renderer the exit code is the
// skip code even when no flags were given, otherwise the missing flag is a
// plain failure.
func TestRunWithoutPDFFlag(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()
	os.Args = []string{"pdfvalidate"}

	code := run()
	if err := pagecheck.ProbeRenderer(); err != nil {
		if code != exitSkipped {
			t.Errorf("Expected exit %d without a renderer, got %d", exitSkipped, code)
		}
	} else if code != exitFailure {
		t.Errorf("Expected exit %d for missing -pdf, got %d", exitFailure, code)
	}
}
