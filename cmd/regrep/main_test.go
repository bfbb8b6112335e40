package main

import (
	"strings"
	"testing"

	"github.com/go-grepx/regrep"
)

func resetFlags() {
	flags.recursive = false
	flags.filesWithMatches = false
	flags.lineNumber = false
	flags.invertMatch = false
	flags.count = false
}

func TestSearchReaderBasicMatch(t *testing.T) {
	resetFlags()
	re := regrep.MustCompile(`\d+`)
	input := strings.NewReader("no numbers here\nage: 42\nmore text\ncount: 7")
	matched, failed := searchReader(input, "", re)
	if failed {
		t.Fatal("unexpected failure")
	}
	if !matched {
		t.Error("expected a match")
	}
}

func TestSearchReaderNoMatch(t *testing.T) {
	resetFlags()
	re := regrep.MustCompile(`xyz`)
	input := strings.NewReader("nothing to see\nhere either")
	matched, failed := searchReader(input, "", re)
	if failed {
		t.Fatal("unexpected failure")
	}
	if matched {
		t.Error("expected no match")
	}
}

func TestSearchReaderInvertMatch(t *testing.T) {
	resetFlags()
	flags.invertMatch = true
	defer resetFlags()

	re := regrep.MustCompile(`^\d+$`)
	input := strings.NewReader("42\nhello\n7")
	matched, failed := searchReader(input, "", re)
	if failed {
		t.Fatal("unexpected failure")
	}
	if !matched {
		t.Error("expected the non-numeric line to count as a match under -v")
	}
}

func TestHighlightMatchNoopWhenNotTerminal(t *testing.T) {
	resetFlags()
	re := regrep.MustCompile(`\d+`)
	// os.Stdout in a test binary is never a terminal, so highlightMatch
	// must return the line unchanged.
	got := highlightMatch(re, "age: 42")
	if got != "age: 42" {
		t.Errorf("highlightMatch = %q, want unchanged line", got)
	}
}

func TestHighlightMatchNoopUnderInvert(t *testing.T) {
	resetFlags()
	flags.invertMatch = true
	defer resetFlags()

	re := regrep.MustCompile(`\d+`)
	got := highlightMatch(re, "age: 42")
	if got != "age: 42" {
		t.Errorf("highlightMatch under -v = %q, want unchanged line", got)
	}
}

func TestPrintLineFormats(t *testing.T) {
	// printLine writes to stdout directly; this test only exercises it
	// for panics/formatting-path coverage across flag combinations.
	resetFlags()
	printLine("", 0, "plain")
	printLine("file.txt", 0, "with label")
	flags.lineNumber = true
	printLine("", 3, "with line number")
	printLine("file.txt", 3, "with label and line number")
	resetFlags()
}
