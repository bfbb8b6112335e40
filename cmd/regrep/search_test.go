package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-grepx/regrep"
)

func TestSearchFilesSingleAndMulti(t *testing.T) {
	resetFlags()
	dir := t.TempDir()
	fileA := filepath.Join(dir, "a.txt")
	fileB := filepath.Join(dir, "b.txt")
	if err := os.WriteFile(fileA, []byte("apple\nbanana\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(fileB, []byte("cherry\ndate\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	re := regrep.MustCompile(`an`)
	matched, failed := searchFiles([]string{fileA}, re)
	if failed || !matched {
		t.Errorf("single file: matched=%v failed=%v, want matched=true failed=false", matched, failed)
	}

	matched, failed = searchFiles([]string{fileA, fileB}, re)
	if failed || !matched {
		t.Errorf("multi file: matched=%v failed=%v, want matched=true failed=false", matched, failed)
	}
}

func TestSearchFilesMissingFileFails(t *testing.T) {
	resetFlags()
	re := regrep.MustCompile(`x`)
	_, failed := searchFiles([]string{filepath.Join(t.TempDir(), "does-not-exist.txt")}, re)
	if !failed {
		t.Error("expected failed=true for a missing file")
	}
}

func TestSearchRecursiveWalksSubdirectories(t *testing.T) {
	resetFlags()
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "top.txt"), []byte("nothing\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(sub, "nested.txt"), []byte("target line\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	re := regrep.MustCompile(`target`)
	matched, failed := searchRecursive([]string{root}, re)
	if failed {
		t.Fatal("unexpected failure walking directory tree")
	}
	if !matched {
		t.Error("expected the nested file's match to be found")
	}
}

func TestSearchRecursiveNoMatchInTree(t *testing.T) {
	resetFlags()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "file.txt"), []byte("nothing relevant\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	re := regrep.MustCompile(`zzz`)
	matched, failed := searchRecursive([]string{root}, re)
	if failed {
		t.Fatal("unexpected failure")
	}
	if matched {
		t.Error("expected no match in tree")
	}
}
