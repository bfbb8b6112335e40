package main

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-grepx/regrep"
)

// searchFiles runs searchReader over each named file in turn, prefixing
// output with the path whenever more than one file was given (spec
// §3.1's file mode).
func searchFiles(paths []string, re *regrep.Regexp) (matched, failed bool) {
	multi := len(paths) > 1
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			logSearchError(&pathError{Sentinel: ErrNoInput, Path: path, Err: err})
			failed = true
			continue
		}
		label := ""
		if multi {
			label = path
		}
		m, fail := searchReader(f, label, re)
		f.Close()
		matched = matched || m
		failed = failed || fail
	}
	return matched, failed
}

// searchRecursive walks every root in paths, matching regular files
// only, and reports results in lexicographic (path, line) order so
// output is deterministic regardless of directory-walk ordering
// quirks on a given filesystem (spec §3.1's recursive mode).
func searchRecursive(roots []string, re *regrep.Regexp) (matched, failed bool) {
	var files []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				logSearchError(&pathError{Sentinel: ErrStat, Path: path, Err: err})
				failed = true
				return nil
			}
			if d.IsDir() {
				return nil
			}
			info, err := d.Info()
			if err != nil || !info.Mode().IsRegular() {
				return nil
			}
			files = append(files, path)
			return nil
		})
		if err != nil {
			logSearchError(&pathError{Sentinel: ErrWalk, Path: root, Err: err})
			failed = true
		}
	}
	sort.Strings(files)

	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			logSearchError(&pathError{Sentinel: ErrNoInput, Path: path, Err: err})
			failed = true
			continue
		}
		m, fail := searchReader(f, path, re)
		f.Close()
		matched = matched || m
		failed = failed || fail
	}
	return matched, failed
}
