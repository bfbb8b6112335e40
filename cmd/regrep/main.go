// Command regrep is a minimal grep -E-style line matcher built on the
// github.com/go-grepx/regrep engine.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-grepx/regrep"
)

// exit codes follow grep convention: 0 = matched, 1 = no match, 2 =
// usage or I/O error that prevented searching at all.
const (
	exitMatched    = 0
	exitNoMatch    = 1
	exitSearchFail = 2
)

var flags = struct {
	recursive        bool
	filesWithMatches bool
	lineNumber       bool
	invertMatch      bool
	count            bool
}{}

var root = &cobra.Command{
	Use:   "regrep PATTERN [PATH...]",
	Short: "Search lines for a pattern in this package's restricted regex dialect.",
	Long: "regrep searches each given file (or standard input, if none are given) " +
		"for lines matching PATTERN, using the small regex dialect implemented by " +
		"github.com/go-grepx/regrep: literals, '.', \\d, \\w, enumeration-only character " +
		"classes, '?' and '+' quantifiers, capturing groups with '|' alternation, " +
		"backreferences \\1-\\9, and the '^'/'$' anchors.",
	Args:         cobra.MinimumNArgs(1),
	SilenceUsage: true,
	RunE:         runRegrep,
}

func init() {
	root.Flags().BoolVarP(&flags.recursive, "recursive", "r", false, "search directories recursively")
	root.Flags().BoolVarP(&flags.filesWithMatches, "files-with-matches", "l", false, "print only the names of files containing a match")
	root.Flags().BoolVarP(&flags.lineNumber, "line-number", "n", false, "prefix each matching line with its line number")
	root.Flags().BoolVarP(&flags.invertMatch, "invert-match", "v", false, "select lines that do NOT match")
	root.Flags().BoolVarP(&flags.count, "count", "c", false, "print only a count of matching lines")
}

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(exitSearchFail)
	}
}

func runRegrep(cmd *cobra.Command, args []string) error {
	pattern := args[0]
	paths := args[1:]

	re, err := regrep.Compile(pattern)
	if err != nil {
		slog.Error("invalid pattern", "pattern", pattern, "error", err)
		os.Exit(exitSearchFail)
	}

	var (
		matched   bool
		searchErr bool
	)

	switch {
	case len(paths) == 0:
		matched, searchErr = searchReader(cmd.InOrStdin(), "", re)
	case flags.recursive:
		matched, searchErr = searchRecursive(paths, re)
	default:
		matched, searchErr = searchFiles(paths, re)
	}

	if searchErr {
		os.Exit(exitSearchFail)
	}
	if !matched {
		os.Exit(exitNoMatch)
	}
	os.Exit(exitMatched)
	return nil
}

// searchReader runs the engine over every line read from r, printing
// results per the active flags, and reports whether any line matched.
func searchReader(r io.Reader, label string, re *regrep.Regexp) (matched, failed bool) {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	count := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		hit := re.MatchString(line)
		if flags.invertMatch {
			hit = !hit
		}
		if !hit {
			continue
		}
		matched = true
		count++
		if flags.filesWithMatches {
			if label != "" {
				fmt.Println(label)
			}
			return true, false
		}
		if flags.count {
			continue
		}
		printLine(label, lineNo, highlightMatch(re, line))
	}
	if err := scanner.Err(); err != nil {
		slog.Error("read failed", "source", label, "error", err)
		return matched, true
	}
	if flags.count && !flags.filesWithMatches {
		if label != "" {
			fmt.Printf("%s:%d\n", label, count)
		} else {
			fmt.Println(count)
		}
	}
	return matched, false
}

const (
	colorStart = "\x1b[1;31m"
	colorEnd   = "\x1b[0m"
)

// logSearchError reports an operational error (as opposed to a match
// verdict) to stderr, keeping errors.Is-checkable sentinels available
// to any caller that wants to distinguish failure kinds later.
func logSearchError(err error) {
	slog.Error(err.Error())
}

// highlightMatch wraps the first matched span of line in ANSI red when
// stdout is a terminal, mirroring grep --color=auto. It is a no-op for
// -v, where there is no match span to point at.
func highlightMatch(re *regrep.Regexp, line string) string {
	if flags.invertMatch || !isTerminal(os.Stdout) {
		return line
	}
	loc := re.FindStringIndex(line)
	if loc == nil {
		return line
	}
	return line[:loc[0]] + colorStart + line[loc[0]:loc[1]] + colorEnd + line[loc[1]:]
}

func printLine(label string, lineNo int, line string) {
	switch {
	case label != "" && flags.lineNumber:
		fmt.Printf("%s:%d:%s\n", label, lineNo, line)
	case label != "":
		fmt.Printf("%s:%s\n", label, line)
	case flags.lineNumber:
		fmt.Printf("%d:%s\n", lineNo, line)
	default:
		fmt.Println(line)
	}
}
