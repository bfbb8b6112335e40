// Package regrep implements a small, line-oriented regular expression
// matcher in the spirit of a minimal `grep -E`.
//
// The dialect it understands is deliberately narrow: literals, `.`, the
// `\d`/`\w` escapes, enumeration-only character classes (`[abc]`,
// `[^abc]`, no ranges), the `?` and `+` quantifiers, capturing groups
// with `|` alternation, backreferences `\1`-`\9`, and the `^`/`$`
// anchors. There is no Unicode class support, no lookaround, no
// non-greedy quantifiers, no counted quantifiers, and no `*`; see
// SPEC_FULL.md for the complete list of non-goals.
//
// A Regexp holds nothing but its source pattern: there is no compiled
// or cached form, so every call to Match walks the pattern bytes
// directly. This keeps a Regexp trivially safe to share across
// goroutines, at the cost of doing the same classification work on
// every call.
//
// Basic usage:
//
//	re, err := regrep.Compile(`\d+ apples?`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if re.MatchString("3 apples") {
//	    fmt.Println("matched!")
//	}
package regrep

import (
	"errors"
	"fmt"

	"github.com/go-grepx/regrep/internal/engine"
)

// Regexp represents a pattern in this package's restricted dialect.
//
// A Regexp is safe to use concurrently from multiple goroutines: it is
// immutable once constructed, and every matching method builds its own
// transient state.
type Regexp struct {
	pattern string
}

// ErrUnsupportedSyntax is returned by Compile when the pattern contains
// an unescaped `*` or `{` outside a bracket class, i.e. the `*`
// quantifier or a counted quantifier (`{n,m}`), neither of which this
// dialect supports. Other foreign syntax, such as POSIX classes inside
// brackets or non-greedy markers like `+?`, is not detected. It is
// the only error this package's Compile ever returns — the recursive
// matcher otherwise degrades defensively on malformed input (spec §7)
// rather than rejecting it at compile time.
var ErrUnsupportedSyntax = errors.New("regrep: unsupported syntax")

// Compile parses pattern and returns a Regexp ready for matching.
//
// Most malformed patterns are not rejected here: an unclosed group or
// class, a dangling backslash, or a leading quantifier all compile
// successfully and are instead handled defensively at match time (they
// simply fail to match, or treat the stray byte as a literal — spec
// §7). Compile only rejects the handful of constructs this dialect
// never recognizes at all, so a caller cannot silently rely on `*` or
// `{n,m}` behaving like some other regex flavor.
func Compile(pattern string) (*Regexp, error) {
	if i, ok := firstUnsupportedByte(pattern); ok {
		return nil, fmt.Errorf("%w: %q at byte %d", ErrUnsupportedSyntax, pattern[i], i)
	}
	return &Regexp{pattern: pattern}, nil
}

// MustCompile is like Compile but panics if pattern uses unsupported
// syntax. It is intended for patterns known to be valid, such as ones
// fixed at compile time in source.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(`regrep: Compile("` + pattern + `"): ` + err.Error())
	}
	return re
}

// firstUnsupportedByte reports the position of the first occurrence of
// a construct this dialect never supports (unescaped `*` or `{`),
// scanning past escape pairs and bracket classes so a literal `*`
// inside `[...]` or after `\` is not mistaken for the quantifier.
func firstUnsupportedByte(pattern string) (int, bool) {
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++ // skip the escaped byte, whatever it is
		case '[':
			for i++; i < len(pattern) && pattern[i] != ']'; i++ {
				if pattern[i] == '\\' {
					i++
				}
			}
		case '*', '{':
			return i, true
		}
	}
	return 0, false
}

// String returns the source text used to compile the Regexp.
func (r *Regexp) String() string {
	return r.pattern
}

// Match reports whether b contains any match of the pattern.
func (r *Regexp) Match(b []byte) bool {
	return engine.Matches(b, []byte(r.pattern))
}

// MatchString reports whether s contains any match of the pattern.
func (r *Regexp) MatchString(s string) bool {
	return engine.Matches([]byte(s), []byte(r.pattern))
}

// MatchString is a package-level convenience that compiles pattern and
// reports whether it matches s, mirroring stdlib regexp's top-level
// helper of the same name. Callers matching the same pattern
// repeatedly should use Compile once and call the method instead,
// since this function reparses pattern on every call.
func MatchString(pattern, s string) (bool, error) {
	re, err := Compile(pattern)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// FindIndex returns the [start, end) byte offsets of the leftmost
// match in b, or nil if the pattern does not match.
func (r *Regexp) FindIndex(b []byte) []int {
	start, end, _, ok := engine.FindIndex(b, []byte(r.pattern))
	if !ok {
		return nil
	}
	return []int{start, end}
}

// FindStringIndex is the string counterpart of FindIndex.
func (r *Regexp) FindStringIndex(s string) []int {
	return r.FindIndex([]byte(s))
}

// Find returns the leftmost match of the pattern in b, or nil if there
// is none.
func (r *Regexp) Find(b []byte) []byte {
	start, end, _, ok := engine.FindIndex(b, []byte(r.pattern))
	if !ok {
		return nil
	}
	return b[start:end]
}

// FindString is the string counterpart of Find.
func (r *Regexp) FindString(s string) string {
	m := r.Find([]byte(s))
	if m == nil {
		return ""
	}
	return string(m)
}

// FindSubmatch returns a slice holding the text of the leftmost match
// and the text of each capturing group's match, in the style of
// stdlib regexp: index 0 is the whole match, index n is the nth
// group, and a nil element marks a group with no captured text (one
// that did not participate in the match, or that matched the empty
// string). It returns nil if the pattern does not match at all.
func (r *Regexp) FindSubmatch(b []byte) [][]byte {
	start, end, caps, ok := engine.FindIndex(b, []byte(r.pattern))
	if !ok {
		return nil
	}
	out := make([][]byte, len(caps))
	out[0] = b[start:end]
	for i, c := range caps {
		if i == 0 {
			continue
		}
		if c != "" {
			out[i] = []byte(c)
		}
	}
	return out
}

// FindStringSubmatch is the string counterpart of FindSubmatch.
func (r *Regexp) FindStringSubmatch(s string) []string {
	b := r.FindSubmatch([]byte(s))
	if b == nil {
		return nil
	}
	out := make([]string, len(b))
	for i, m := range b {
		if m != nil {
			out[i] = string(m)
		}
	}
	return out
}

// NumSubexp returns the number of capturing groups in the pattern.
func (r *Regexp) NumSubexp() int {
	n := 0
	pat := []byte(r.pattern)
	for i := 0; i < len(pat); i++ {
		if pat[i] == '\\' && i+1 < len(pat) {
			i++
			continue
		}
		if pat[i] == '(' {
			n++
		}
	}
	return n
}
