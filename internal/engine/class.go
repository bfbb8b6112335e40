package engine

// charClass is a byte-membership set parsed from a `[...]` or `[^...]`
// element. Membership is by enumeration only — the dialect has no
// ranges and no POSIX named classes (spec §4.1).
type charClass struct {
	set      [256]bool
	negated  bool
}

// parseClass reads the members of a class from pattern[contentStart:end)
// (already past '[' and any leading '^'). An escaped byte inside the
// class contributes that literal byte to the set; there is no other
// escape handling within brackets.
func parseClass(pattern []byte, contentStart, end int, negated bool) charClass {
	var c charClass
	c.negated = negated
	i := contentStart
	for i < end {
		if pattern[i] == '\\' && i+1 < end {
			c.set[pattern[i+1]] = true
			i += 2
			continue
		}
		c.set[pattern[i]] = true
		i++
	}
	return c
}

// matches reports whether b is a member of the class, honouring
// negation. An empty, non-negated class never matches anything; an
// empty, negated class matches every byte.
func (c charClass) matches(b byte) bool {
	if c.negated {
		return !c.set[b]
	}
	return c.set[b]
}
