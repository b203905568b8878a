package domain

import "strings"

// ExclusionMarker is the leading character that turns a path pattern into an exclusion.
const ExclusionMarker = "!"

// Pattern is a path glob that either includes or excludes matching paths.
// The exclusion marker is kept out of Glob and only rendered by String.
type Pattern struct {
	Negated bool
	Glob    string
}

// Include returns a pattern that includes paths matching glob.
func Include(glob string) Pattern {
	return Pattern{Glob: glob}
}

// Exclude returns a pattern that excludes paths matching glob.
func Exclude(glob string) Pattern {
	return Pattern{Negated: true, Glob: glob}
}

// ParsePattern parses the textual form of a pattern, where a leading "!" marks an exclusion.
func ParsePattern(s string) Pattern {
	if rest, ok := strings.CutPrefix(s, ExclusionMarker); ok {
		return Exclude(rest)
	}
	return Include(s)
}

// ParsePatterns parses every entry of patterns with ParsePattern.
func ParsePatterns(patterns []string) []Pattern {
	out := make([]Pattern, len(patterns))
	for i, p := range patterns {
		out[i] = ParsePattern(p)
	}
	return out
}

// Under returns the pattern rooted below prefix. The exclusion flag is preserved,
// so "!foo" under "proj/**/" becomes "!proj/**/foo".
func (p Pattern) Under(prefix string) Pattern {
	return Pattern{Negated: p.Negated, Glob: prefix + p.Glob}
}

// String renders the pattern with its exclusion marker.
func (p Pattern) String() string {
	if p.Negated {
		return ExclusionMarker + p.Glob
	}
	return p.Glob
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Pattern) UnmarshalText(text []byte) error {
	*p = ParsePattern(string(text))
	return nil
}

// PatternStrings renders patterns back to their textual form.
func PatternStrings(patterns []Pattern) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = p.String()
	}
	return out
}
