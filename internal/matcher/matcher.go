// Package matcher matches restaurant names against user supplied patterns.
//
// A pattern is one of three kinds. Plain text matches as a substring.
// Text containing *, ? or [ is a glob over the whole name. Text wrapped in
// slashes, such as /^pizza/, is a regular expression.
package matcher

import (
	"fmt"
	"regexp"
	"strings"
)

// Kind is the kind of a pattern.
type Kind int

const (
	// Substring matches anywhere in the input.
	Substring Kind = iota
	// Glob matches the whole input with shell-style wildcards.
	// Unlike filepath.Match, * also crosses '/'.
	Glob
	// Regex matches with a regular expression.
	Regex
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Substring:
		return "substring"
	case Glob:
		return "glob"
	case Regex:
		return "regex"
	default:
		return "unknown"
	}
}

// Options configures matching.
type Options struct {
	CaseSensitive bool
}

// Matcher is a compiled pattern. It is immutable and safe for concurrent use.
type Matcher struct {
	pattern string
	kind    Kind
	re      *regexp.Regexp
}

// New compiles pattern, detecting its kind.
func New(pattern string, opts Options) (*Matcher, error) {
	kind, body := Detect(pattern)

	var expr string
	switch kind {
	case Regex:
		expr = body
	case Glob:
		expr = GlobToRegex(body)
	default:
		expr = regexp.QuoteMeta(body)
	}
	if !opts.CaseSensitive {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s pattern %q: %w", kind, pattern, err)
	}
	return &Matcher{pattern: pattern, kind: kind, re: re}, nil
}

// MustNew is like New but panics on an invalid pattern.
func MustNew(pattern string, opts Options) *Matcher {
	m, err := New(pattern, opts)
	if err != nil {
		panic(err)
	}
	return m
}

// Match reports whether input matches.
func (m *Matcher) Match(input string) bool {
	return m.re.MatchString(input)
}

// Pattern returns the pattern as given.
func (m *Matcher) Pattern() string {
	return m.pattern
}

// Kind returns the detected kind.
func (m *Matcher) Kind() Kind {
	return m.kind
}

// Filter returns the elements of items whose key matches, in order.
func Filter[T any](m *Matcher, items []T, key func(T) string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if m.Match(key(item)) {
			out = append(out, item)
		}
	}
	return out
}

// Detect returns the kind of pattern and the text to compile.
func Detect(pattern string) (Kind, string) {
	if len(pattern) >= 2 && strings.HasPrefix(pattern, "/") && strings.HasSuffix(pattern, "/") {
		return Regex, pattern[1 : len(pattern)-1]
	}
	if strings.ContainsAny(pattern, "*?[") {
		return Glob, pattern
	}
	return Substring, pattern
}

// GlobToRegex converts a glob into an anchored regular expression.
// [!x] and [^x] both negate a class, and a backslash escapes one character.
func GlobToRegex(glob string) string {
	var b strings.Builder
	b.WriteString("^")

	for i := 0; i < len(glob); i++ {
		switch c := glob[i]; c {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		case '[':
			end := strings.IndexByte(glob[i+1:], ']')
			if end < 0 {
				b.WriteString(`\[`)
				continue
			}
			class := glob[i+1 : i+1+end]
			if strings.HasPrefix(class, "!") {
				class = "^" + class[1:]
			}
			b.WriteString("[" + class + "]")
			i += end + 1
		case '\\':
			if i+1 < len(glob) {
				i++
				b.WriteString(regexp.QuoteMeta(string(glob[i])))
			}
		default:
			b.WriteString(regexp.QuoteMeta(string(c)))
		}
	}

	b.WriteString("$")
	return b.String()
}
