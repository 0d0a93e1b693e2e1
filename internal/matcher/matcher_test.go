package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		pattern  string
		wantKind Kind
		wantBody string
	}{
		{"pizza", Substring, "pizza"},
		{"Pizza*", Glob, "Pizza*"},
		{"Caf?", Glob, "Caf?"},
		{"[AB]*", Glob, "[AB]*"},
		{"/^pi(zz)?a$/", Regex, "^pi(zz)?a$"},
		{"/", Substring, "/"},
		{"Pizza/Pasta", Substring, "Pizza/Pasta"},
	}

	for _, tt := range tests {
		kind, body := Detect(tt.pattern)
		assert.Equal(t, tt.wantKind, kind, tt.pattern)
		assert.Equal(t, tt.wantBody, body, tt.pattern)
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		opts    Options
		input   string
		want    bool
	}{
		{"substring anywhere", "town", Options{}, "Pizza Town", true},
		{"substring case sensitive", "town", Options{CaseSensitive: true}, "Pizza Town", false},
		{"substring is literal", "a.b", Options{}, "axb", false},
		{"glob whole name", "Pizza*", Options{}, "pizza town", true},
		{"glob anchored", "Town*", Options{}, "Pizza Town", false},
		{"glob crosses slash", "Pizza*", Options{}, "Pizza/Pasta", true},
		{"glob single char", "B?r", Options{}, "Bar", true},
		{"glob negated class", "[!P]*", Options{CaseSensitive: true}, "Pizza", false},
		{"regex", "/^(noodle|ramen) bar$/", Options{}, "Noodle Bar", true},
		{"regex no match", "/^bar/", Options{}, "Noodle Bar", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.pattern, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Match(tt.input))
		})
	}
}

func TestNewInvalidRegex(t *testing.T) {
	_, err := New("/(unclosed/", Options{})
	assert.ErrorContains(t, err, "invalid regex pattern")

	assert.Panics(t, func() { MustNew("/[/", Options{}) })
}

func TestGlobToRegex(t *testing.T) {
	assert.Equal(t, `^a.*b\.c$`, GlobToRegex("a*b.c"))
	assert.Equal(t, `^[^x]$`, GlobToRegex("[!x]"))
	assert.Equal(t, `^\*$`, GlobToRegex(`\*`))
	assert.Equal(t, `^\[a$`, GlobToRegex("[a"))
}

func TestFilter(t *testing.T) {
	names := []string{"Pizza Town", "Noodle Bar", "Pizza/Pasta"}
	m := MustNew("pizza", Options{})

	got := Filter(m, names, func(s string) string { return s })
	assert.Equal(t, []string{"Pizza Town", "Pizza/Pasta"}, got)
	assert.Equal(t, Substring, m.Kind())
	assert.Equal(t, "pizza", m.Pattern())
}
