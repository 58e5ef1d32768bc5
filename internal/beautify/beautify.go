// Package beautify converts compact identifiers such as "first_name" or
// "camelCase" into display labels such as "First Name".
package beautify

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidArgument is returned for inputs that cannot be beautified:
// empty strings, invalid UTF-8, and non-string values.
var ErrInvalidArgument = errors.New("invalid argument")

// Mode is the formatting branch selected for an identifier.
type Mode string

const (
	ModeUnderscore Mode = "underscore"
	ModeCamel      Mode = "camel"
)

// DetectMode returns ModeUnderscore when name contains an underscore and
// ModeCamel otherwise.
func DetectMode(name string) Mode {
	if strings.Contains(name, "_") {
		return ModeUnderscore
	}
	return ModeCamel
}

// Beautifier formats identifiers. The zero value applies the corrected rules.
type Beautifier struct {
	compat bool
}

// Option configures a Beautifier.
type Option func(*Beautifier)

// WithCompat selects output identical to the legacy browser helper, where any
// character equal to its own uppercase form (digits, symbols, an uppercase
// first letter) starts a new word in camel mode.
func WithCompat(compat bool) Option {
	return func(b *Beautifier) {
		b.compat = compat
	}
}

// New returns a Beautifier configured with opts.
func New(opts ...Option) *Beautifier {
	b := &Beautifier{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Compat reports whether legacy output is produced.
func (b *Beautifier) Compat() bool {
	return b.compat
}

// Beautify returns the display label for name.
func (b *Beautifier) Beautify(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: empty identifier", ErrInvalidArgument)
	}
	if !utf8.ValidString(name) {
		return "", fmt.Errorf("%w: identifier %q is not valid UTF-8", ErrInvalidArgument, name)
	}

	if DetectMode(name) == ModeUnderscore {
		return underscoreLabel(name), nil
	}
	if b.compat {
		return camelLabelCompat(name), nil
	}
	return camelLabel(name), nil
}

// BeautifyValue is Beautify for untyped values such as decoded JSON elements.
func (b *Beautifier) BeautifyValue(v any) (string, error) {
	switch name := v.(type) {
	case nil:
		return "", fmt.Errorf("%w: identifier is null", ErrInvalidArgument)
	case string:
		return b.Beautify(name)
	default:
		return "", fmt.Errorf("%w: identifier must be a string, got %T", ErrInvalidArgument, v)
	}
}

var defaultBeautifier = New()

// Beautify returns the display label for name using the corrected rules.
func Beautify(name string) (string, error) {
	return defaultBeautifier.Beautify(name)
}

// BeautifyCompat returns the display label for name using the legacy rules.
func BeautifyCompat(name string) (string, error) {
	return New(WithCompat(true)).Beautify(name)
}

// BeautifyValue beautifies v with the corrected rules.
func BeautifyValue(v any) (string, error) {
	return defaultBeautifier.BeautifyValue(v)
}

// underscoreLabel replaces underscores with spaces and uppercases the first
// rune and every rune that follows an underscore. A trailing underscore has
// nothing after it and leaves a trailing space.
func underscoreLabel(name string) string {
	runes := []rune(name)
	label := make([]rune, len(runes))
	for i, r := range runes {
		switch {
		case r == '_':
			label[i] = ' '
		case i == 0 || runes[i-1] == '_':
			label[i] = unicode.ToUpper(r)
		default:
			label[i] = r
		}
	}
	return string(label)
}

// camelLabel uppercases the first rune and starts a new word before every
// later uppercase letter.
func camelLabel(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	for i, r := range name {
		if i == 0 {
			sb.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			sb.WriteByte(' ')
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// camelLabelCompat starts a new word before every rune that equals its own
// uppercase form, the first rune included.
func camelLabelCompat(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	for i, r := range name {
		if unicode.ToUpper(r) == r {
			sb.WriteByte(' ')
		}
		if i == 0 {
			r = unicode.ToUpper(r)
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
