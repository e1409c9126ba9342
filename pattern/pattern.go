// Package pattern recognizes fixed point type names and extracts the power of
// two exponent embedded in them.
package pattern

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/zeebo/errs"
)

// Error is the pattern error class.
var Error = errs.Class("pattern")

// ParseError is returned when a name has the shape of a fixed point type but
// the exponent literal cannot be read from it.
var ParseError = errs.Class("exponent parse")

// MaxExponent bounds the magnitude of an accepted exponent.
const MaxExponent = 1024

// Built in pattern sources. The single capture group is the exponent literal.
const (
	ElasticInteger = `\belastic_integer<.*\bpower<(.*?),\s*2\s*>`
	ScaledInteger  = `\bscaled_integer<.*\bpower<(.*?),\s*2\s*>`
)

// Pattern matches a family of fixed point type names.
type Pattern struct {
	source string
	re     *regexp.Regexp
}

// Compile parses source. The expression must have exactly one capture group.
func Compile(source string) (p *Pattern, err error) {
	re, err := regexp.Compile(source)
	if err != nil {
		return nil, Error.Wrap(err)
	}

	if n := re.NumSubexp(); n != 1 {
		return nil, Error.New("%q: want 1 capture group, got %d", source, n)
	}

	return &Pattern{
		source: source,
		re:     re,
	}, nil
}

// MustCompile is like Compile but panics on error.
func MustCompile(source string) *Pattern {
	p, err := Compile(source)
	if err != nil {
		panic(err)
	}

	return p
}

// Source returns the expression the pattern was compiled from.
func (p *Pattern) Source() string {
	return p.source
}

func (p *Pattern) String() string {
	return p.source
}

// Matches reports whether name has the outer shape of the family.
func (p *Pattern) Matches(name string) bool {
	return p.re.MatchString(name)
}

// Match returns the exponent embedded in name. If name is not of the family,
// ok is false and err is nil. If it is but the exponent cannot be parsed, err
// is a ParseError.
func (p *Pattern) Match(name string) (exponent int, ok bool, err error) {
	m := p.re.FindStringSubmatch(name)
	if m == nil {
		return 0, false, nil
	}

	literal := strings.TrimSpace(m[1])
	if literal == "" {
		return 0, true, ParseError.New("%q: missing exponent", name)
	}

	exponent, err = strconv.Atoi(literal)
	if err != nil {
		return 0, true, ParseError.New("%q: invalid exponent %q", name, literal)
	}

	if exponent > MaxExponent || exponent < -MaxExponent {
		return 0, true, ParseError.New("%q: exponent %d out of range", name, exponent)
	}

	return exponent, true, nil
}
