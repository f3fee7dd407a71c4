package password

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"slices"
	"strings"
)

type Class string

const (
	Lowercase Class = "lowercase"
	Uppercase Class = "uppercase"
	Numbers   Class = "numbers"
	Special   Class = "special"
)

var (
	ErrUnknownClass  = errors.New("unknown character class")
	ErrNoClasses     = errors.New("no character classes selected")
	ErrInvalidLength = errors.New("password length must not be negative")
)

// charRange is an inclusive run of characters
type charRange struct {
	first, last rune
}

// classes lists every class in output order with the ranges that define it
var classes = []struct {
	class  Class
	ranges []charRange
}{
	{Lowercase, []charRange{{'a', 'z'}}},
	{Uppercase, []charRange{{'A', 'Z'}}},
	{Numbers, []charRange{{'0', '9'}}},
	{Special, []charRange{{'!', '!'}, {'#', '#'}, {'$', '$'}, {'@', '@'}, {'&', '&'}, {'%', '%'}}},
}

var charsets = map[Class]string{}

func init() {
	for _, c := range classes {
		var sb strings.Builder
		for _, r := range c.ranges {
			if r.first > r.last {
				panic(fmt.Sprintf("password: class %s has an inverted range %q-%q", c.class, r.first, r.last))
			}
			for ch := r.first; ch <= r.last; ch++ {
				sb.WriteRune(ch)
			}
		}
		if sb.Len() == 0 {
			panic(fmt.Sprintf("password: class %s has no characters", c.class))
		}
		charsets[c.class] = sb.String()
	}
}

// AllClasses returns every class in a stable order
func AllClasses() []Class {
	out := make([]Class, len(classes))
	for i, c := range classes {
		out[i] = c.class
	}
	return out
}

// ParseClass maps a class name to its Class
func ParseClass(s string) (Class, error) {
	c := Class(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := charsets[c]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownClass, s)
	}
	return c, nil
}

// Charset returns the characters a class contributes
func Charset(c Class) (string, error) {
	set, ok := charsets[c]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownClass, string(c))
	}
	return set, nil
}

type Generator struct {
	rand io.Reader
}

// New returns a Generator reading randomness from r, or from crypto/rand when r is nil
func New(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{rand: r}
}

// Generate picks length characters uniformly, with replacement, from the union of the
// selected classes. A class listed twice counts once.
func (g *Generator) Generate(length int, selected ...Class) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}
	if len(selected) == 0 {
		return "", ErrNoClasses
	}

	var pool []rune
	seen := make([]Class, 0, len(selected))
	for _, c := range selected {
		set, err := Charset(c)
		if err != nil {
			return "", err
		}
		if slices.Contains(seen, c) {
			continue
		}
		seen = append(seen, c)
		pool = append(pool, []rune(set)...)
	}

	upper := big.NewInt(int64(len(pool)))
	out := make([]rune, length)
	for i := range out {
		n, err := rand.Int(g.rand, upper)
		if err != nil {
			return "", fmt.Errorf("read random: %w", err)
		}
		out[i] = pool[n.Int64()]
	}

	return string(out), nil
}
