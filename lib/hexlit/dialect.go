// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hexlit

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ByteSet is a set of byte values.
type ByteSet [4]uint64

// NewByteSet returns a ByteSet containing exactly the given bytes.
func NewByteSet(members ...byte) ByteSet {
	var set ByteSet
	for _, b := range members {
		set[b/64] |= 1 << (b % 64)
	}
	return set
}

// Has returns whether b is a member of the set.
func (set ByteSet) Has(b byte) bool {
	return set[b/64]&(1<<(b%64)) != 0
}

// Members returns the members of the set in ascending order.
func (set ByteSet) Members() []byte {
	var ret []byte
	for i := 0; i < 256; i++ {
		if set.Has(byte(i)) {
			ret = append(ret, byte(i))
		}
	}
	return ret
}

// String implements fmt.Stringer.
func (set ByteSet) String() string {
	return fmt.Sprintf("%q", set.Members())
}

// PrefixRule says where a "0x" or "0X" prefix marker is recognized.
type PrefixRule uint8

const (
	// PrefixNone never recognizes a prefix; an "x" is an invalid
	// digit like any other.
	PrefixNone = PrefixRule(iota)
	// PrefixLeading recognizes at most one prefix, and only as
	// the first significant pair of the input.
	PrefixLeading
	// PrefixAnyBoundary recognizes a prefix wherever a pair of
	// digits would start.
	PrefixAnyBoundary
)

// String implements fmt.Stringer.
func (r PrefixRule) String() string {
	switch r {
	case PrefixNone:
		return "none"
	case PrefixLeading:
		return "leading"
	case PrefixAnyBoundary:
		return "any-boundary"
	default:
		return fmt.Sprintf("PrefixRule(%d)", uint8(r))
	}
}

// A Dialect is a set of rules for which bytes of a literal are not
// digits.
type Dialect struct {
	Name       string
	Separators ByteSet
	Prefix     PrefixRule
}

var (
	// Basic ignores spaces, underscores, and double-quotes, and
	// does not recognize a prefix.
	Basic = Dialect{
		Name:       "basic",
		Separators: NewByteSet(' ', '_', '"'),
		Prefix:     PrefixNone,
	}

	// Standard ignores spaces, underscores, pipes, dashes,
	// double-quotes, and newlines, and allows a single leading
	// "0x" or "0X".
	Standard = Dialect{
		Name:       "standard",
		Separators: NewByteSet(' ', '_', '|', '-', '"', '\n'),
		Prefix:     PrefixLeading,
	}

	// Legacy has the same separators as Standard, but skips a
	// "0x" or "0X" pair anywhere a pair of digits could start.
	Legacy = Dialect{
		Name:       "legacy",
		Separators: Standard.Separators,
		Prefix:     PrefixAnyBoundary,
	}
)

// Dialects returns the built-in dialects.
func Dialects() []Dialect {
	return []Dialect{Basic, Standard, Legacy}
}

// LookupDialect returns the built-in dialect with the given name.
func LookupDialect(name string) (Dialect, error) {
	for _, d := range Dialects() {
		if strings.EqualFold(d.Name, name) {
			return d, nil
		}
	}
	return Dialect{}, fmt.Errorf("hexlit: unknown dialect: %q", name)
}

func (d Dialect) isSeparator(b byte) bool {
	return d.Separators.Has(b)
}

// skipSeparators returns the index of the first non-separator byte
// at or after i, or len(text).
func (d Dialect) skipSeparators(text string, i int) int {
	for i < len(text) && d.isSeparator(text[i]) {
		i++
	}
	return i
}

// prefixAt returns whether a prefix marker starts at text[hi], where
// hi is the position of a would-be high digit and pairs is the number
// of pairs (including prefixes) that precede it.  If so, it also
// returns the position of the marker's "x".
func (d Dialect) prefixAt(text string, hi, pairs int) (lo int, ok bool) {
	switch d.Prefix {
	case PrefixNone:
		return 0, false
	case PrefixLeading:
		if pairs > 0 {
			return 0, false
		}
	case PrefixAnyBoundary:
		// ok
	default:
		panic(fmt.Errorf("should not happen: invalid prefix rule: %v", d.Prefix))
	}
	if text[hi] != '0' {
		return 0, false
	}
	lo = d.skipSeparators(text, hi+1)
	if lo == len(text) || (text[lo] != 'x' && text[lo] != 'X') {
		return 0, false
	}
	return lo, true
}

// DialectFlag is a pflag.Value that selects one of the built-in
// dialects by name.
type DialectFlag struct {
	Dialect Dialect
}

var _ pflag.Value = (*DialectFlag)(nil)

// Type implements pflag.Value.
func (*DialectFlag) Type() string { return "dialect" }

// Set implements pflag.Value.
func (f *DialectFlag) Set(str string) error {
	d, err := LookupDialect(str)
	if err != nil {
		return err
	}
	f.Dialect = d
	return nil
}

// String implements pflag.Value.
func (f *DialectFlag) String() string {
	return f.Dialect.Name
}
