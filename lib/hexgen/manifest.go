// Copyright (C) 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hexgen

import (
	"context"
	"fmt"
	"go/token"
	"go/types"
	"os"

	"git.lukeshu.com/go/lowmemjson"
	"github.com/datawire/dlib/derror"
	"github.com/datawire/dlib/dlog"

	"git.lukeshu.com/go/hexlit/lib/hexlit"
	"git.lukeshu.com/go/hexlit/lib/streamio"
	"git.lukeshu.com/go/hexlit/lib/textui"
)

// A Manifest lists the literals to generate a Go file for.  In JSON
// it looks like:
//
//	{
//		"Package": "vectors",
//		"Dialect": "standard",
//		"Literals": [
//			{"Name": "DeadBeef", "Text": "0xDEADBEEF"}
//		]
//	}
//
// Dialect may be omitted, in which case it is "standard".
type Manifest struct {
	Package  string
	Dialect  string `json:",omitempty"`
	Literals []Literal
}

type Literal struct {
	Name string
	Text string
}

// A LiteralError is a problem with one of a manifest's literals.
type LiteralError struct {
	Name string
	Err  error
}

func (e *LiteralError) Error() string {
	return fmt.Sprintf("literal %q: %v", e.Name, e.Err)
}

func (e *LiteralError) Unwrap() error { return e.Err }

// ReadManifest reads a JSON manifest from a file.
func ReadManifest(ctx context.Context, filename string) (Manifest, error) {
	fh, err := os.Open(filename)
	if err != nil {
		return Manifest{}, err
	}
	buf := streamio.NewRuneScanner(dlog.WithField(ctx, "hexlit.read-json-file", filename), fh)
	defer func() {
		_ = buf.Close()
	}()
	var ret Manifest
	if err := lowmemjson.NewDecoder(buf).DecodeThenEOF(&ret); err != nil {
		return Manifest{}, fmt.Errorf("%s: %w", filename, err)
	}
	return ret, nil
}

// checkIdent returns an error if name cannot be declared as a
// package-level variable or constant in generated code.
func checkIdent(name string) error {
	switch {
	case !token.IsIdentifier(name) || name == "_":
		return fmt.Errorf("not a valid Go identifier")
	case name == "init":
		return fmt.Errorf("%q may only be declared as a func", name)
	case types.Universe.Lookup(name) != nil:
		return fmt.Errorf("%q is predeclared", name)
	default:
		return nil
	}
}

// A Compiled literal is one that has been fully decoded.
type Compiled struct {
	Literal
	Digits int
	Bytes  []byte
}

func (c Compiled) digitsConst() string {
	return c.Name + "Digits"
}

// Compile checks and decodes every literal in the manifest.  Rather
// than stopping at the first problem, it reports all of them in a
// derror.MultiError; if any problem is found, no literals are
// returned.
func (m Manifest) Compile(ctx context.Context) ([]Compiled, error) {
	var errs derror.MultiError

	if !token.IsIdentifier(m.Package) || m.Package == "_" {
		errs = append(errs, fmt.Errorf("invalid package name: %q", m.Package))
	}
	dialect := hexlit.Standard
	if m.Dialect != "" {
		d, err := hexlit.LookupDialect(m.Dialect)
		if err != nil {
			errs = append(errs, err)
		} else {
			dialect = d
		}
	}

	idents := make(map[string]string, 2*len(m.Literals))
	claim := func(ident, owner string) error {
		if other, taken := idents[ident]; taken {
			return fmt.Errorf("identifier %q is also used by literal %q", ident, other)
		}
		idents[ident] = owner
		return nil
	}

	ret := make([]Compiled, 0, len(m.Literals))
	for _, lit := range m.Literals {
		ctx := dlog.WithField(ctx, "hexlit.gen.literal", lit.Name)
		c := Compiled{Literal: lit}
		if err := checkIdent(c.Name); err != nil {
			errs = append(errs, &LiteralError{Name: lit.Name, Err: err})
			continue
		}
		if err := checkIdent(c.digitsConst()); err != nil {
			errs = append(errs, &LiteralError{Name: lit.Name, Err: err})
			continue
		}
		if err := claim(c.Name, c.Name); err != nil {
			errs = append(errs, &LiteralError{Name: lit.Name, Err: err})
			continue
		}
		if err := claim(c.digitsConst(), c.Name); err != nil {
			errs = append(errs, &LiteralError{Name: lit.Name, Err: err})
			continue
		}

		c.Digits = dialect.CountDigits(lit.Text)
		if err := hexlit.CheckParity(c.Digits); err != nil {
			errs = append(errs, &LiteralError{Name: lit.Name, Err: err})
			continue
		}
		dat, err := dialect.Decode(lit.Text)
		if err != nil {
			errs = append(errs, &LiteralError{Name: lit.Name, Err: err})
			continue
		}
		c.Bytes = dat
		dlog.Tracef(ctx, "%d digits => %d bytes", c.Digits, len(c.Bytes))
		ret = append(ret, c)
	}

	dlog.Debugf(ctx, "valid literals: %v", textui.Portion[int]{N: len(ret), D: len(m.Literals)})
	if len(errs) > 0 {
		return nil, errs
	}
	return ret, nil
}
