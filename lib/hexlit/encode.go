// Copyright (C) 2023, 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package hexlit

const (
	lowerTable = "0123456789abcdef"
	upperTable = "0123456789ABCDEF"
)

// EncodeConfig controls how bytes are rendered as a literal.  The
// zero value renders plain lower-case digits.
type EncodeConfig struct {
	Upper bool
	// Prefix adds a leading "0x".
	Prefix bool
	// GroupSize, if positive, puts Separator between every
	// GroupSize bytes.
	GroupSize int
	// Separator defaults to ' '.
	Separator byte
}

// EncodedLen returns the length of the rendering of n bytes.
func (cfg EncodeConfig) EncodedLen(n int) int {
	ret := n * 2
	if cfg.Prefix {
		ret += 2
	}
	if cfg.GroupSize > 0 && n > 0 {
		ret += (n - 1) / cfg.GroupSize
	}
	return ret
}

// Append appends the rendering of src to dst and returns the
// extended buffer.
func (cfg EncodeConfig) Append(dst, src []byte) []byte {
	table := lowerTable
	if cfg.Upper {
		table = upperTable
	}
	sep := cfg.Separator
	if sep == 0 {
		sep = ' '
	}
	if cfg.Prefix {
		if cfg.Upper {
			dst = append(dst, '0', 'X')
		} else {
			dst = append(dst, '0', 'x')
		}
	}
	for i, b := range src {
		if cfg.GroupSize > 0 && i > 0 && i%cfg.GroupSize == 0 {
			dst = append(dst, sep)
		}
		dst = append(dst, table[b>>4], table[b&0x0f])
	}
	return dst
}

// String returns the rendering of src.
func (cfg EncodeConfig) String(src []byte) string {
	return string(cfg.Append(make([]byte, 0, cfg.EncodedLen(len(src))), src))
}

// Encode renders src as plain lower-case hex.
func Encode(src []byte) string {
	return EncodeConfig{}.String(src)
}

// EncodeUpper renders src as plain upper-case hex.
func EncodeUpper(src []byte) string {
	return EncodeConfig{Upper: true}.String(src)
}
