// Copyright (C) 2022, 2026  Luke Shumaker <lukeshu@lukeshu.com>
//
// SPDX-License-Identifier: GPL-2.0-or-later

package textui

// Tunable annotates a value as a knob (a cache size, a buffer size)
// that was picked by feel rather than by measurement.
func Tunable[T any](x T) T {
	return x
}
