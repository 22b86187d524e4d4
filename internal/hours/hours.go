// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package hours converts between user-entered durations and decimal hours.
package hours

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// epsilon absorbs binary representation error so that values produced by
// ToDecimal("H:MM") format back to the same minute.
const epsilon = 1e-9

// ToDecimal parses "8.5", "8:30" or "8" into decimal hours. With colons
// only the first two fields count, so "8:30:00" is 8.5.
// Unparseable input yields 0; callers validate the range themselves.
func ToDecimal(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		hours, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			return 0
		}
		return float64(hours) + float64(minutes)/60
	}

	// ParseFloat also reads hex floats such as "0x1p-1".
	if unsigned := strings.TrimLeft(s, "+-"); len(unsigned) > 1 && unsigned[0] == '0' && (unsigned[1] == 'x' || unsigned[1] == 'X') {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

// FormatInput renders h for an editable form field without losing
// precision, e.g. 1.33 stays "1.33" where Format would give "1:19".
func FormatInput(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

// Format renders decimal hours as "H:MM". Minutes are truncated, never
// rounded up, so 1.999 becomes "1:59".
func Format(h float64) string {
	if h == 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return "0:00"
	}

	sign := ""
	if h < 0 {
		sign = "-"
		h = -h
	}

	total := int64(math.Floor(h*60 + epsilon))
	return fmt.Sprintf("%s%d:%02d", sign, total/60, total%60)
}

// FormatDecimal renders hours with two decimals, as used in exports.
func FormatDecimal(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}
