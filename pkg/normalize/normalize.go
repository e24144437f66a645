// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package normalize canonicalises free-text input before it is stored or compared.
//
// # Usage
//
// Group names and countries are matched by exact equality. Two strings that render
// identically ("Motörhead" typed with a precomposed or a combining umlaut) must
// therefore share one byte representation.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Text returns s in Unicode NFC form with surrounding whitespace removed.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC (composes base + combining marks: e + ◌́ → é).
// 2. Collapses internal whitespace runs into a single space.
// 3. Trims leading/trailing whitespace.
func Text(s string) string {
	result := norm.NFC.String(s)

	return strings.Join(strings.FieldsFunc(result, unicode.IsSpace), " ")
}
