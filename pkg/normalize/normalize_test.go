// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/grouproster/pkg/normalize"
)

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Queen", "Queen"},
		{"surrounding_space", "  Queen \t", "Queen"},
		{"inner_space_runs", "Pink   Floyd", "Pink Floyd"},
		{"combining_mark", "Moto\u0308rhead", "Mot\u00f6rhead"},
		{"already_composed", "Mot\u00f6rhead", "Mot\u00f6rhead"},
		{"only_space", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, normalize.Text(tt.input))
		})
	}
}
