// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package slice_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/grouproster/pkg/slice"
)

func TestMap(t *testing.T) {
	assert.Equal(t, []string{"1", "2", "3"}, slice.Map([]int{1, 2, 3}, strconv.Itoa))

	// nil input still yields an empty, non-nil slice
	result := slice.Map[int, string](nil, strconv.Itoa)
	assert.NotNil(t, result)
	assert.Empty(t, result)
}

func TestFilter(t *testing.T) {
	isEven := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, []int{2, 4, 6}, slice.Filter([]int{1, 2, 3, 4, 5, 6}, isEven))

	none := slice.Filter([]int{1, 3}, isEven)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestFirst(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		want    int
		isFound bool
	}{
		{"first_of_many", []int{1, 4, 6, 8}, 4, true},
		{"no_match", []int{1, 3, 5}, 0, false},
		{"empty", nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := slice.First(tt.input, func(v int) bool { return v%2 == 0 })
			assert.Equal(t, tt.isFound, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
