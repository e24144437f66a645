// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/taibuivan/grouproster/internal/platform/apperr"
	"github.com/taibuivan/grouproster/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	t.Run("nil_passthrough", func(t *testing.T) {
		assert.NoError(t, dberr.Wrap(nil, "noop"))
	})

	t.Run("record_not_found", func(t *testing.T) {
		err := dberr.Wrap(fmt.Errorf("first: %w", gorm.ErrRecordNotFound), "get_group")
		assert.ErrorIs(t, err, apperr.ErrNotFound)
	})

	t.Run("driver_failure_is_internal", func(t *testing.T) {
		cause := errors.New("duplicate key value violates unique constraint")
		err := dberr.Wrap(cause, "save_groups")

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeInternal, ae.Code)
		assert.ErrorIs(t, err, cause)
		assert.EqualError(t, ae.Cause, "save_groups: duplicate key value violates unique constraint")
	})
}
