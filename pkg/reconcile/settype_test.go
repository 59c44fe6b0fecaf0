package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgerrors "github.com/romweave/romcheck/pkg/errors"
	"github.com/romweave/romcheck/pkg/reconcile"
)

func TestParseSetType(t *testing.T) {
	tests := []struct {
		input string
		want  reconcile.SetType
	}{
		{"merged", reconcile.Merged},
		{"split", reconcile.Split},
		{"nonmerged", reconcile.NonMerged},
		{"non-merged", reconcile.NonMerged},
		{"unmerged", reconcile.NonMerged},
		{"MERGED", reconcile.Merged},
		{"  Split  ", reconcile.Split},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := reconcile.ParseSetType(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSetTypeUnknown(t *testing.T) {
	_, err := reconcile.ParseSetType("fullmerged")
	require.Error(t, err)
	assert.True(t, pkgerrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "fullmerged")
}

func TestSetTypeValid(t *testing.T) {
	assert.True(t, reconcile.Merged.Valid())
	assert.True(t, reconcile.Split.Valid())
	assert.True(t, reconcile.NonMerged.Valid())
	assert.False(t, reconcile.SetType("").Valid())
	assert.False(t, reconcile.SetType("hybrid").Valid())
}
