package models

import (
	"testing"

	"Santa/utils/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDIsValid(t *testing.T) {
	a, b := NewID(), NewID()

	assert.Len(t, a.String(), 24)
	assert.True(t, IsValidID(a.String()))
	assert.NotEqual(t, a, b)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr string
	}{
		{name: "valid", raw: "65a1f0c2b3d4e5f601234567"},
		{name: "empty", raw: "", wantErr: "EventId is required"},
		{name: "blank", raw: "   ", wantErr: "EventId is required"},
		{name: "too short", raw: "65a1f0c2", wantErr: "Invalid EventId"},
		{name: "not hex", raw: "zza1f0c2b3d4e5f601234567", wantErr: "Invalid EventId"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := ParseID("EventId", tt.raw)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, ID(tt.raw), id)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.ErrorIs(t, err, apperr.ErrValidation)
		})
	}
}

func TestWishlistStatusValid(t *testing.T) {
	assert.True(t, StatusFree.Valid())
	assert.True(t, StatusDone.Valid())
	assert.False(t, WishlistStatus("LOST").Valid())
	assert.False(t, WishlistStatus("").Valid())
}
