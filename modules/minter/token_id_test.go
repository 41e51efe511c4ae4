package minter

import (
	"testing"

	"github.com/gaze-network/rainbow-minter/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIDColour(t *testing.T) {
	testcases := []struct {
		id      TokenID
		r, g, b uint8
		hex     string
	}{
		{0, 0, 0, 0, "000000"},
		{MaxTokenID, 255, 255, 255, "FFFFFF"},
		{0xFF0000, 255, 0, 0, "FF0000"},
		{0x00FF00, 0, 255, 0, "00FF00"},
		{0x0000FF, 0, 0, 255, "0000FF"},
		{0x12AB3C, 0x12, 0xAB, 0x3C, "12AB3C"},
	}
	for _, tc := range testcases {
		t.Run(tc.hex, func(t *testing.T) {
			r, g, b := tc.id.RGB()
			assert.Equal(t, tc.r, r)
			assert.Equal(t, tc.g, g)
			assert.Equal(t, tc.b, b)
			assert.Equal(t, tc.hex, tc.id.Hex())
		})
	}
}

func TestParseTokenID(t *testing.T) {
	testcases := []struct {
		input    string
		expected TokenID
		err      bool
	}{
		{"0", 0, false},
		{"16777215", MaxTokenID, false},
		{" 42 ", 42, false},
		{"16777216", 0, true},
		{"-1", 0, true},
		{"0x10", 0, true},
		{"", 0, true},
	}
	for _, tc := range testcases {
		t.Run(tc.input, func(t *testing.T) {
			id, err := ParseTokenID(tc.input)
			if tc.err {
				assert.ErrorIs(t, err, errs.InvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, id)
		})
	}
}
