package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIconGlyph_TotalMapping(t *testing.T) {
	for _, icon := range []Icon{IconBox, IconRecycle, IconShield, IconLeaf, IconTree} {
		assert.NotEmpty(t, icon.Glyph(), "icon %q has no glyph", icon)
		assert.True(t, icon.Valid())
	}
}

func TestIconGlyph_UnknownFallsBackToBox(t *testing.T) {
	assert.Equal(t, IconBox.Glyph(), Icon("sparkles").Glyph())
	assert.Equal(t, IconBox.Glyph(), Icon("").Glyph())
	assert.False(t, Icon("sparkles").Valid())
}

func TestMessageStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusFulfilled.Valid())
	assert.False(t, MessageStatus("archived").Valid())
	assert.False(t, MessageStatus("").Valid())
}
