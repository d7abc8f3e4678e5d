package util

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMimeTypeDetectsVideoFormat(t *testing.T) {
	// EBML magic, as at the start of a webm container
	webm := append([]byte{0x1A, 0x45, 0xDF, 0xA3}, make([]byte, 32)...)

	mimeType, err := ValidateMimeType(bytes.NewReader(webm), []string{MimeVideo})
	require.NoError(t, err)
	assert.Equal(t, "video/webm", mimeType, "content type must come from the bytes, not a fixed value")
	assert.True(t, IsVideo(mimeType))
}

func TestValidateMimeTypeAcceptsImage(t *testing.T) {
	png := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)

	mimeType, err := ValidateMimeType(bytes.NewReader(png), []string{MimeImage})
	require.NoError(t, err)
	assert.Equal(t, "image/png", mimeType)
	assert.True(t, IsImage(mimeType))
}

func TestValidateMimeTypeRejectsWrongKind(t *testing.T) {
	png := append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)

	mimeType, err := ValidateMimeType(bytes.NewReader(png), []string{MimeVideo})
	assert.Error(t, err)
	assert.Equal(t, "image/png", mimeType)
}
