package qrcode

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoder_PNG(t *testing.T) {
	e := NewEncoder(128)

	raw, err := e.PNG([]byte(`{"id":"abc","total":16}`))
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 128, img.Bounds().Dx())
}

func TestEncoder_EncodeDataURI(t *testing.T) {
	e := NewEncoder(0)

	uri, err := e.Encode([]byte(`{"id":"abc"}`))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(uri, dataURIPrefix))

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, dataURIPrefix))
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(raw))
	assert.NoError(t, err)
}

func TestEncoder_EmptyPayload(t *testing.T) {
	_, err := NewEncoder(64).Encode(nil)
	assert.Error(t, err)
}
