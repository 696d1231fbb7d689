// Copyright 2023 - 2025, TheFunny and the async-pixiv contributors
// SPDX-License-Identifier: MIT

package pixiv

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheFunny/async-pixiv/model"
)

// encodePNG renders a small single-color frame.
func encodePNG(t *testing.T, c color.Color) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 8 {
			img.Set(x, y, c)
		}
	}

	var buf bytes.Buffer

	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func testMetadata() model.UgoiraMetadata {
	return model.UgoiraMetadata{
		Frames: []model.UgoiraFrame{
			{File: "000000.png", Delay: 100},
			{File: "000001.png", Delay: 250},
		},
	}
}

func TestNewUgoiraManifestOrder(t *testing.T) {
	t.Parallel()

	// Archive order deliberately reversed relative to the manifest.
	archive := buildZip(t, map[string][]byte{
		"000001.png": []byte("second"),
		"000000.png": []byte("first"),
		"unlisted":   []byte("ignored"),
	})

	ugoira, err := newUgoira(2046, testMetadata(), archive)
	require.NoError(t, err)

	require.Len(t, ugoira.Frames, 2)
	assert.Equal(t, "000000.png", ugoira.Frames[0].Filename)
	assert.Equal(t, []byte("first"), ugoira.Frames[0].Data)
	assert.Equal(t, 100*time.Millisecond, ugoira.Frames[0].Delay)
	assert.Equal(t, "000001.png", ugoira.Frames[1].Filename)
	assert.Equal(t, 350*time.Millisecond, ugoira.Duration())
}

func TestNewUgoiraMissingFrame(t *testing.T) {
	t.Parallel()

	archive := buildZip(t, map[string][]byte{
		"000000.png": []byte("first"),
	})

	_, err := newUgoira(2046, testMetadata(), archive)
	require.ErrorIs(t, err, ErrMissingFrame)
	assert.ErrorContains(t, err, "000001.png")
}

func TestNewUgoiraCorruptArchive(t *testing.T) {
	t.Parallel()

	_, err := newUgoira(2046, testMetadata(), []byte("not a zip"))
	require.Error(t, err)
}

func TestUgoiraGIF(t *testing.T) {
	t.Parallel()

	archive := buildZip(t, map[string][]byte{
		"000000.png": encodePNG(t, color.RGBA{R: 255, A: 255}),
		"000001.png": encodePNG(t, color.RGBA{B: 255, A: 255}),
	})

	ugoira, err := newUgoira(2046, testMetadata(), archive)
	require.NoError(t, err)

	encoded, err := ugoira.GIF()
	require.NoError(t, err)

	decoded, err := gif.DecodeAll(bytes.NewReader(encoded))
	require.NoError(t, err)

	require.Len(t, decoded.Image, 2)
	assert.Equal(t, image.Rect(0, 0, 8, 8), decoded.Image[0].Bounds())

	// Manifest delays of 100ms and 250ms become 10 and 25 centiseconds.
	assert.Equal(t, []int{10, 25}, decoded.Delay)
}

func TestUgoiraGIFNoFrames(t *testing.T) {
	t.Parallel()

	ugoira := &Ugoira{}

	_, err := ugoira.GIF()
	assert.ErrorIs(t, err, ErrMissingFrame)
}
