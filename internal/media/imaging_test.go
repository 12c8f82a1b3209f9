package media

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngDataURL(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeResult(t *testing.T, dataURL string) image.Image {
	t.Helper()

	require.True(t, strings.HasPrefix(dataURL, "data:image/jpeg;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:image/jpeg;base64,"))
	require.NoError(t, err)

	img, _, err := image.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	return img
}

func TestPrepareDataURLKeepsSmallImages(t *testing.T) {
	out, err := PrepareDataURL(pngDataURL(t, 640, 480))
	require.NoError(t, err)

	img := decodeResult(t, out)
	assert.Equal(t, 640, img.Bounds().Dx())
	assert.Equal(t, 480, img.Bounds().Dy())
}

func TestPrepareDataURLDownscalesLargeImages(t *testing.T) {
	out, err := PrepareDataURL(pngDataURL(t, MaxDimension*2, MaxDimension))
	require.NoError(t, err)

	img := decodeResult(t, out)
	assert.Equal(t, MaxDimension, img.Bounds().Dx())
	assert.Equal(t, MaxDimension/2, img.Bounds().Dy())
}

func TestPrepareDataURLRejectsNonImage(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("definitely not an image"))

	_, err := PrepareDataURL("data:image/png;base64," + payload)
	assert.Error(t, err)
}

func TestPrepareDataURLRejectsMalformedInput(t *testing.T) {
	cases := []string{
		"https://example.com/photo.jpg",
		"data:image/png",
		"data:image/png;base64,!!!not-base64!!!",
	}
	for _, input := range cases {
		_, err := PrepareDataURL(input)
		assert.Error(t, err, "input %q", input)
	}
}
