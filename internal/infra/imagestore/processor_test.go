package imagestore_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-backend/internal/infra/imagestore"
)

func encodeTestImage(t *testing.T, w, h int, encode func(*bytes.Buffer, image.Image) error) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x += 10 {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, encode(&buf, img))
	return buf.Bytes()
}

func jpegBytes(t *testing.T, w, h int) []byte {
	return encodeTestImage(t, w, h, func(buf *bytes.Buffer, img image.Image) error {
		return jpeg.Encode(buf, img, nil)
	})
}

func decodeSize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	return cfg.Width, cfg.Height
}

func TestProcessor_ResizesWideImage(t *testing.T) {
	p := imagestore.NewProcessor(1200, 80)

	out, err := p.Process(jpegBytes(t, 2000, 1500))
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	assert.Equal(t, 1200, w)
	// aspect ratio preserved: 1500 * 1200/2000
	assert.Equal(t, 900, h)
}

func TestProcessor_NeverUpscales(t *testing.T) {
	p := imagestore.NewProcessor(1200, 80)

	out, err := p.Process(jpegBytes(t, 400, 300))
	require.NoError(t, err)

	w, h := decodeSize(t, out)
	assert.Equal(t, 400, w)
	assert.Equal(t, 300, h)
}

func TestProcessor_ConvertsPNGToJPEG(t *testing.T) {
	p := imagestore.NewProcessor(1200, 80)

	src := encodeTestImage(t, 100, 100, func(buf *bytes.Buffer, img image.Image) error {
		return png.Encode(buf, img)
	})
	out, err := p.Process(src)
	require.NoError(t, err)

	_, format, err := image.DecodeConfig(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", format)
}

func TestProcessor_RejectsGarbage(t *testing.T) {
	p := imagestore.NewProcessor(1200, 80)

	_, err := p.Process([]byte("not an image"))
	assert.Error(t, err)
}
