// Package imagestore processes uploaded images and keeps them on disk.
package imagestore

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

const (
	// DefaultMaxDimension bounds the stored width. Wider uploads are scaled
	// down preserving aspect ratio; narrower ones are left alone.
	DefaultMaxDimension = 1200

	// DefaultQuality is the JPEG encoding quality for stored images.
	DefaultQuality = 80
)

// Processor re-encodes uploads into bounded JPEGs.
type Processor struct {
	maxDimension int
	quality      int
}

func NewProcessor(maxDimension, quality int) *Processor {
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	if quality <= 0 || quality > 100 {
		quality = DefaultQuality
	}
	return &Processor{maxDimension: maxDimension, quality: quality}
}

// Process decodes data, scales it down if it is wider than the configured
// bound, and returns the image re-encoded as JPEG. Images within the bound
// keep their dimensions; nothing is ever upscaled.
func (p *Processor) Process(data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("Process: decode: %w", err)
	}

	if img.Bounds().Dx() > p.maxDimension {
		img = imaging.Resize(img, p.maxDimension, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(p.quality)); err != nil {
		return nil, fmt.Errorf("Process: encode: %w", err)
	}
	return buf.Bytes(), nil
}
