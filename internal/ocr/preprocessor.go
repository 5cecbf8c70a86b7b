package ocr

import (
	"bytes"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Preprocessor enhances an image for OCR readability: resize, grayscale,
// contrast, and sharpening. Adapted from the original's ImageMagick
// shell-out pipeline to use disintegration/imaging so the module has no
// external-binary dependency.
type Preprocessor struct {
	maxDimension int
}

// NewPreprocessor creates a new image preprocessor.
func NewPreprocessor() *Preprocessor {
	return &Preprocessor{maxDimension: 2000}
}

// PreprocessImage decodes raw image bytes and applies the enhancement
// pipeline: resize (if larger than maxDimension) -> grayscale ->
// contrast stretch -> sharpen, re-encoded as JPEG.
func (p *Preprocessor) PreprocessImage(imageData []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return imageData, fmt.Errorf("ocr: decode image: %w", err)
	}

	enhanced := p.enhance(src, false)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, enhanced, imaging.JPEG, imaging.JPEGQuality(95)); err != nil {
		return imageData, fmt.Errorf("ocr: encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// PreprocessForStamp applies more aggressive contrast, for images
// containing stamps or seals with uneven lighting.
func (p *Preprocessor) PreprocessForStamp(imageData []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return imageData, fmt.Errorf("ocr: decode image: %w", err)
	}

	enhanced := p.enhance(src, true)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, enhanced, imaging.JPEG, imaging.JPEGQuality(95)); err != nil {
		return imageData, fmt.Errorf("ocr: encode image: %w", err)
	}
	return buf.Bytes(), nil
}

func (p *Preprocessor) enhance(src image.Image, aggressive bool) image.Image {
	bounds := src.Bounds()
	img := src
	if bounds.Dx() > p.maxDimension || bounds.Dy() > p.maxDimension {
		img = imaging.Fit(img, p.maxDimension, p.maxDimension, imaging.Lanczos)
	}

	img = imaging.Grayscale(img)

	contrast := 15.0
	sharpen := 1.0
	if aggressive {
		contrast = 30.0
		sharpen = 2.0
	}
	img = imaging.AdjustContrast(img, contrast)
	img = imaging.Sharpen(img, sharpen)

	return img
}
