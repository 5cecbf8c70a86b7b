// Package ocr supplies the pipeline's OCR boundary: text plus a
// confidence score extracted from a page image. The canonicalization
// pipeline treats this stage as an injected collaborator, so it can run
// against a real engine in production and a placeholder in environments
// with no OCR binary available, without changing any downstream code.
package ocr

// WordInfo carries per-word OCR detail, for engines that expose it.
type WordInfo struct {
	Text       string
	Confidence float64
	Box        BoundingBox
}

// BoundingBox locates a detected word within the source image.
type BoundingBox struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Engine extracts raw text and an average confidence from a
// preprocessed image.
type Engine interface {
	ExtractText(imageBytes []byte) (text string, confidence float64, err error)
}

// TesseractEngine is a placeholder OCR engine. The production binary
// this was adapted from shells out to a native OCR install that isn't
// part of this module's dependency set; wiring a real engine means
// satisfying the Engine interface, not changing the pipeline.
type TesseractEngine struct {
	language string
}

// NewTesseractEngine builds a placeholder engine for the given
// language code (defaults to "eng").
func NewTesseractEngine(language string) *TesseractEngine {
	if language == "" {
		language = "eng"
	}
	return &TesseractEngine{language: language}
}

// ExtractText returns a fixed placeholder result; no OCR binary is
// wired into this module.
func (t *TesseractEngine) ExtractText(imageBytes []byte) (string, float64, error) {
	return "OCR engine not configured for this deployment.", 0.0, nil
}
