package universal

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"image"
	"sort"
	"strings"
)

// PDFPage is the boundary interface for a single rasterized/parsed PDF
// page. Extraction does not parse PDF bytes itself; a caller supplies
// pages already opened through whatever PDF library the deployment
// wires in, consuming pre-rasterized page images and page metadata
// through the same Features boundary.
type PDFPage interface {
	TextLength() int
	ImageCount() int
	Width() float64
	Height() float64
	DrawingCount() int
	FontCount() int
	Text() string
	Render() image.Image // first page only needs to implement this meaningfully
}

// PDFDocument is the boundary interface for an opened PDF file.
type PDFDocument interface {
	Pages() []PDFPage
	Metadata() map[string]string
}

// ExtractPDFFeatures builds a Features record from an already-opened
// PDFDocument: per-page text length, image count, size (WxH), drawing
// count, and font count for each page, plus a concatenated text hash,
// a sorted-metadata hash, and a visual hash over the rendered first
// page.
func ExtractPDFFeatures(doc PDFDocument, fileSize int64) (*Features, error) {
	pages := doc.Pages()
	if len(pages) == 0 {
		return nil, fmt.Errorf("universal: pdf document has no pages")
	}

	var contentFeatures []string
	var textBuilder strings.Builder
	for i, page := range pages {
		contentFeatures = append(contentFeatures,
			fmt.Sprintf("page_%d_text_length:%d", i, page.TextLength()),
			fmt.Sprintf("page_%d_images:%d", i, page.ImageCount()),
			fmt.Sprintf("page_%d_size:%.0fx%.0f", i, page.Width(), page.Height()),
			fmt.Sprintf("page_%d_drawings:%d", i, page.DrawingCount()),
			fmt.Sprintf("page_%d_fonts:%d", i, page.FontCount()),
		)
		textBuilder.WriteString(page.Text())
	}

	contentSum := sha256.Sum256([]byte(strings.Join(contentFeatures, "\n")))
	textSum := sha256.Sum256([]byte(textBuilder.String()))
	metadataHash := hashMetadata(doc.Metadata())

	visualHash := ""
	if first := pages[0].Render(); first != nil {
		visualHash = CalculatePerceptualHash(first)
	}

	return &Features{
		FileKind:     "PDF",
		FileSize:     fileSize,
		ContentHash:  hex.EncodeToString(contentSum[:])[:16],
		VisualHash:   visualHash,
		TextHash:     hex.EncodeToString(textSum[:])[:16],
		MetadataHash: metadataHash,
		PageCount:    len(pages),
		Dimensions:   fmt.Sprintf("%.0fx%.0f", pages[0].Width(), pages[0].Height()),
	}, nil
}

// hashMetadata serializes a metadata map with keys sorted so the hash is
// stable regardless of the source library's map iteration order.
func hashMetadata(metadata map[string]string) string {
	if len(metadata) == 0 {
		return ""
	}
	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	ordered := make([]map[string]string, 0, len(keys))
	for _, k := range keys {
		ordered = append(ordered, map[string]string{k: metadata[k]})
	}
	encoded, err := json.Marshal(ordered)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(encoded)
	return hex.EncodeToString(sum[:])[:16]
}
