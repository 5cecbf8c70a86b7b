package universal

import (
	"fmt"
	"path/filepath"
	"strings"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tiff": true,
	".gif":  true,
	".webp": true,
}

// GetDocumentFeatures dispatches a file to the appropriate feature
// extractor by extension: PDF, image, or generic. The pdfOpen callback
// is only invoked for .pdf files, letting callers wire in whatever PDF
// library they have without this package importing one.
func GetDocumentFeatures(path string, pdfOpen func(path string) (PDFDocument, int64, error)) (*Features, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch {
	case ext == ".pdf":
		if pdfOpen == nil {
			return nil, fmt.Errorf("universal: no pdf opener configured for %s", path)
		}
		doc, size, err := pdfOpen(path)
		if err != nil {
			return nil, fmt.Errorf("universal: open pdf: %w", err)
		}
		return ExtractPDFFeatures(doc, size)
	case imageExtensions[ext]:
		return ExtractImageFeatures(path)
	default:
		return ExtractGenericFeatures(path)
	}
}
