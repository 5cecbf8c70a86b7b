// Package pipeline wires text acquisition, evidence scanning,
// classification, field extraction, normalization, coherence checking,
// and identifier construction into the single entrypoint a caller
// (CLI or HTTP front-end) drives a document through.
package pipeline

import (
	"bytes"
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/facturaIA/docid-service/internal/classify"
	"github.com/facturaIA/docid-service/internal/evidence"
	"github.com/facturaIA/docid-service/internal/identifier"
	"github.com/facturaIA/docid-service/internal/models"
	"github.com/facturaIA/docid-service/internal/ocr"
	"github.com/facturaIA/docid-service/internal/validate"
)

var ocrExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
	".tiff": true,
}

var textExtensions = map[string]bool{
	".xml":  true,
	".html": true,
	".htm":  true,
	".txt":  true,
}

// ProcessedDocument is the result of running one file through the
// pipeline: the derived identifier alongside the intermediate
// classification and extraction detail a caller may want to surface.
type ProcessedDocument struct {
	DocumentID      string
	CanonicalString string
	Kind            models.DocumentKind
	Confidence      float64
	Fields          models.Fields
	Warnings        []string
	Duplicate       bool
}

// BatchResult is one file's outcome within a Batch call; Err is set
// instead of Document when that file failed, and a failure never stops
// the rest of the batch.
type BatchResult struct {
	Path     string
	Document *ProcessedDocument
	Err      error
}

// Pipeline is a single configured instance: its own identifier prefix,
// OCR engine, classifier, and duplicate cache. The duplicate cache is
// guarded by a single mutex rather than sharded or lock-free, since it
// protects one small shared map and contention isn't expected to be a
// bottleneck.
type Pipeline struct {
	Prefix     string
	OCREngine  ocr.Engine
	Preprocess *ocr.Preprocessor
	Classifier *classify.Classifier
	Builder    *identifier.Builder
	Coherence  *validate.CoherenceChecker
	Logger     *slog.Logger

	mu    sync.RWMutex
	cache map[string]string // canonical string -> DocumentId
}

// New builds a Pipeline with the default classifier/builder/OCR engine
// for the given prefix.
func New(prefix string, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		Prefix:     prefix,
		OCREngine:  ocr.NewTesseractEngine(""),
		Preprocess: ocr.NewPreprocessor(),
		Classifier: classify.NewDefault(),
		Builder:    identifier.NewBuilderWithPrefix(prefix),
		Coherence:  validate.NewCoherenceChecker(),
		Logger:     logger,
		cache:      make(map[string]string),
	}
}

// Process runs a single file through the full pipeline: acquire text,
// scan evidence, classify, extract, normalize into a canonical string,
// and derive the DocumentId. Duplicate detection consults the
// in-memory cache keyed by canonical string before inserting a new
// entry; lookups never remove or overwrite an existing mapping.
func (p *Pipeline) Process(ctx context.Context, path string) (*ProcessedDocument, error) {
	ev, err := p.acquireEvidence(ctx, path)
	if err != nil {
		return nil, err
	}

	result := p.Classifier.Classify(ev)
	p.applyCoherence(result)

	canonical, err := p.Builder.CanonicalString(result, ev.FullText)
	if err != nil {
		return nil, fmt.Errorf("pipeline: build canonical string: %w", err)
	}

	docID := p.Builder.Build(result.Kind, canonical)

	p.mu.Lock()
	_, dup := p.cache[canonical]
	if !dup {
		p.cache[canonical] = docID
	}
	p.mu.Unlock()

	p.Logger.Info("processed document",
		"path", path, "kind", result.Kind, "id", docID, "duplicate", dup)

	return &ProcessedDocument{
		DocumentID:      docID,
		CanonicalString: canonical,
		Kind:            result.Kind,
		Confidence:      result.Confidence,
		Fields:          result.Fields,
		Warnings:        result.Warnings,
		Duplicate:       dup,
	}, nil
}

// Verify re-derives path's identifier and checks it against expectedID
// in constant time, without touching the duplicate cache.
func (p *Pipeline) Verify(ctx context.Context, path, expectedID string) (bool, error) {
	ev, err := p.acquireEvidence(ctx, path)
	if err != nil {
		return false, err
	}
	result := p.Classifier.Classify(ev)
	canonical, err := p.Builder.CanonicalString(result, ev.FullText)
	if err != nil {
		return false, fmt.Errorf("pipeline: build canonical string: %w", err)
	}
	docID := p.Builder.Build(result.Kind, canonical)
	return subtle.ConstantTimeCompare([]byte(docID), []byte(expectedID)) == 1, nil
}

// Compare processes two files and reports whether they resolve to the
// same DocumentId.
func (p *Pipeline) Compare(ctx context.Context, pathA, pathB string) (*ProcessedDocument, *ProcessedDocument, bool, error) {
	docA, err := p.Process(ctx, pathA)
	if err != nil {
		return nil, nil, false, err
	}
	docB, err := p.Process(ctx, pathB)
	if err != nil {
		return nil, nil, false, err
	}
	return docA, docB, docA.DocumentID == docB.DocumentID, nil
}

// Batch processes every regular file in dir, continuing past individual
// failures and reporting each file's outcome independently.
func (p *Pipeline) Batch(ctx context.Context, dir string) ([]BatchResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read batch directory: %w", err)
	}

	results := make([]BatchResult, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ctx.Err() != nil {
			results = append(results, BatchResult{Path: entry.Name(), Err: ctx.Err()})
			continue
		}
		path := filepath.Join(dir, entry.Name())
		doc, err := p.Process(ctx, path)
		results = append(results, BatchResult{Path: path, Document: doc, Err: err})
	}
	return results, nil
}

// acquireEvidence dispatches on file extension: OCR-able formats are
// preprocessed and handed to the OCR engine whole, in a single call
// (pages are not split or merged here), text formats are read and
// scanned directly at confidence
// 1.0, and anything else is rejected. ctx cancellation is only honored
// at this boundary call, not across the rest of the single-threaded
// classification/extraction work.
func (p *Pipeline) acquireEvidence(ctx context.Context, path string) (*models.TextEvidence, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ocrExtensions[ext]:
		return p.acquireViaOCR(path)
	case textExtensions[ext]:
		return p.acquireViaTextRead(path)
	default:
		return nil, fmt.Errorf("pipeline: unsupported file format %q", ext)
	}
}

func (p *Pipeline) acquireViaOCR(path string) (*models.TextEvidence, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read file: %w", err)
	}

	enhanced, err := p.Preprocess.PreprocessImage(raw)
	if err != nil {
		p.Logger.Warn("preprocess failed, using raw bytes", "path", path, "err", err)
		enhanced = raw
	}

	text, confidence, err := p.OCREngine.ExtractText(enhanced)
	if err != nil {
		return nil, fmt.Errorf("pipeline: ocr extraction: %w", err)
	}
	return evidence.Scan(text, confidence), nil
}

func (p *Pipeline) acquireViaTextRead(path string) (*models.TextEvidence, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read file: %w", err)
	}
	text := raw
	if !utf8.Valid(raw) {
		text = bytes.ToValidUTF8(raw, nil)
	}
	return evidence.Scan(string(text), 1.0), nil
}

func (p *Pipeline) applyCoherence(result *models.ExtractionResult) {
	if result.Kind != models.KindInvoice && result.Kind != models.KindCorrection {
		return
	}
	check := p.Coherence.CheckAmounts(
		result.Fields.Get(models.FieldNetAmount),
		result.Fields.Get(models.FieldVATAmount),
		result.Fields.Get(models.FieldGrossAmount),
	)
	for _, w := range check.Warnings {
		result.Warnings = append(result.Warnings, w.Message)
	}
}
