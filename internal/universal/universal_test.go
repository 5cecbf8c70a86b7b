package universal

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
)

func writeTestPNG(t *testing.T, path string, fill color.Color) {
	t.Helper()
	img := imaging.New(16, 16, fill)
	if err := imaging.Save(img, path); err != nil {
		t.Fatalf("save test image: %v", err)
	}
}

func TestExtractImageFeaturesDeterministic(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.png")
	writeTestPNG(t, path, color.RGBA{10, 20, 30, 255})

	f1, err := ExtractImageFeatures(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	f2, err := ExtractImageFeatures(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if f1.VisualHash != f2.VisualHash {
		t.Fatalf("expected stable visual hash, got %q vs %q", f1.VisualHash, f2.VisualHash)
	}
	if f1.ContentHash != f2.ContentHash {
		t.Fatalf("expected stable content hash, got %q vs %q", f1.ContentHash, f2.ContentHash)
	}
}

func TestExtractImageFeaturesDiffer(t *testing.T) {
	dir := t.TempDir()
	pathA := filepath.Join(dir, "a.png")
	pathB := filepath.Join(dir, "b.png")
	writeTestPNG(t, pathA, color.RGBA{0, 0, 0, 255})
	writeTestPNG(t, pathB, color.RGBA{255, 255, 255, 255})

	fa, err := ExtractImageFeatures(pathA)
	if err != nil {
		t.Fatalf("extract a: %v", err)
	}
	fb, err := ExtractImageFeatures(pathB)
	if err != nil {
		t.Fatalf("extract b: %v", err)
	}
	// Uniform images share a visual hash (every pixel equals the mean, so
	// every bit is set); black vs white differ in their color histogram.
	if fa.ColorProfileHash == fb.ColorProfileHash {
		t.Fatalf("expected different color profile hashes for black vs white images")
	}
}

func TestExtractGenericFeaturesHashesBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.xyz")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := ExtractGenericFeatures(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if f.FileKind != "XYZ" {
		t.Fatalf("expected file kind XYZ, got %q", f.FileKind)
	}
	if f.ContentHash == "" {
		t.Fatalf("expected non-empty content hash")
	}
}

func TestGenerateIDAndVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "data.xyz")
	if err := os.WriteFile(path, []byte("hello world"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err := ExtractGenericFeatures(path)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	gen := NewGenerator()
	id := gen.GenerateID(f)
	if !VerifyID(id, f) {
		t.Fatalf("expected generated id to verify against its own features")
	}

	f.ContentHash = "0000000000000000"
	if VerifyID(id, f) {
		t.Fatalf("expected verification to fail against tampered features")
	}
}

func TestCompareFeaturesIdenticalIDs(t *testing.T) {
	gen := NewGenerator()
	f1 := &Features{FileKind: "IMAGE", FileSize: 100, ContentHash: "abc", VisualHash: "def"}
	f2 := &Features{FileKind: "IMAGE", FileSize: 100, ContentHash: "abc", VisualHash: "def"}

	cmp := gen.CompareFeatures(f1, f2)
	if !cmp.IdenticalIDs {
		t.Fatalf("expected identical ids for identical feature records")
	}
	if cmp.SameVisualHash == nil || !*cmp.SameVisualHash {
		t.Fatalf("expected same visual hash to be true")
	}
}

func TestGetDocumentFeaturesDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "a.png")
	writeTestPNG(t, imgPath, color.RGBA{1, 2, 3, 255})

	f, err := GetDocumentFeatures(imgPath, nil)
	if err != nil {
		t.Fatalf("dispatch image: %v", err)
	}
	if f.FileKind != "IMAGE" {
		t.Fatalf("expected IMAGE file kind, got %q", f.FileKind)
	}
	if code := typeCode(f.FileKind); code != "IMG" {
		t.Fatalf("expected IMG type code for image file kind, got %q", code)
	}

	genericPath := filepath.Join(dir, "a.xyz")
	if err := os.WriteFile(genericPath, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	f, err = GetDocumentFeatures(genericPath, nil)
	if err != nil {
		t.Fatalf("dispatch generic: %v", err)
	}
	if f.FileKind != "XYZ" {
		t.Fatalf("expected XYZ file kind, got %q", f.FileKind)
	}

	pdfPath := filepath.Join(dir, "a.pdf")
	if err := os.WriteFile(pdfPath, []byte("%PDF-1.4"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := GetDocumentFeatures(pdfPath, nil); err == nil {
		t.Fatalf("expected error when no pdf opener is configured")
	}
}
