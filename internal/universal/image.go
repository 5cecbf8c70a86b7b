package universal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/imaging"
)

// ExtractImageFeatures decodes an image file and computes its universal
// feature record: perceptual visual hash, color histogram hash, and a
// content hash over a fixed-order feature list.
func ExtractImageFeatures(path string) (*Features, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("universal: stat image: %w", err)
	}

	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("universal: decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	visualHash := CalculatePerceptualHash(img)
	colorHash := colorHistogramHash(img)

	contentFeatures := fmt.Sprintf(
		"size:%dx%d\nmode:RGB\nvisual_hash:%s\ncolor_hash:%s\nfile_size:%d",
		w, h, visualHash, colorHash, info.Size(),
	)
	contentSum := sha256.Sum256([]byte(contentFeatures))

	return &Features{
		FileKind:         "IMAGE",
		FileSize:         info.Size(),
		ContentHash:      hex.EncodeToString(contentSum[:])[:16],
		VisualHash:       visualHash,
		ColorProfileHash: colorHash,
		Dimensions:       fmt.Sprintf("%dx%d", w, h),
		CreationTime:     info.ModTime().Unix(),
		ModificationTime: info.ModTime().Unix(),
	}, nil
}

// colorHistogramHash serializes a 256-bucket-per-channel RGB histogram
// and hashes it, mirroring the original's PIL-histogram-based
// color_hash.
func colorHistogramHash(img image.Image) string {
	var histogram [3][256]int
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			histogram[0][r>>8]++
			histogram[1][g>>8]++
			histogram[2][b>>8]++
		}
	}
	buf := make([]byte, 0, 3*256*4)
	for _, channel := range histogram {
		for _, count := range channel {
			buf = append(buf, byte(count), byte(count>>8), byte(count>>16), byte(count>>24))
		}
	}
	sum := sha256.Sum256(buf)
	return hex.EncodeToString(sum[:])[:16]
}
