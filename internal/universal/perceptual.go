package universal

import (
	"crypto/sha256"
	"encoding/hex"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

const hashSide = 32
const hashPixels = hashSide * hashSide

// CalculatePerceptualHash computes the 1024-bit mean-threshold
// perceptual hash: grayscale, pad to a white square, resize to 32x32
// with Lanczos, threshold against the mean, hex-encode, and take the
// first 16 hex characters of the SHA-256 of that hex string. Stable
// across re-encoding and small resampling; not cropping or rotation.
func CalculatePerceptualHash(img image.Image) string {
	gray := imaging.Grayscale(img)

	bounds := gray.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	side := w
	if h > side {
		side = h
	}
	padded := imaging.PasteCenter(imaging.New(side, side, color.White), gray)

	small := imaging.Resize(padded, hashSide, hashSide, imaging.Lanczos)

	pixels := make([]uint8, 0, hashPixels)
	var sum int
	sb := small.Bounds()
	for y := sb.Min.Y; y < sb.Max.Y; y++ {
		for x := sb.Min.X; x < sb.Max.X; x++ {
			r, _, _, _ := small.At(x, y).RGBA()
			v := uint8(r >> 8)
			pixels = append(pixels, v)
			sum += int(v)
		}
	}
	if len(pixels) == 0 {
		return ""
	}
	mean := float64(sum) / float64(len(pixels))

	bitString := bitStringFromPixels(pixels, mean)
	hexHash := hexFromBits(bitString)

	sumHash := sha256.Sum256([]byte(hexHash))
	return hex.EncodeToString(sumHash[:])[:16]
}

func bitStringFromPixels(pixels []uint8, mean float64) []bool {
	out := make([]bool, len(pixels))
	for i, p := range pixels {
		out[i] = float64(p) >= mean
	}
	return out
}

// hexFromBits packs a bit slice (length a multiple of 4) into lowercase
// hex, matching the original's `hex(int(bits, 2))` zero-padded encoding.
func hexFromBits(bitsSlice []bool) string {
	const nibbleWidth = 4
	n := len(bitsSlice) / nibbleWidth
	out := make([]byte, n)
	hexDigits := "0123456789abcdef"
	for i := 0; i < n; i++ {
		var nibble uint8
		for j := 0; j < nibbleWidth; j++ {
			nibble <<= 1
			if bitsSlice[i*nibbleWidth+j] {
				nibble |= 1
			}
		}
		out[i] = hexDigits[nibble]
	}
	return string(out)
}
