// Package universal implements the format-sensitive (as opposed to
// content-canonical) document identifier: a fixed-order feature record
// computed from raw file bytes/structure, including a perceptual visual
// hash, hashed to a short identifier. Used for exact/near-exact file
// deduplication, not economic equivalence.
package universal

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Features is the fixed-order record computed from a raw file. Missing
// optional fields become empty segments in the canonical string.
type Features struct {
	FileKind         string
	FileSize         int64
	ContentHash      string
	VisualHash       string
	TextHash         string
	MetadataHash     string
	StructureHash    string
	ColorProfileHash string
	Dimensions       string // "WxH", empty if not applicable
	PageCount        int    // 0 means absent
	CreationTime     int64  // floor(unix seconds), 0 means absent
	ModificationTime int64
}

var typeCodes = map[string]string{
	"PDF":   "PDF",
	"IMAGE": "IMG",
	"IMG":   "IMG",
	"JPG":   "IMG",
	"JPEG":  "IMG",
	"PNG":   "IMG",
	"GIF":   "IMG",
	"BMP":   "IMG",
	"TIFF":  "IMG",
	"WEBP":  "IMG",
}

// Generator builds universal identifiers with a configured prefix.
type Generator struct {
	Prefix string
}

// NewGenerator returns a Generator using the unified default prefix
// "DOC", shared with the content-canonical identifier family rather
// than a separate "UNIV" prefix (see DESIGN.md for the rationale).
func NewGenerator() *Generator { return &Generator{Prefix: "DOC"} }

// NewGeneratorWithPrefix returns a Generator using a custom prefix.
func NewGeneratorWithPrefix(prefix string) *Generator { return &Generator{Prefix: prefix} }

// CanonicalString concatenates the fixed-order feature fields with "|",
// part of the external wire contract; this order must never change.
func CanonicalString(f *Features) string {
	dims := f.Dimensions
	pageCount := ""
	if f.PageCount > 0 {
		pageCount = strconv.Itoa(f.PageCount)
	}
	creation := ""
	if f.CreationTime > 0 {
		creation = strconv.FormatInt(f.CreationTime, 10)
	}
	modification := ""
	if f.ModificationTime > 0 {
		modification = strconv.FormatInt(f.ModificationTime, 10)
	}

	segments := []string{
		f.FileKind,
		strconv.FormatInt(f.FileSize, 10),
		f.ContentHash,
		f.VisualHash,
		f.TextHash,
		f.MetadataHash,
		f.StructureHash,
		f.ColorProfileHash,
		dims,
		pageCount,
		creation,
		modification,
	}
	return strings.Join(segments, "|")
}

func typeCode(fileKind string) string {
	if code, ok := typeCodes[fileKind]; ok {
		return code
	}
	if len(fileKind) >= 3 {
		return strings.ToUpper(fileKind[:3])
	}
	return strings.ToUpper(fileKind)
}

// GenerateID builds the universal DocumentId from a Features record.
func (g *Generator) GenerateID(f *Features) string {
	canonical := CanonicalString(f)
	sum := sha256.Sum256([]byte(canonical))
	hash16 := strings.ToUpper(hex.EncodeToString(sum[:])[:16])
	return fmt.Sprintf("%s-%s-%s", g.Prefix, typeCode(f.FileKind), hash16)
}

// VerifyID recomputes the hash from f and compares it against id's hash
// segment in constant time.
func VerifyID(id string, f *Features) bool {
	_, _, hash16, err := ParseID(id)
	if err != nil {
		return false
	}
	canonical := CanonicalString(f)
	sum := sha256.Sum256([]byte(canonical))
	computed := strings.ToUpper(hex.EncodeToString(sum[:])[:16])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash16)) == 1
}

// ParseID splits a universal DocumentId into prefix, type code, hash16.
func ParseID(id string) (prefix, typeCode, hash16 string, err error) {
	parts := strings.Split(id, "-")
	if len(parts) != 3 {
		return "", "", "", errors.New("universal: invalid document id format")
	}
	return parts[0], parts[1], parts[2], nil
}

// Comparison reports structural similarity between two feature records
// without requiring identical identifiers.
type Comparison struct {
	IdenticalIDs    bool
	ID1, ID2        string
	SameType        bool
	SameSize        bool
	SameContentHash bool
	SameVisualHash  *bool
	SameTextHash    *bool
}

// CompareFeatures compares two feature records field by field, without
// requiring their derived identifiers to match.
func (g *Generator) CompareFeatures(f1, f2 *Features) *Comparison {
	id1 := g.GenerateID(f1)
	id2 := g.GenerateID(f2)
	c := &Comparison{
		IdenticalIDs:    id1 == id2,
		ID1:             id1,
		ID2:             id2,
		SameType:        f1.FileKind == f2.FileKind,
		SameSize:        f1.FileSize == f2.FileSize,
		SameContentHash: f1.ContentHash == f2.ContentHash,
	}
	if f1.VisualHash != "" && f2.VisualHash != "" {
		eq := f1.VisualHash == f2.VisualHash
		c.SameVisualHash = &eq
	}
	if f1.TextHash != "" && f2.TextHash != "" {
		eq := f1.TextHash == f2.TextHash
		c.SameTextHash = &eq
	}
	return c
}
