package universal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ExtractGenericFeatures handles any file extension not recognized as a
// PDF or image: the content hash is the SHA-256 of the full file bytes,
// and the file kind is the uppercased extension.
func ExtractGenericFeatures(path string) (*Features, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("universal: stat file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("universal: read file: %w", err)
	}

	sum := sha256.Sum256(data)
	kind := strings.TrimPrefix(strings.ToUpper(filepath.Ext(path)), ".")
	if kind == "" {
		kind = "UNKNOWN"
	}

	return &Features{
		FileKind:         kind,
		FileSize:         info.Size(),
		ContentHash:      hex.EncodeToString(sum[:])[:16],
		ModificationTime: info.ModTime().Unix(),
	}, nil
}
