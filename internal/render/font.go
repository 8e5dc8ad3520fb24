package render

import (
	"fmt"
	"os"
	"strings"
)

// fallbackFamily is a PDF core font. Core fonts only cover a Latin-1 like range.
const fallbackFamily = "Helvetica"

// Font is a UTF-8 TrueType family loaded from disk.
type Font struct {
	Family  string
	Regular []byte
	Bold    []byte
}

// LoadFont reads the regular and bold faces of a TrueType family.
// It returns nil without error when either path is empty so callers fall back to Helvetica.
func LoadFont(family, regularPath, boldPath string) (*Font, error) {
	if regularPath == "" || boldPath == "" {
		return nil, nil
	}
	regular, err := os.ReadFile(regularPath)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", regularPath, err)
	}
	bold, err := os.ReadFile(boldPath)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", boldPath, err)
	}
	if family == "" {
		family = "Document"
	}
	return &Font{Family: family, Regular: regular, Bold: bold}, nil
}

var turkishToASCII = strings.NewReplacer(
	"ç", "c", "ğ", "g", "ı", "i", "ö", "o", "ş", "s", "ü", "u",
	"Ç", "C", "Ğ", "G", "İ", "I", "Ö", "O", "Ş", "S", "Ü", "U",
	"â", "a", "î", "i", "û", "u", "Â", "A", "Î", "I", "Û", "U",
)

// asciiText transliterates Turkish letters and replaces any other non-ASCII rune with '?'.
func asciiText(s string) string {
	s = turkishToASCII.Replace(s)
	return strings.Map(func(r rune) rune {
		if r > 0x7e {
			return '?'
		}
		return r
	}, s)
}

func identity(s string) string { return s }
