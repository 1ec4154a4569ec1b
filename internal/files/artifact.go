// Package files reads and writes the schema artifact as text in a configured
// character encoding.
//
// Each operation opens, fully reads or writes, and closes the file; no handles
// are held across operations. Charset names are resolved through the IANA
// registry (golang.org/x/text), so any registered encoding name works, with
// UTF-8 as the default.
package files

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/tvalden/schemaguard/pkg/schemaguard"
)

// ReadText reads the entire file at path and decodes it from charset.
// An empty charset means UTF-8.
func ReadText(path, charset string) (string, error) {
	enc, err := encodingFor(charset)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if enc == nil {
		return string(data), nil
	}

	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s as %s: %w", path, charset, err)
	}
	return string(decoded), nil
}

// WriteText encodes text into charset and writes it to path, replacing the
// file's entire contents. An empty charset means UTF-8.
func WriteText(path, text, charset string) error {
	enc, err := encodingFor(charset)
	if err != nil {
		return err
	}

	data := []byte(text)
	if enc != nil {
		data, err = enc.NewEncoder().Bytes(data)
		if err != nil {
			return fmt.Errorf("failed to encode %s as %s: %w", path, charset, err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// encodingFor resolves an IANA charset name to an encoding.
// Returns a nil encoding for UTF-8, which needs no transformation.
func encodingFor(charset string) (encoding.Encoding, error) {
	if charset == "" {
		charset = schemaguard.DefaultCharset
	}

	switch strings.ToLower(charset) {
	case "utf-8", "utf8":
		return nil, nil
	}

	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported charset %q: %w", charset, schemaguard.ErrInvalidConfig)
	}
	return enc, nil
}
