// Package envelope implements the envelope codec (spec component G):
// serializing the blueprint entity model to JSON, compressing it, and
// framing the result as the game's importable string.
package envelope

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"

	"github.com/klauspost/compress/flate"

	"github.com/colinchilds/giftorio/internal/catalog"
	"github.com/colinchilds/giftorio/internal/entity"
)

// versionByte is the single-byte format marker prepended before the
// base64-encoded, deflate-compressed JSON payload.
const versionByte = '0'

// Encode serializes bp to the blueprint JSON document, compresses it with
// deflate, and returns the final `'0' || base64(deflate(json))` string.
// icons becomes the blueprint's icon list, in order; label is the
// blueprint's display name.
func Encode(bp *entity.Blueprint, label string, icons []catalog.Signal) (string, error) {
	doc, err := toDocument(bp, label, icons)
	if err != nil {
		return "", err
	}

	// Struct field order (not map iteration) gives the stable key order
	// the determinism invariant requires; no field in this document tree
	// is a map.
	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return "", fmt.Errorf("envelope: marshal: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteByte(versionByte)

	b64 := base64.NewEncoder(base64.StdEncoding, &buf)
	fw, err := flate.NewWriter(b64, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("envelope: new deflate writer: %w", err)
	}
	if _, err := fw.Write(jsonBytes); err != nil {
		return "", fmt.Errorf("envelope: deflate write: %w", err)
	}
	if err := fw.Close(); err != nil {
		return "", fmt.Errorf("envelope: deflate close: %w", err)
	}
	if err := b64.Close(); err != nil {
		return "", fmt.Errorf("envelope: base64 close: %w", err)
	}

	return buf.String(), nil
}

// Decode reverses Encode, returning the raw JSON bytes it produced — used
// by tests to check the round-trip invariant and to inspect the decoded
// document.
func Decode(s string) ([]byte, error) {
	if len(s) == 0 || s[0] != versionByte {
		return nil, fmt.Errorf("envelope: missing or unrecognized version byte")
	}
	raw, err := base64.StdEncoding.DecodeString(s[1:])
	if err != nil {
		return nil, fmt.Errorf("envelope: base64 decode: %w", err)
	}
	fr := flate.NewReader(bytes.NewReader(raw))
	defer fr.Close()
	out, err := io.ReadAll(fr)
	if err != nil {
		return nil, fmt.Errorf("envelope: inflate: %w", err)
	}
	return out, nil
}
