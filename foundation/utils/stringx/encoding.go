// File: encoding.go
// Title: Charset Aware Byte Helpers
// Description: Measures and serializes strings in a chosen character
//              encoding. EncodeState and DecodeState wrap the encoded bytes
//              in standard Base64 so that they can travel as text.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation on golang.org/x/text

package stringx

import (
	"encoding/base64"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/validationx"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// LookupEncoding resolves an IANA charset name or alias such as "UTF-8",
// "UTF-16LE", "ISO-8859-1" or "windows-1252".
func LookupEncoding(name string) (encoding.Encoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, mdwerrors.InvalidInput(mdwerrors.ModuleStringx, "lookup_encoding", name, "supported IANA charset name")
	}
	return enc, nil
}

// ByteLength returns the number of bytes s occupies in enc. A nil enc
// means UTF-8. Runes enc cannot represent count as its replacement.
func ByteLength(s string, enc encoding.Encoding) (int, error) {
	if err := validationx.RequireValidString(mdwerrors.ModuleStringx, "byte_length", s); err != nil {
		return 0, err
	}
	b, err := encode(s, enc)
	if err != nil {
		return 0, mdwerrors.EncodingFailed(mdwerrors.ModuleStringx, "byte_length", err)
	}
	return len(b), nil
}

// EncodeState encodes s with enc and returns the bytes as standard Base64.
// A nil enc means UTF-8.
func EncodeState(s string, enc encoding.Encoding) (string, error) {
	if err := validationx.RequireValidString(mdwerrors.ModuleStringx, "encode_state", s); err != nil {
		return "", err
	}
	b, err := encode(s, enc)
	if err != nil {
		return "", mdwerrors.EncodingFailed(mdwerrors.ModuleStringx, "encode_state", err)
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeState reverses EncodeState. A nil enc means UTF-8.
func DecodeState(s string, enc encoding.Encoding) (string, error) {
	if err := validationx.RequireValidString(mdwerrors.ModuleStringx, "decode_state", s); err != nil {
		return "", err
	}
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", mdwerrors.EncodingFailed(mdwerrors.ModuleStringx, "decode_state", err)
	}
	out, err := resolve(enc).NewDecoder().Bytes(raw)
	if err != nil {
		return "", mdwerrors.EncodingFailed(mdwerrors.ModuleStringx, "decode_state", err)
	}
	return string(out), nil
}

func encode(s string, enc encoding.Encoding) ([]byte, error) {
	return encoding.ReplaceUnsupported(resolve(enc).NewEncoder()).Bytes([]byte(s))
}

func resolve(enc encoding.Encoding) encoding.Encoding {
	if enc == nil {
		return unicode.UTF8
	}
	return enc
}
