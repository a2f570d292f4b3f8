// Package filetype classifies binary payloads by their leading magic number,
// ignoring whatever content type the client declared.
package filetype

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// HeaderLen is the number of leading bytes inspected.
const HeaderLen = 8

const OctetStream = "application/octet-stream"

type signature struct {
	magic string
	mime  string
}

// RIFF (52494646) also starts WAV and AVI files, and the zip prefix also starts
// docx, xlsx and jar archives. Callers needing a finer answer must look past
// the first eight bytes.
var signatures = []signature{
	{magic: "FFD8FF", mime: "image/jpeg"},
	{magic: "89504E47", mime: "image/png"},
	{magic: "47494638", mime: "image/gif"},
	{magic: "52494646", mime: "image/webp"},
	{magic: "504B0304", mime: "application/zip"},
	{magic: "25504446", mime: "application/pdf"},
	{magic: "0000001866747970", mime: "video/mp4"},
	{magic: "4944330300000000", mime: "audio/mp3"},
}

// Detect reads up to HeaderLen bytes from r and returns the matching MIME
// type, or OctetStream when nothing is readable or nothing matches.
// The consumed bytes are not pushed back.
func Detect(r io.Reader) (string, error) {
	const op = "lib.filetype.Detect"

	header := make([]byte, HeaderLen)
	n, err := io.ReadFull(r, header)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return DetectBytes(header[:n]), nil
}

// DetectBytes classifies an in-memory prefix. Bytes past HeaderLen are ignored.
func DetectBytes(b []byte) string {
	if len(b) == 0 {
		return OctetStream
	}
	if len(b) > HeaderLen {
		b = b[:HeaderLen]
	}

	header := strings.ToUpper(hex.EncodeToString(b))
	for _, s := range signatures {
		if strings.HasPrefix(header, s.magic) {
			return s.mime
		}
	}

	return OctetStream
}
