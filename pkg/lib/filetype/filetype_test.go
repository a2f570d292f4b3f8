package filetype

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"jpeg jfif", []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46}, "image/jpeg"},
		{"jpeg short", []byte{0xFF, 0xD8, 0xFF}, "image/jpeg"},
		{"png", []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, "image/png"},
		{"gif89a", []byte("GIF89a\x01\x00"), "image/gif"},
		{"riff", []byte("RIFF\x24\x00\x00\x00WEBPVP8 "), "image/webp"},
		{"zip", []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00, 0x06, 0x00}, "application/zip"},
		{"pdf", []byte("%PDF-1.7\n"), "application/pdf"},
		{"mp4", []byte{0x00, 0x00, 0x00, 0x18, 0x66, 0x74, 0x79, 0x70, 0x6D, 0x70, 0x34}, "video/mp4"},
		{"mp3 id3v2.3", []byte{0x49, 0x44, 0x33, 0x03, 0x00, 0x00, 0x00, 0x00, 0x21}, "audio/mp3"},
		{"mp3 id3v2.4 is unknown", []byte{0x49, 0x44, 0x33, 0x04, 0x00, 0x00, 0x00, 0x00}, OctetStream},
		{"svg", []byte("<svg xmlns=\"http://www.w3.org/2000/svg\"/>"), OctetStream},
		{"truncated png", []byte{0x89, 0x50, 0x4E}, OctetStream},
		{"text", []byte("hello, world"), OctetStream},
		{"empty", nil, OctetStream},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Detect(bytes.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Detect() unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Detect(% X) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDetectConsumesAtMostHeaderLen(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46, 0x00}
	r := bytes.NewReader(payload)

	if _, err := Detect(r); err != nil {
		t.Fatalf("Detect() unexpected error: %v", err)
	}

	rest, _ := io.ReadAll(r)
	if len(rest) != len(payload)-HeaderLen {
		t.Errorf("remaining %d bytes, expected %d", len(rest), len(payload)-HeaderLen)
	}
}

type failingReader struct{ err error }

func (f failingReader) Read([]byte) (int, error) { return 0, f.err }

func TestDetectPropagatesReadError(t *testing.T) {
	readErr := errors.New("connection reset")

	got, err := Detect(failingReader{err: readErr})
	if !errors.Is(err, readErr) {
		t.Fatalf("Detect() error = %v, expected %v", err, readErr)
	}
	if got != "" {
		t.Errorf("Detect() = %q on error, expected empty", got)
	}
}

func TestDetectBytesIgnoresTail(t *testing.T) {
	// the PDF marker sits past the inspected window
	b := append([]byte("notmagic"), []byte("%PDF")...)
	if got := DetectBytes(b); got != OctetStream {
		t.Errorf("DetectBytes() = %q, expected %q", got, OctetStream)
	}
}
