package util

import (
	"fmt"
	"io"
	"net/http"
	"strings"
)

// sniffLen matches http.DetectContentType's window.
const sniffLen = 512

// ValidateMimeType sniffs the leading bytes of an upload and checks the
// detected type against allowed prefixes ("image/", "video/") or exact
// types. The reader is consumed; callers seek back before storing.
func ValidateMimeType(reader io.Reader, allowedTypes []string) (string, error) {
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(reader, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}

	mimeType := http.DetectContentType(head[:n])
	for _, allowed := range allowedTypes {
		if mimeType == allowed || strings.HasPrefix(mimeType, allowed) {
			return mimeType, nil
		}
	}

	return mimeType, fmt.Errorf("invalid file type: %s", mimeType)
}

func IsImage(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeImage)
}

func IsVideo(mimeType string) bool {
	return strings.HasPrefix(mimeType, MimeVideo)
}
