// Package storage implements the image upload gateway backed by
// S3-compatible object storage.
package storage

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

// ObjectStore uploads binary assets and resolves their public URLs.
type ObjectStore interface {
	Upload(ctx context.Context, name string, data []byte, contentType string) error
	PublicURL(name string) string
}

// UploadError carries a human-readable message for the admin UI. The
// caller must leave prior state (e.g. the previous cover image)
// unchanged when it receives one.
type UploadError struct {
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *UploadError) Unwrap() error { return e.Err }

// NewImageName builds a collision-resistant object name from a random
// base-36 token, the current unix-millisecond timestamp, and the
// original file extension.
func NewImageName(original string) string {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms; fall back to
		// a time-derived token so uploads keep working regardless.
		binary.BigEndian.PutUint64(buf[:], uint64(time.Now().UnixNano()))
	}
	token := strconv.FormatUint(binary.BigEndian.Uint64(buf[:]), 36)

	return fmt.Sprintf("%s-%d%s", token, time.Now().UnixMilli(), path.Ext(original))
}

var storageLogger zerolog.Logger

func SetLogger(l zerolog.Logger) {
	storageLogger = l
}
