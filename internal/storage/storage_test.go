package storage

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var imageNamePattern = regexp.MustCompile(`^[0-9a-z]+-\d+(\.[A-Za-z0-9]+)?$`)

func TestNewImageName(t *testing.T) {
	testCases := []struct {
		name     string
		original string
		wantExt  string
	}{
		{"JPEG", "photo.jpg", ".jpg"},
		{"PNG with path", "covers/anh-bia.png", ".png"},
		{"No extension", "rawfile", ""},
		{"Double extension keeps last", "archive.tar.gz", ".gz"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NewImageName(tc.original)

			assert.True(t, strings.HasSuffix(got, tc.wantExt),
				"expected %q to end with %q", got, tc.wantExt)
			assert.True(t, imageNamePattern.MatchString(got),
				"expected %q to match token-timestamp pattern", got)
		})
	}
}

func TestNewImageNameIsCollisionResistant(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		name := NewImageName("a.jpg")
		require.False(t, seen[name], "duplicate object name %q", name)
		seen[name] = true
	}
}

func TestUploadError(t *testing.T) {
	cause := errors.New("connection refused")
	err := &UploadError{Message: "Lỗi upload ảnh", Err: cause}

	assert.Contains(t, err.Error(), "Lỗi upload ảnh")
	assert.Contains(t, err.Error(), "connection refused")
	assert.ErrorIs(t, err, cause)

	bare := &UploadError{Message: "Lỗi upload ảnh"}
	assert.Equal(t, "Lỗi upload ảnh", bare.Error())
}

func TestPublicURLJoinsBase(t *testing.T) {
	s := &S3ObjectStore{bucket: "blog-images", publicBaseURL: "https://cdn.example.com/blog-images"}
	assert.Equal(t, "https://cdn.example.com/blog-images/abc-1.jpg", s.PublicURL("abc-1.jpg"))
}
