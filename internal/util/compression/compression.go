// Package compression wraps the codecs used to store post bodies at rest.
package compression

// Compressor is a symmetric byte-slice codec.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
	Decompress(data []byte) ([]byte, error)
}
