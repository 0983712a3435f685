package genoseq

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
)

// codec handles byte-level compression for both adaptive paths: DEFLATE
// (zlib) at maximum level for generic chunks, zstd at best-compression
// level for highly repetitive chunks. The zstd encoder/decoder pair is
// reused across chunks; zlib streams are cheap enough to build per call.
type codec struct {
	zstdEnc *zstd.Encoder
	zstdDec *zstd.Decoder
}

func newCodec() (*codec, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd encoder: %w", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, fmt.Errorf("failed to create zstd decoder: %w", err)
	}
	return &codec{zstdEnc: enc, zstdDec: dec}, nil
}

// compress compresses data with the given codec kind.
func (c *codec) compress(kind CompressionType, data []byte) ([]byte, error) {
	switch kind {
	case CompressionZstd:
		return c.zstdEnc.EncodeAll(data, make([]byte, 0, len(data))), nil
	case CompressionDeflate:
		var buf bytes.Buffer
		zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
		if err != nil {
			return nil, fmt.Errorf("failed to create zlib writer: %w", err)
		}
		if _, err := zw.Write(data); err != nil {
			return nil, fmt.Errorf("failed to compress chunk: %w", err)
		}
		if err := zw.Close(); err != nil {
			return nil, fmt.Errorf("failed to flush zlib stream: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown compression type %q", kind)
	}
}

// decompress reverses compress for the given codec kind.
func (c *codec) decompress(kind CompressionType, data []byte) ([]byte, error) {
	switch kind {
	case CompressionZstd:
		out, err := c.zstdDec.DecodeAll(data, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress zstd chunk: %w", err)
		}
		return out, nil
	case CompressionDeflate:
		zr, err := zlib.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to open zlib stream: %w", err)
		}
		defer zr.Close()
		out, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress zlib chunk: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown compression type %q", kind)
	}
}

// Close releases the zstd encoder/decoder.
func (c *codec) Close() error {
	if c.zstdEnc != nil {
		c.zstdEnc.Close()
	}
	if c.zstdDec != nil {
		c.zstdDec.Close()
	}
	return nil
}
