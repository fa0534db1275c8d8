package compression

import (
	"compress/gzip"
	"io"
	"strings"

	"github.com/andybalholm/brotli"
)

// CompressionType 压缩编码类型
type CompressionType string

const (
	CompressionGzip   CompressionType = "gzip"
	CompressionBrotli CompressionType = "br"
)

// Compressor 压缩器接口
type Compressor interface {
	Compress(w io.Writer) (io.WriteCloser, error)
}

// Manager 根据Accept-Encoding选择压缩器
type Manager interface {
	SelectCompressor(acceptEncoding string) (Compressor, CompressionType)
}

// Config 压缩配置
type Config struct {
	GzipLevel   int
	BrotliLevel int
}

type gzipCompressor struct {
	level int
}

func (g *gzipCompressor) Compress(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriterLevel(w, g.level)
}

type brotliCompressor struct {
	level int
}

func (b *brotliCompressor) Compress(w io.Writer) (io.WriteCloser, error) {
	return brotli.NewWriterLevel(w, b.level), nil
}

type manager struct {
	gzip   Compressor
	brotli Compressor
}

// NewManager 创建压缩管理器
func NewManager(cfg Config) Manager {
	gzipLevel := cfg.GzipLevel
	if gzipLevel < gzip.HuffmanOnly || gzipLevel > gzip.BestCompression {
		gzipLevel = gzip.DefaultCompression
	}
	brotliLevel := cfg.BrotliLevel
	if brotliLevel < brotli.BestSpeed || brotliLevel > brotli.BestCompression {
		brotliLevel = brotli.DefaultCompression
	}

	return &manager{
		gzip:   &gzipCompressor{level: gzipLevel},
		brotli: &brotliCompressor{level: brotliLevel},
	}
}

// SelectCompressor 按客户端声明的编码偏好选择压缩器，brotli优先
func (m *manager) SelectCompressor(acceptEncoding string) (Compressor, CompressionType) {
	if strings.Contains(acceptEncoding, "br") {
		return m.brotli, CompressionBrotli
	}
	if strings.Contains(acceptEncoding, "gzip") {
		return m.gzip, CompressionGzip
	}
	return nil, ""
}
