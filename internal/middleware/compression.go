package middleware

import (
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/compression"
)

// compressResponseWriter 包装ResponseWriter，按需压缩响应体
type compressResponseWriter struct {
	http.ResponseWriter
	compressor compression.Compressor
	writer     io.WriteCloser
	written    bool
	compressed bool
}

// CompressionMiddleware 响应压缩中间件
//
// 只压缩文本类响应（JSON/HTML/Markdown/纯文本），PDF等二进制附件不压缩。
func CompressionMiddleware(manager compression.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			compressor, encoding := manager.SelectCompressor(r.Header.Get("Accept-Encoding"))
			if compressor == nil {
				next.ServeHTTP(w, r)
				return
			}

			cw := &compressResponseWriter{
				ResponseWriter: w,
				compressor:     compressor,
			}
			cw.Header().Set("Content-Encoding", string(encoding))
			cw.Header().Add("Vary", "Accept-Encoding")

			defer func() {
				if cw.writer != nil {
					cw.writer.Close()
				}
			}()

			next.ServeHTTP(cw, r)
		})
	}
}

func (cw *compressResponseWriter) WriteHeader(statusCode int) {
	if cw.written {
		return
	}
	cw.written = true

	if shouldCompressType(cw.Header().Get("Content-Type")) {
		cw.compressed = true
		// 内容将被压缩，原始长度不再有效
		cw.Header().Del("Content-Length")
	} else {
		cw.Header().Del("Content-Encoding")
	}

	cw.ResponseWriter.WriteHeader(statusCode)
}

func (cw *compressResponseWriter) Write(b []byte) (int, error) {
	if !cw.written {
		cw.WriteHeader(http.StatusOK)
	}

	if !cw.compressed {
		return cw.ResponseWriter.Write(b)
	}

	if cw.writer == nil {
		var err error
		cw.writer, err = cw.compressor.Compress(cw.ResponseWriter)
		if err != nil {
			return 0, err
		}
	}

	return cw.writer.Write(b)
}

// shouldCompressType 判断内容类型是否值得压缩
func shouldCompressType(contentType string) bool {
	mimeType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	compressiblePrefixes := []string{
		"text/",
		"application/json",
		"application/javascript",
		"application/xml",
	}

	for _, prefix := range compressiblePrefixes {
		if strings.HasPrefix(mimeType, prefix) {
			return true
		}
	}
	return false
}
