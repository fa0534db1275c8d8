package render

import (
	"fmt"
	"strings"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/legal"
)

// Format 报告输出格式
type Format string

const (
	FormatJSON     Format = "json"
	FormatPDF      Format = "pdf"
	FormatHTML     Format = "html"
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
)

// ParseFormat 解析输出格式，兼容常见别名
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "pdf":
		return FormatPDF, nil
	case "html", "htm":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "text", "txt":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unsupported output format: %q", s)
	}
}

// ContentType 对应的响应Content-Type
func (f Format) ContentType() string {
	switch f {
	case FormatPDF:
		return "application/pdf"
	case FormatHTML:
		return "text/html; charset=utf-8"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Extension 附件文件扩展名
func (f Format) Extension() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatHTML:
		return "html"
	case FormatMarkdown:
		return "md"
	case FormatText:
		return "txt"
	default:
		return "json"
	}
}

// Render 按格式渲染报告，JSON由HTTP层直接编码，不经过这里
func Render(report *legal.SupportReport, format Format) ([]byte, error) {
	switch format {
	case FormatHTML:
		return []byte(ToHTML(report)), nil
	case FormatMarkdown:
		return []byte(ToMarkdown(report)), nil
	case FormatText:
		return []byte(ToText(report)), nil
	case FormatPDF:
		return ToPDF(report)
	default:
		return nil, fmt.Errorf("format %q has no renderer", format)
	}
}
