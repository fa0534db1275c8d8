package archive

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/config"
)

// uploader 对象上传接口，便于测试替换
type uploader interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
}

// Archiver 生成的报告归档器
//
// 配置完整时把渲染好的报告异步上传到S3，按年月分目录。
// 上传是尽力而为的，失败只记日志，不影响请求响应。
type Archiver struct {
	client uploader
	prefix string
}

// NewArchiver 创建归档器，归档配置不完整时返回nil（归档禁用）
func NewArchiver(cfg *config.Config) *Archiver {
	if !cfg.ArchiveEnabled() {
		log.Printf("[Archive] 归档配置不完整，报告归档已禁用")
		return nil
	}

	client, err := NewS3Client(cfg.Archive)
	if err != nil {
		log.Printf("[Archive] S3客户端创建失败，报告归档已禁用: %v", err)
		return nil
	}

	log.Printf("[Archive] 报告归档已启用: bucket=%s prefix=%s", cfg.Archive.Bucket, cfg.Archive.Prefix)
	return &Archiver{
		client: client,
		prefix: strings.Trim(cfg.Archive.Prefix, "/"),
	}
}

// ArchiveReport 异步归档一份渲染好的报告
func (a *Archiver) ArchiveReport(county, extension string, data []byte, contentType string) {
	if a == nil {
		return
	}

	now := time.Now().UTC()
	key := fmt.Sprintf("%s/%04d/%02d/OutlawLegalAI_%s_%d.%s",
		a.prefix, now.Year(), now.Month(), sanitize(county), now.UnixNano(), extension)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := a.client.Upload(ctx, key, data, contentType); err != nil {
			log.Printf("[Archive] 报告归档失败 %s: %v", key, err)
			return
		}
		log.Printf("[Archive] 报告已归档: %s", key)
	}()
}

// sanitize 清理对象键中的不安全字符
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		case r == ' ':
			return '_'
		default:
			return -1
		}
	}, s)
}
