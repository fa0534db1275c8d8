package legal

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/time/rate"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/cache"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/constants"
)

const userAgent = "Outlaw-Legal-AI/1.0"

// StatuteClient 公共法规库（govinfo.gov）查询客户端
//
// 结果经缓存复用以减少外部请求；对上游的请求频率由令牌桶限制，
// 被限流时直接视为查询失败，由调用方回退本地数据。
type StatuteClient struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	cache   *cache.Cache
}

// statuteAPIResponse govinfo集合接口的响应结构
type statuteAPIResponse struct {
	Packages []struct {
		PackageID string `json:"packageId"`
		Title     string `json:"title"`
	} `json:"packages"`
}

// NewStatuteClient 创建法规查询客户端
func NewStatuteClient(baseURL string, timeout time.Duration, c *cache.Cache) *StatuteClient {
	transport := &http.Transport{
		MaxIdleConns:        10,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}
	// 上游支持HTTP/2，复用连接
	if err := http2.ConfigureTransport(transport); err != nil {
		log.Printf("[Engine] HTTP/2配置失败，降级为HTTP/1.1: %v", err)
	}

	return &StatuteClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		limiter: rate.NewLimiter(rate.Limit(constants.StatuteAPIRate), constants.StatuteAPIBurst),
		cache:   c,
	}
}

// FetchStatutes 从公共法规库查询法规摘要
//
// 任何失败（超时、非2xx、被本地令牌桶限流）都返回空结果且不写缓存，
// 调用方回退到内置法规数据。成功结果缓存1小时。
func (sc *StatuteClient) FetchStatutes(ctx context.Context, jurisdiction, query string) []Statute {
	cacheKey := cache.GenerateCacheKey("statutes", []interface{}{jurisdiction, query}, nil)
	if cached, ok := sc.cache.Get(cacheKey); ok {
		log.Printf("[Engine] 命中法规缓存: %s", jurisdiction)
		if statutes, ok := cached.([]Statute); ok {
			return statutes
		}
	}

	if !sc.limiter.Allow() {
		log.Printf("[Engine] 法规API请求被本地限流: %s", jurisdiction)
		return nil
	}

	statutes, err := sc.fetch(ctx, jurisdiction)
	if err != nil {
		log.Printf("[Engine] 法规API查询失败 %s: %v", jurisdiction, err)
		return nil
	}

	log.Printf("[Engine] 从法规API获取了 %d 条法规: %s", len(statutes), jurisdiction)
	sc.cache.Set(cacheKey, statutes, constants.DefaultCacheTTL)
	return statutes
}

func (sc *StatuteClient) fetch(ctx context.Context, jurisdiction string) ([]Statute, error) {
	url := fmt.Sprintf("%s/collections/%scode/2022-01-01", sc.baseURL, strings.ToLower(jurisdiction))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := sc.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var apiResp statuteAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var results []Statute
	for i, pkg := range apiResp.Packages {
		if i >= constants.MaxStatuteResults {
			break
		}
		title := pkg.Title
		if len(title) > constants.MaxStatuteTitle {
			title = title[:constants.MaxStatuteTitle]
		}
		results = append(results, Statute{
			Citation:     pkg.PackageID,
			Title:        title,
			Jurisdiction: jurisdiction,
			Summary:      "Reference from public collection: " + pkg.Title,
		})
	}

	return results, nil
}
