package legal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/cache"
)

func newTestEngine(t *testing.T, apiURL string) *Engine {
	t.Helper()
	c, err := cache.New(100, time.Hour)
	if err != nil {
		t.Fatal("Failed to create cache:", err)
	}
	return NewEngine(NewStatuteClient(apiURL, time.Second, c))
}

func TestEngineBuildWithFallback(t *testing.T) {
	// 法规API不可用时使用内置数据
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	engine := newTestEngine(t, server.URL)
	report := engine.Build(context.Background(), "California", "Riverside",
		"Buyer failed to pay $5,000 after taking possession of the horse on January 15, 2025.",
		[]EvidenceItem{
			{Label: "Sales Contract", Description: "Signed agreement dated January 10, 2025"},
			{Label: "Payment Reminders", Description: "Email chain showing 3 payment requests"},
		})

	if report.Jurisdiction != "California" || report.County != "Riverside" {
		t.Errorf("report header = %s/%s", report.Jurisdiction, report.County)
	}
	if len(report.Statutes) == 0 {
		t.Error("report should fall back to built-in statutes")
	}
	if report.Statutes[0].Citation != "Cal. Civ. Code §1550" {
		t.Errorf("first fallback statute = %s", report.Statutes[0].Citation)
	}
	if len(report.Procedures) == 0 {
		t.Error("report should include procedural rules")
	}
	if len(report.Risks) == 0 {
		t.Error("risk list must be non-empty")
	}
	if report.Score.Overall < 0 || report.Score.Overall > 100 {
		t.Errorf("Overall = %d, want within [0, 100]", report.Score.Overall)
	}
}

func TestStatuteClientFetchesAndCaches(t *testing.T) {
	apiCalls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiCalls++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"packages":[
			{"packageId":"CA-CODE-2022-1","title":"California Civil Code Title 1"},
			{"packageId":"CA-CODE-2022-2","title":"California Civil Code Title 2"},
			{"packageId":"CA-CODE-2022-3","title":"California Civil Code Title 3"},
			{"packageId":"CA-CODE-2022-4","title":"California Civil Code Title 4"}
		]}`))
	}))
	defer server.Close()

	c, err := cache.New(100, time.Hour)
	if err != nil {
		t.Fatal("Failed to create cache:", err)
	}
	client := NewStatuteClient(server.URL, time.Second, c)

	// 1. 第一次查询走API，最多保留3条
	statutes := client.FetchStatutes(context.Background(), "California", "contract")
	if len(statutes) != 3 {
		t.Fatalf("got %d statutes, want 3", len(statutes))
	}
	if statutes[0].Citation != "CA-CODE-2022-1" {
		t.Errorf("first citation = %s", statutes[0].Citation)
	}
	if statutes[0].Jurisdiction != "California" {
		t.Errorf("jurisdiction = %s", statutes[0].Jurisdiction)
	}

	// 2. 第二次查询命中缓存，不再请求API
	client.FetchStatutes(context.Background(), "California", "contract")
	if apiCalls != 1 {
		t.Errorf("API was called %d times, want 1", apiCalls)
	}
}

func TestStatuteClientTruncatesLongTitles(t *testing.T) {
	longTitle := ""
	for i := 0; i < 30; i++ {
		longTitle += "abcde"
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"packages":[{"packageId":"X","title":"` + longTitle + `"}]}`))
	}))
	defer server.Close()

	c, _ := cache.New(100, time.Hour)
	client := NewStatuteClient(server.URL, time.Second, c)

	statutes := client.FetchStatutes(context.Background(), "California", "contract")
	if len(statutes) != 1 {
		t.Fatalf("got %d statutes, want 1", len(statutes))
	}
	if len(statutes[0].Title) != 90 {
		t.Errorf("title length = %d, want 90", len(statutes[0].Title))
	}
}

func TestStatuteClientFailureNotCached(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	c, _ := cache.New(100, time.Hour)
	client := NewStatuteClient(server.URL, time.Second, c)

	if statutes := client.FetchStatutes(context.Background(), "California", "contract"); statutes != nil {
		t.Errorf("failed fetch should return nil, got %v", statutes)
	}
	// 失败不写缓存
	if c.Size() != 0 {
		t.Errorf("failed fetch should not be cached, size = %d", c.Size())
	}
}
