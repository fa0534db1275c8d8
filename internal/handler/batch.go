package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"math"
	"net/http"
	"sync"
	"time"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/constants"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/legal"
)

// BatchRequest 批量分析请求
type BatchRequest struct {
	Cases []LegalSupportRequest `json:"cases"`
}

// BatchCaseResult 单个案件的分析结果
type BatchCaseResult struct {
	CaseIndex int                  `json:"case_index"`
	Status    string               `json:"status"`
	Data      *legal.SupportReport `json:"data,omitempty"`
	Error     string               `json:"error,omitempty"`
}

// BatchResponse 批量分析响应
type BatchResponse struct {
	Status                string            `json:"status"`
	Results               []BatchCaseResult `json:"results"`
	ProcessingTimeSeconds float64           `json:"processing_time_seconds"`
	TotalCases            int               `json:"total_cases"`
	Successful            int               `json:"successful"`
	Failed                int               `json:"failed"`
}

// BatchHandler 批量分析接口
type BatchHandler struct {
	engine *legal.Engine
}

// NewBatchHandler 创建批量分析处理器
func NewBatchHandler(engine *legal.Engine) *BatchHandler {
	return &BatchHandler{engine: engine}
}

// ServeHTTP 处理 POST /legal-support/batch
//
// 各案件并发分析，单个案件校验失败不影响其他案件。
func (h *BatchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(req.Cases) == 0 {
		writeError(w, http.StatusBadRequest, "cases must not be empty")
		return
	}
	if len(req.Cases) > constants.MaxBatchCases {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("at most %d cases per batch", constants.MaxBatchCases))
		return
	}

	start := time.Now()
	results := make([]BatchCaseResult, len(req.Cases))

	var wg sync.WaitGroup
	for i, c := range req.Cases {
		wg.Add(1)
		go func(idx int, caseReq LegalSupportRequest) {
			defer wg.Done()

			if err := caseReq.Validate(); err != nil {
				results[idx] = BatchCaseResult{
					CaseIndex: idx,
					Status:    "error",
					Error:     err.Error(),
				}
				return
			}

			report := h.engine.Build(r.Context(), caseReq.Jurisdiction, caseReq.County, caseReq.Facts, caseReq.Evidence)
			results[idx] = BatchCaseResult{
				CaseIndex: idx,
				Status:    "success",
				Data:      report,
			}
		}(i, c)
	}
	wg.Wait()

	successful := 0
	for _, res := range results {
		if res.Status == "success" {
			successful++
		}
	}
	failed := len(results) - successful
	elapsed := time.Since(start).Seconds()

	log.Printf("[Handler] 批量分析完成: 成功 %d, 失败 %d, 耗时 %.2fs", successful, failed, elapsed)

	writeJSON(w, http.StatusOK, BatchResponse{
		Status:                "completed",
		Results:               results,
		ProcessingTimeSeconds: math.Round(elapsed*100) / 100,
		TotalCases:            len(req.Cases),
		Successful:            successful,
		Failed:                failed,
	})
}
