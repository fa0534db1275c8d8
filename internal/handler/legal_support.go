package handler

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/archive"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/constants"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/legal"
	"github.com/deananwomack-code/outlaw-legal-ai/internal/render"
)

// LegalSupportRequest 法律支持分析请求
type LegalSupportRequest struct {
	Jurisdiction    string              `json:"jurisdiction"`
	County          string              `json:"county"`
	Facts           string              `json:"facts"`
	Evidence        []legal.EvidenceItem `json:"evidence"`
	RequestedOutput string              `json:"requested_output"`
}

// Validate 校验请求字段
func (req *LegalSupportRequest) Validate() error {
	if req.Jurisdiction == "" {
		return fmt.Errorf("jurisdiction is required")
	}
	if req.County == "" {
		return fmt.Errorf("county is required")
	}
	if len(req.Facts) < constants.MinFactsLength {
		return fmt.Errorf("facts must be at least %d characters", constants.MinFactsLength)
	}
	return nil
}

// LegalSupportHandler 法律支持分析接口
type LegalSupportHandler struct {
	engine   *legal.Engine
	archiver *archive.Archiver
}

// NewLegalSupportHandler 创建分析处理器，archiver可为nil
func NewLegalSupportHandler(engine *legal.Engine, archiver *archive.Archiver) *LegalSupportHandler {
	return &LegalSupportHandler{
		engine:   engine,
		archiver: archiver,
	}
}

// ServeHTTP 处理 POST /legal-support
func (h *LegalSupportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req LegalSupportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	format, err := render.ParseFormat(req.RequestedOutput)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	log.Printf("[Handler] 开始法律分析: %s, %s", req.County, req.Jurisdiction)
	report := h.engine.Build(r.Context(), req.Jurisdiction, req.County, req.Facts, req.Evidence)

	if format == render.FormatJSON {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"status": "success",
			"data":   report,
		})
		return
	}

	body, err := render.Render(report, format)
	if err != nil {
		log.Printf("[Handler] 报告渲染失败 format=%s: %v", format, err)
		writeError(w, http.StatusInternalServerError, "Failed to render report")
		return
	}

	filename := fmt.Sprintf("OutlawLegalAI_%s_Report.%s", req.County, format.Extension())
	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)

	// PDF报告异步归档到S3（启用时）
	if format == render.FormatPDF {
		h.archiver.ArchiveReport(req.County, format.Extension(), body, format.ContentType())
	}
}
