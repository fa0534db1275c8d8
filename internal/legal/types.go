package legal

// LegalElement 法律构成要件
type LegalElement struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Statute 法规条目
type Statute struct {
	Citation     string         `json:"citation"`
	Title        string         `json:"title"`
	Jurisdiction string         `json:"jurisdiction"`
	Summary      string         `json:"summary"`
	Elements     []LegalElement `json:"elements"`
}

// ProceduralRule 程序性规则
type ProceduralRule struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RiskItem 风险项
type RiskItem struct {
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Mitigation  string `json:"mitigation"`
}

// EvidenceItem 证据项
type EvidenceItem struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

// WinningFactor 案件胜算评分
type WinningFactor struct {
	ElementScore  int `json:"element_score"`
	EvidenceScore int `json:"evidence_score"`
	ClarityScore  int `json:"clarity_score"`
	RiskPenalty   int `json:"risk_penalty"`
	Overall       int `json:"overall"` // 综合分，由Finalize计算
}

// Finalize 计算综合分：三项均分减去风险扣分，下限为0
func (w *WinningFactor) Finalize() {
	overall := (w.ElementScore+w.EvidenceScore+w.ClarityScore)/3 - w.RiskPenalty
	if overall < 0 {
		overall = 0
	}
	w.Overall = overall
}

// SupportReport 法律支持分析报告
type SupportReport struct {
	Jurisdiction string           `json:"jurisdiction"`
	County       string           `json:"county"`
	Facts        string           `json:"facts"`
	Statutes     []Statute        `json:"statutes"`
	Procedures   []ProceduralRule `json:"procedures"`
	Risks        []RiskItem       `json:"risks"`
	Score        WinningFactor    `json:"score"`
}
