package legal

import (
	"context"
	"log"
	"strings"
)

// Engine 法律支持分析引擎
//
// 组合法规查询、程序性规则、风险评估和评分，产出完整报告。
// 外部法规查询失败时回退到内置数据，分析本身永远成功。
type Engine struct {
	statutes *StatuteClient
}

// NewEngine 创建分析引擎
func NewEngine(statutes *StatuteClient) *Engine {
	return &Engine{statutes: statutes}
}

// Build 构建法律支持分析报告
func (e *Engine) Build(ctx context.Context, jurisdiction, county, facts string, evidence []EvidenceItem) *SupportReport {
	factsLower := strings.ToLower(facts)

	statutes := e.statutes.FetchStatutes(ctx, jurisdiction, "contract")
	if len(statutes) == 0 {
		statutes = FallbackStatutes()
	}

	report := &SupportReport{
		Jurisdiction: jurisdiction,
		County:       county,
		Facts:        facts,
		Statutes:     statutes,
		Procedures:   FallbackProcedures(),
		Risks:        AssessRisks(factsLower),
		Score:        ComputeScore(facts, factsLower, len(evidence)),
	}

	log.Printf("[Engine] 已生成法律支持报告: %s, %s", jurisdiction, county)
	return report
}
