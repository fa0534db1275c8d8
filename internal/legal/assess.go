package legal

import "strings"

// AssessRisks 基于关键词的风险评估，结果永不为空
//
// factsLower必须是已转小写的案情描述，调用方只转换一次供多处复用。
func AssessRisks(factsLower string) []RiskItem {
	switch {
	case strings.Contains(factsLower, "inspect") || strings.Contains(factsLower, "eye"):
		return []RiskItem{{
			Severity:    "medium",
			Description: "Possible nondisclosure claim",
			Mitigation:  "Show refusal to inspect.",
		}}
	case strings.Contains(factsLower, "oral"):
		return []RiskItem{{
			Severity:    "medium",
			Description: "Potential enforceability issue (oral contract).",
			Mitigation:  "Provide corroborating evidence.",
		}}
	default:
		return []RiskItem{{
			Severity:    "low",
			Description: "Minor procedural risk",
			Mitigation:  "Ensure timely filing.",
		}}
	}
}

// ComputeScore 根据案情长度、关键词和证据数量计算胜算评分
func ComputeScore(facts, factsLower string, evidenceCount int) WinningFactor {
	clarity := 60
	if len(facts) > 60 {
		clarity = 80
	}
	if strings.Contains(factsLower, "breach") {
		clarity += 5
	}
	if clarity > 100 {
		clarity = 100
	}

	evidenceScore := 70 + evidenceCount*5
	if evidenceScore > 100 {
		evidenceScore = 100
	}

	riskPenalty := 0
	if strings.Contains(factsLower, "eye") {
		riskPenalty = 10
	}

	score := WinningFactor{
		ElementScore:  90,
		EvidenceScore: evidenceScore,
		ClarityScore:  clarity,
		RiskPenalty:   riskPenalty,
	}
	score.Finalize()
	return score
}
