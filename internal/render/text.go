package render

import (
	"fmt"
	"strings"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/legal"
)

// ToText 渲染为纯文本报告
func ToText(report *legal.SupportReport) string {
	var b strings.Builder

	line := strings.Repeat("=", 60)

	b.WriteString(line + "\n")
	b.WriteString("LEGAL SUPPORT ANALYSIS\n")
	b.WriteString(line + "\n\n")
	fmt.Fprintf(&b, "Jurisdiction: %s\n", report.Jurisdiction)
	fmt.Fprintf(&b, "County:       %s\n\n", report.County)

	b.WriteString("CASE FACTS\n----------\n")
	fmt.Fprintf(&b, "%s\n\n", report.Facts)

	b.WriteString("APPLICABLE STATUTES\n-------------------\n")
	for _, s := range report.Statutes {
		fmt.Fprintf(&b, "%s - %s\n", s.Citation, s.Title)
		fmt.Fprintf(&b, "  %s\n", s.Summary)
		for _, el := range s.Elements {
			fmt.Fprintf(&b, "  * %s: %s\n", el.Name, el.Description)
		}
	}
	b.WriteString("\n")

	b.WriteString("PROCEDURAL RULES\n----------------\n")
	for _, p := range report.Procedures {
		fmt.Fprintf(&b, "* %s: %s\n", p.Name, p.Description)
	}
	b.WriteString("\n")

	b.WriteString("RISK ASSESSMENT\n---------------\n")
	for _, r := range report.Risks {
		fmt.Fprintf(&b, "[%s] %s\n  Mitigation: %s\n", strings.ToUpper(r.Severity), r.Description, r.Mitigation)
	}
	b.WriteString("\n")

	b.WriteString("CASE STRENGTH SCORE\n-------------------\n")
	fmt.Fprintf(&b, "Overall:        %d / 100\n", report.Score.Overall)
	fmt.Fprintf(&b, "Element score:  %d\n", report.Score.ElementScore)
	fmt.Fprintf(&b, "Evidence score: %d\n", report.Score.EvidenceScore)
	fmt.Fprintf(&b, "Clarity score:  %d\n", report.Score.ClarityScore)
	fmt.Fprintf(&b, "Risk penalty:   %d\n\n", report.Score.RiskPenalty)

	b.WriteString("Generated by Outlaw Legal AI. Not a substitute for professional legal advice.\n")

	return b.String()
}
