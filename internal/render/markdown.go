package render

import (
	"fmt"
	"strings"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/legal"
)

// ToMarkdown 渲染为Markdown文档
func ToMarkdown(report *legal.SupportReport) string {
	var b strings.Builder

	b.WriteString("# Legal Support Analysis\n\n")
	fmt.Fprintf(&b, "**Jurisdiction:** %s  \n", report.Jurisdiction)
	fmt.Fprintf(&b, "**County:** %s\n\n", report.County)

	b.WriteString("## Case Facts\n\n")
	fmt.Fprintf(&b, "%s\n\n", report.Facts)

	b.WriteString("## Applicable Statutes\n\n")
	for _, s := range report.Statutes {
		fmt.Fprintf(&b, "### %s - %s\n\n", s.Citation, s.Title)
		fmt.Fprintf(&b, "%s\n\n", s.Summary)
		for _, el := range s.Elements {
			fmt.Fprintf(&b, "- **%s:** %s\n", el.Name, el.Description)
		}
		if len(s.Elements) > 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("## Procedural Rules\n\n")
	for _, p := range report.Procedures {
		fmt.Fprintf(&b, "- **%s:** %s\n", p.Name, p.Description)
	}
	b.WriteString("\n")

	b.WriteString("## Risk Assessment\n\n")
	for _, r := range report.Risks {
		fmt.Fprintf(&b, "- **[%s]** %s\n  - Mitigation: %s\n", strings.ToUpper(r.Severity), r.Description, r.Mitigation)
	}
	b.WriteString("\n")

	b.WriteString("## Case Strength Score\n\n")
	fmt.Fprintf(&b, "**Overall: %d / 100**\n\n", report.Score.Overall)
	fmt.Fprintf(&b, "| Component | Score |\n|---|---|\n")
	fmt.Fprintf(&b, "| Element score | %d |\n", report.Score.ElementScore)
	fmt.Fprintf(&b, "| Evidence score | %d |\n", report.Score.EvidenceScore)
	fmt.Fprintf(&b, "| Clarity score | %d |\n", report.Score.ClarityScore)
	fmt.Fprintf(&b, "| Risk penalty | %d |\n", report.Score.RiskPenalty)
	b.WriteString("\n---\n\n*Generated by Outlaw Legal AI. Not a substitute for professional legal advice.*\n")

	return b.String()
}
