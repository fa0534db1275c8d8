package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/legal"
)

// ToHTML 渲染为独立的HTML文档
func ToHTML(report *legal.SupportReport) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n")
	b.WriteString("<html lang=\"en\">\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Outlaw Legal AI Report - %s</title>\n", html.EscapeString(report.County))
	b.WriteString("<style>\n")
	b.WriteString("body{font-family:Georgia,serif;max-width:800px;margin:40px auto;padding:0 20px;color:#222}\n")
	b.WriteString("h1{border-bottom:2px solid #8b0000}h2{color:#8b0000}\n")
	b.WriteString(".severity-medium{color:#b8860b;font-weight:bold}.severity-high{color:#8b0000;font-weight:bold}.severity-low{color:#2e8b57;font-weight:bold}\n")
	b.WriteString(".score{font-size:1.4em;font-weight:bold}\n")
	b.WriteString("</style>\n</head>\n<body>\n")

	b.WriteString("<h1>Legal Support Analysis</h1>\n")
	fmt.Fprintf(&b, "<p><strong>Jurisdiction:</strong> %s<br>\n", html.EscapeString(report.Jurisdiction))
	fmt.Fprintf(&b, "<strong>County:</strong> %s</p>\n", html.EscapeString(report.County))

	b.WriteString("<h2>Case Facts</h2>\n")
	fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(report.Facts))

	b.WriteString("<h2>Applicable Statutes</h2>\n")
	for _, s := range report.Statutes {
		fmt.Fprintf(&b, "<h3>%s - %s</h3>\n", html.EscapeString(s.Citation), html.EscapeString(s.Title))
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(s.Summary))
		if len(s.Elements) > 0 {
			b.WriteString("<ul>\n")
			for _, el := range s.Elements {
				fmt.Fprintf(&b, "<li><strong>%s:</strong> %s</li>\n",
					html.EscapeString(el.Name), html.EscapeString(el.Description))
			}
			b.WriteString("</ul>\n")
		}
	}

	b.WriteString("<h2>Procedural Rules</h2>\n<ul>\n")
	for _, p := range report.Procedures {
		fmt.Fprintf(&b, "<li><strong>%s:</strong> %s</li>\n",
			html.EscapeString(p.Name), html.EscapeString(p.Description))
	}
	b.WriteString("</ul>\n")

	b.WriteString("<h2>Risk Assessment</h2>\n<ul>\n")
	for _, r := range report.Risks {
		fmt.Fprintf(&b, "<li><span class=\"severity-%s\">[%s]</span> %s<br><em>Mitigation:</em> %s</li>\n",
			html.EscapeString(r.Severity), html.EscapeString(strings.ToUpper(r.Severity)),
			html.EscapeString(r.Description), html.EscapeString(r.Mitigation))
	}
	b.WriteString("</ul>\n")

	b.WriteString("<h2>Case Strength Score</h2>\n")
	fmt.Fprintf(&b, "<p class=\"score\">Overall: %d / 100</p>\n", report.Score.Overall)
	b.WriteString("<ul>\n")
	fmt.Fprintf(&b, "<li>Element score: %d</li>\n", report.Score.ElementScore)
	fmt.Fprintf(&b, "<li>Evidence score: %d</li>\n", report.Score.EvidenceScore)
	fmt.Fprintf(&b, "<li>Clarity score: %d</li>\n", report.Score.ClarityScore)
	fmt.Fprintf(&b, "<li>Risk penalty: %d</li>\n", report.Score.RiskPenalty)
	b.WriteString("</ul>\n")

	b.WriteString("<hr>\n<p><em>Generated by Outlaw Legal AI. Not a substitute for professional legal advice.</em></p>\n")
	b.WriteString("</body>\n</html>\n")

	return b.String()
}
