package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/deananwomack-code/outlaw-legal-ai/internal/legal"
)

// ToPDF 渲染为PDF报告
//
// 使用内置Helvetica字体（cp1252编码），法规引用中的§等符号
// 通过UnicodeTranslator转换。
func ToPDF(report *legal.SupportReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// 标题
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Legal Support Analysis", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr(fmt.Sprintf("%s - %s County", report.Jurisdiction, report.County)), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetTextColor(139, 0, 0)
		pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.SetFont("Helvetica", "", 10)
	}

	section("Case Facts")
	pdf.MultiCell(0, 5, tr(report.Facts), "", "L", false)
	pdf.Ln(3)

	section("Applicable Statutes")
	for _, s := range report.Statutes {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(0, 5, tr(s.Citation+" - "+s.Title), "", "L", false)
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(s.Summary), "", "L", false)
		for _, el := range s.Elements {
			pdf.MultiCell(0, 5, tr("  - "+el.Name+": "+el.Description), "", "L", false)
		}
		pdf.Ln(2)
	}

	section("Procedural Rules")
	for _, p := range report.Procedures {
		pdf.MultiCell(0, 5, tr("- "+p.Name+": "+p.Description), "", "L", false)
	}
	pdf.Ln(3)

	section("Risk Assessment")
	for _, r := range report.Risks {
		pdf.MultiCell(0, 5, tr(fmt.Sprintf("[%s] %s", strings.ToUpper(r.Severity), r.Description)), "", "L", false)
		pdf.MultiCell(0, 5, tr("  Mitigation: "+r.Mitigation), "", "L", false)
	}
	pdf.Ln(3)

	section("Case Strength Score")
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Overall: %d / 100", report.Score.Overall), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Element score: %d", report.Score.ElementScore), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Evidence score: %d", report.Score.EvidenceScore), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Clarity score: %d", report.Score.ClarityScore), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("Risk penalty: %d", report.Score.RiskPenalty), "", 1, "L", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, "Generated by Outlaw Legal AI. Not a substitute for professional legal advice.", "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return buf.Bytes(), nil
}
