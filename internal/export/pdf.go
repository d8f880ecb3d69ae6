package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/pontolabs/ponto-backend-go/internal/domain/report"
)

// PDFGenerator renders a report document as a single-column A4 PDF:
// title, period, summary block, then the daily detail table.
type PDFGenerator struct{}

func NewPDFGenerator() *PDFGenerator {
	return &PDFGenerator{}
}

func (g *PDFGenerator) Generate(doc report.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(reportTitle), "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	period := fmt.Sprintf("Período: %s a %s", formatDate(doc.PeriodStart), formatDate(doc.PeriodEnd))
	pdf.CellFormat(0, 6, tr(period), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	g.writeSummary(pdf, tr, doc)
	pdf.Ln(6)
	g.writeDetails(pdf, tr, doc)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *PDFGenerator) writeSummary(pdf *gofpdf.Fpdf, tr func(string) string, doc report.Document) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Resumo"), "", 1, "L", false, 0, "")

	rows := [][2]string{
		{summaryLabels[0][1], fmt.Sprintf("%d", doc.Summary.TotalEmployees)},
		{summaryLabels[1][1], fmt.Sprintf("%d", doc.Summary.TotalWorkDays)},
		{summaryLabels[2][1], fmt.Sprintf("%.1fh", doc.Summary.AverageWorkHours)},
		{summaryLabels[3][1], fmt.Sprintf("%.1fh", doc.Summary.TotalOvertime)},
	}

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(70, 7, tr(row[0]), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 7, row[1], "1", 1, "R", false, 0, "")
	}
}

func (g *PDFGenerator) writeDetails(pdf *gofpdf.Fpdf, tr func(string) string, doc report.Document) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Detalhamento Diário"), "", 1, "L", false, 0, "")

	columns := detailColumns(doc)
	colWidth := 160.0 / float64(len(columns))

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(30, 7, "Data", "1", 0, "C", true, 0, "")
	for _, metric := range columns {
		pdf.CellFormat(colWidth, 7, tr(metricLabels[metric]), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range doc.Details {
		pdf.CellFormat(30, 6, formatDate(row.Date), "1", 0, "C", false, 0, "")
		for _, metric := range columns {
			var value string
			if metric == report.MetricAbsences {
				value = fmt.Sprintf("%d", row.AbsenceCount)
			} else {
				value = fmt.Sprintf("%.2f", metricValue(row, metric))
			}
			pdf.CellFormat(colWidth, 6, value, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
