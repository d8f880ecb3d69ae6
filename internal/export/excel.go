package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pontolabs/ponto-backend-go/internal/domain/report"
)

// ExcelGenerator renders a report document as an .xlsx workbook with a
// summary sheet and a daily detail sheet.
type ExcelGenerator struct{}

func NewExcelGenerator() *ExcelGenerator {
	return &ExcelGenerator{}
}

func (g *ExcelGenerator) Generate(doc report.Document) ([]byte, error) {
	file := excelize.NewFile()

	summarySheet := "Resumo"
	file.SetSheetName("Sheet1", summarySheet)
	if err := g.writeSummary(file, summarySheet, doc); err != nil {
		return nil, err
	}

	detailSheet := "Detalhamento Diário"
	if _, err := file.NewSheet(detailSheet); err != nil {
		return nil, err
	}
	if err := g.writeDetails(file, detailSheet, doc); err != nil {
		return nil, err
	}

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *ExcelGenerator) writeSummary(file *excelize.File, sheet string, doc report.Document) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	set("A1", reportTitle)
	set("A2", "Início do período")
	set("B2", formatDate(doc.PeriodStart))
	set("A3", "Fim do período")
	set("B3", formatDate(doc.PeriodEnd))

	set("A5", summaryLabels[0][1])
	set("B5", doc.Summary.TotalEmployees)
	set("A6", summaryLabels[1][1])
	set("B6", doc.Summary.TotalWorkDays)
	set("A7", summaryLabels[2][1])
	set("B7", fmt.Sprintf("%.1fh", doc.Summary.AverageWorkHours))
	set("A8", summaryLabels[3][1])
	set("B8", fmt.Sprintf("%.1fh", doc.Summary.TotalOvertime))

	_ = file.SetColWidth(sheet, "A", "A", 30)
	_ = file.SetColWidth(sheet, "B", "B", 16)
	return nil
}

func (g *ExcelGenerator) writeDetails(file *excelize.File, sheet string, doc report.Document) error {
	set := func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}

	columns := detailColumns(doc)

	set("A1", "Data")
	for i, metric := range columns {
		cell, err := excelize.CoordinatesToCellName(i+2, 1)
		if err != nil {
			return err
		}
		set(cell, metricLabels[metric])
	}

	for rowIdx, row := range doc.Details {
		cell, err := excelize.CoordinatesToCellName(1, rowIdx+2)
		if err != nil {
			return err
		}
		set(cell, formatDate(row.Date))
		for colIdx, metric := range columns {
			cell, err := excelize.CoordinatesToCellName(colIdx+2, rowIdx+2)
			if err != nil {
				return err
			}
			if metric == report.MetricAbsences {
				set(cell, row.AbsenceCount)
			} else {
				set(cell, metricValue(row, metric))
			}
		}
	}

	_ = file.SetColWidth(sheet, "A", "A", 14)
	lastCol, err := excelize.ColumnNumberToName(len(columns) + 1)
	if err != nil {
		return err
	}
	_ = file.SetColWidth(sheet, "B", lastCol, 18)
	return nil
}
