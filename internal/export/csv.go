package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/pontolabs/ponto-backend-go/internal/domain/report"
)

// CSVGenerator renders a report document as UTF-8 CSV: a short summary
// block followed by the daily detail table.
type CSVGenerator struct{}

func NewCSVGenerator() *CSVGenerator {
	return &CSVGenerator{}
}

func (g *CSVGenerator) Generate(doc report.Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	summaryRows := [][]string{
		{reportTitle, ""},
		{"Período", formatDate(doc.PeriodStart) + " a " + formatDate(doc.PeriodEnd)},
		{summaryLabels[0][1], strconv.Itoa(doc.Summary.TotalEmployees)},
		{summaryLabels[1][1], strconv.Itoa(doc.Summary.TotalWorkDays)},
		{summaryLabels[2][1], fmt.Sprintf("%.1f", doc.Summary.AverageWorkHours)},
		{summaryLabels[3][1], fmt.Sprintf("%.1f", doc.Summary.TotalOvertime)},
		{},
	}
	for _, row := range summaryRows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	columns := detailColumns(doc)
	header := make([]string, 0, len(columns)+1)
	header = append(header, "Data")
	for _, metric := range columns {
		header = append(header, metricLabels[metric])
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, row := range doc.Details {
		record := make([]string, 0, len(columns)+1)
		record = append(record, formatDate(row.Date))
		for _, metric := range columns {
			if metric == report.MetricAbsences {
				record = append(record, strconv.Itoa(row.AbsenceCount))
			} else {
				record = append(record, fmt.Sprintf("%.2f", metricValue(row, metric)))
			}
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
