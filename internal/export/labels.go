package export

import (
	"time"

	"github.com/pontolabs/ponto-backend-go/internal/domain/report"
)

// Report labels follow the product language (Brazilian Portuguese),
// matching what the front-end shows on screen.
const reportTitle = "Relatório de Ponto Eletrônico"

var metricLabels = map[string]string{
	report.MetricWorkedHours: "Horas Trabalhadas",
	report.MetricOvertime:    "Horas Extras",
	report.MetricAbsences:    "Faltas",
	report.MetricTimeBank:    "Banco de Horas",
}

var summaryLabels = [][2]string{
	{"totalEmployees", "Total de Colaboradores"},
	{"totalWorkDays", "Dias Trabalhados"},
	{"averageWorkHours", "Média de Horas"},
	{"totalOvertime", "Total Horas Extras"},
}

func formatDate(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02/01/2006")
}

// detailColumns returns the metric identifiers to render, in a stable
// order, honoring the document's selected metric set.
func detailColumns(doc report.Document) []string {
	selected := make(map[string]struct{}, len(doc.Metrics))
	for _, m := range doc.Metrics {
		selected[m] = struct{}{}
	}
	columns := make([]string, 0, len(report.AllMetrics))
	for _, m := range report.AllMetrics {
		if _, ok := selected[m]; ok {
			columns = append(columns, m)
		}
	}
	return columns
}

func metricValue(row report.DailyMetrics, metric string) float64 {
	switch metric {
	case report.MetricWorkedHours:
		return row.WorkedHours
	case report.MetricOvertime:
		return row.OvertimeHours
	case report.MetricAbsences:
		return float64(row.AbsenceCount)
	case report.MetricTimeBank:
		return row.TimeBankDelta
	}
	return 0
}
