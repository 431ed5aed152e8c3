package insighting

import "github.com/vfg2006/sales-performance-api/internal/domain"

// AggregateRevenue monta a série mensal realizado x meta do ano, os trimestres e o atingimento
// sobre a meta anual. Os acumulados andam de janeiro a dezembro.
func AggregateRevenue(year int, snapshot *domain.Snapshot, targets domain.TargetTable, annualTarget float64) *domain.RevenueSummary {
	summary := &domain.RevenueSummary{
		Year:         year,
		Monthly:      make([]domain.MonthlyRevenue, 0, domain.MonthsPerYear),
		Quarterly:    make([]domain.QuarterlyRevenue, 0, domain.QuartersPerYear),
		AnnualTarget: annualTarget,
	}

	var cumulativeRealized, cumulativeTarget float64
	for _, month := range domain.Months() {
		realized := snapshot.MonthSales(year, month).Total()
		target := targets.For(month).Total()

		cumulativeRealized += realized
		cumulativeTarget += target

		summary.Monthly = append(summary.Monthly, domain.MonthlyRevenue{
			Month:              month,
			Realized:           realized,
			Target:             target,
			Percentage:         percent(realized, target),
			CumulativeRealized: cumulativeRealized,
			CumulativeTarget:   cumulativeTarget,
		})
	}

	for quarter := 1; quarter <= domain.QuartersPerYear; quarter++ {
		q := domain.QuarterlyRevenue{
			Quarter: quarter,
			Months:  domain.QuarterMonths(quarter),
		}
		for _, month := range q.Months {
			row := summary.Monthly[month.Index()]
			q.Realized += row.Realized
			q.Target += row.Target
		}
		q.Percentage = percent(q.Realized, q.Target)
		summary.Quarterly = append(summary.Quarterly, q)
	}

	summary.TotalRealized = cumulativeRealized
	summary.TotalTarget = cumulativeTarget
	summary.Attainment = percent(cumulativeRealized, annualTarget)

	return summary
}
