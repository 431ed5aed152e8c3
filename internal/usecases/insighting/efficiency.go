package insighting

import "github.com/vfg2006/sales-performance-api/internal/domain"

// CalculateEfficiency cruza o faturamento de cada mês com os custos logísticos e de mercadoria.
// A margem não é limitada a zero.
func CalculateEfficiency(year int, snapshot *domain.Snapshot, thresholds domain.Thresholds) *domain.OperationalEfficiency {
	efficiency := &domain.OperationalEfficiency{
		Year:          year,
		Monthly:       make([]domain.MonthlyEfficiency, 0, domain.MonthsPerYear),
		WarningMonths: []domain.Month{},
	}

	for _, month := range domain.Months() {
		realized := snapshot.MonthSales(year, month).Total()
		costs := snapshot.Costs(year, month)

		row := domain.MonthlyEfficiency{
			Month:     month,
			Realized:  realized,
			Logistics: costs.Logistics(),
			Goods:     costs.Goods(),
		}
		row.TotalCost = row.Logistics + row.Goods
		row.Margin = realized - row.TotalCost
		row.LogisticsRatio = percent(row.Logistics, realized)
		row.GoodsRatio = percent(row.Goods, realized)
		row.Warning = row.LogisticsRatio > thresholds.LogisticsWarningPct || row.GoodsRatio > thresholds.GoodsWarningPct

		if row.Warning {
			efficiency.WarningMonths = append(efficiency.WarningMonths, month)
		}

		efficiency.TotalRealized += realized
		efficiency.TotalLogistics += row.Logistics
		efficiency.TotalGoods += row.Goods
		efficiency.Monthly = append(efficiency.Monthly, row)
	}

	efficiency.TotalCost = efficiency.TotalLogistics + efficiency.TotalGoods
	efficiency.TotalMargin = efficiency.TotalRealized - efficiency.TotalCost
	efficiency.LogisticsRatio = percent(efficiency.TotalLogistics, efficiency.TotalRealized)
	efficiency.GoodsRatio = percent(efficiency.TotalGoods, efficiency.TotalRealized)

	return efficiency
}
