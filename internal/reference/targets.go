// Package reference contém as tabelas estáticas de metas e da carteira T20
package reference

import "github.com/vfg2006/sales-performance-api/internal/domain"

// metas mensais por vendedor: carlos, fernanda, ricardo, patricia
var monthlyTargets = [domain.MonthsPerYear][domain.SellerCount]float64{
	{24000, 30000, 18000, 12000}, // jan
	{28000, 30000, 18000, 12000}, // fev
	{30000, 32000, 20000, 14000}, // mar
	{30000, 32000, 20000, 14000}, // abr
	{32000, 34000, 22000, 15000}, // mai
	{32000, 34000, 22000, 15000}, // jun
	{30000, 32000, 20000, 14000}, // jul
	{32000, 34000, 22000, 15000}, // ago
	{34000, 36000, 24000, 16000}, // set
	{36000, 38000, 25000, 17000}, // out
	{40000, 42000, 28000, 19000}, // nov
	{44000, 46000, 30000, 21000}, // dez
}

// Targets retorna a tabela fixa de metas mensais
func Targets() domain.TargetTable {
	var table domain.TargetTable
	for _, month := range domain.Months() {
		target := domain.MonthlyTarget{Month: month}
		for _, seller := range domain.Sellers() {
			target.Sellers.Set(seller, monthlyTargets[month.Index()][seller])
		}
		table[month.Index()] = target
	}
	return table
}
