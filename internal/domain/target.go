package domain

// MonthlyTarget é a meta de um mês por vendedor
type MonthlyTarget struct {
	Month   Month         `json:"month"`
	Sellers SellerAmounts `json:"sellers"`
}

// Total é a meta do mês, sempre a soma das metas dos vendedores
func (t MonthlyTarget) Total() float64 {
	return t.Sellers.Total()
}

// TargetTable é a tabela fixa de metas mensais
type TargetTable [MonthsPerYear]MonthlyTarget

func (t TargetTable) For(month Month) MonthlyTarget {
	if !month.Valid() {
		return MonthlyTarget{Month: month}
	}
	return t[month.Index()]
}

// AnnualTotal soma as metas dos doze meses
func (t TargetTable) AnnualTotal() float64 {
	var total float64
	for _, target := range t {
		total += target.Total()
	}
	return total
}
