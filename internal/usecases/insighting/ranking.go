package insighting

import (
	"sort"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// RankSellers ordena os vendedores pelo realizado do mês e compara com a posição do mês anterior.
// Se o mês anterior não tem lançamentos, não há posição anterior.
func RankSellers(year int, month domain.Month, snapshot *domain.Snapshot) []domain.SellerRankingItem {
	items := rankingItems(year, month, snapshot.MonthSales(year, month))

	previous := make(map[domain.SellerID]int, domain.SellerCount)
	prevYear, prevMonth := month.Previous(year)
	prevSales := snapshot.MonthSales(prevYear, prevMonth)
	if prevSales.Total() != 0 {
		for _, item := range rankingItems(prevYear, prevMonth, prevSales) {
			previous[item.Seller] = item.Position
		}
	}

	pointers := make([]*domain.SellerRankingItem, len(items))
	for i := range items {
		pointers[i] = &items[i]
	}
	UpdatePositions(pointers, previous)

	return items
}

// UpdatePositions ordena pelo realizado (estável na ordem canônica), numera as posições a partir
// de 1 e calcula a variação contra as posições anteriores conhecidas.
// Variação positiva = subiu, negativa = desceu.
func UpdatePositions(items []*domain.SellerRankingItem, before map[domain.SellerID]int) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Realized > items[j].Realized
	})

	for i, item := range items {
		item.Position = i + 1
		item.PositionChange = 0
		item.PreviousPosition = 0

		if previous, exists := before[item.Seller]; exists && previous > 0 {
			item.PositionChange = previous - item.Position
			item.PreviousPosition = previous
		}
	}
}

func rankingItems(year int, month domain.Month, sales domain.SellerAmounts) []domain.SellerRankingItem {
	items := make([]domain.SellerRankingItem, 0, domain.SellerCount)
	for _, seller := range domain.Sellers() {
		items = append(items, domain.SellerRankingItem{
			Year:       year,
			Month:      month,
			Seller:     seller,
			SellerName: seller.Name(),
			Realized:   sales.Get(seller),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Realized > items[j].Realized
	})
	for i := range items {
		items[i].Position = i + 1
	}

	return items
}
