package domain

import "time"

type SellerRankingResponse struct {
	Year       int                 `json:"year"`
	Month      Month               `json:"month"`
	Ranking    []SellerRankingItem `json:"ranking"`
	LastUpdate time.Time           `json:"last_update"`
}

// SellerRankingItem é a posição de um vendedor no mês. PositionChange e PreviousPosition são
// sempre relativos ao mês anterior, tanto no ranking gravado quanto no calculado ao vivo.
type SellerRankingItem struct {
	ID               int       `json:"id"`
	Year             int       `json:"year"`
	Month            Month     `json:"month"`
	Seller           SellerID  `json:"seller"`
	SellerName       string    `json:"seller_name"`
	Realized         float64   `json:"realized"`
	Position         int       `json:"position"`
	PositionChange   int       `json:"position_change"` // Valor positivo = subiu, negativo = desceu, 0 = manteve
	PreviousPosition int       `json:"previous_position"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
