package domain

import (
	"fmt"
	"strings"
)

// SellerID identifica um vendedor do conjunto fixo da empresa
type SellerID int

const (
	SellerCarlos SellerID = iota
	SellerFernanda
	SellerRicardo
	SellerPatricia

	sellerCount
)

// SellerCount é o número de vendedores acompanhados
const SellerCount = int(sellerCount)

var sellerKeys = [sellerCount]string{"carlos", "fernanda", "ricardo", "patricia"}

var sellerNames = [sellerCount]string{"Carlos", "Fernanda", "Ricardo", "Patrícia"}

// Sellers retorna os vendedores na ordem canônica (usada para desempate)
func Sellers() []SellerID {
	sellers := make([]SellerID, 0, sellerCount)
	for s := SellerID(0); s < sellerCount; s++ {
		sellers = append(sellers, s)
	}
	return sellers
}

func (s SellerID) Valid() bool {
	return s >= 0 && s < sellerCount
}

func (s SellerID) Key() string {
	if !s.Valid() {
		return ""
	}
	return sellerKeys[s]
}

func (s SellerID) Name() string {
	if !s.Valid() {
		return ""
	}
	return sellerNames[s]
}

func (s SellerID) String() string {
	return s.Key()
}

func (s SellerID) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("vendedor inválido: %d", int(s))
	}
	return []byte(s.Key()), nil
}

func (s *SellerID) UnmarshalText(text []byte) error {
	parsed, ok := ParseSeller(string(text))
	if !ok {
		return fmt.Errorf("vendedor inválido: %q", string(text))
	}
	*s = parsed
	return nil
}

func ParseSeller(key string) (SellerID, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for s := SellerID(0); s < sellerCount; s++ {
		if sellerKeys[s] == key {
			return s, true
		}
	}
	return 0, false
}

// SellerAmounts guarda um valor por vendedor, indexado pelo SellerID
type SellerAmounts [sellerCount]float64

func (a SellerAmounts) Get(s SellerID) float64 {
	if !s.Valid() {
		return 0
	}
	return a[s]
}

func (a *SellerAmounts) Set(s SellerID, value float64) {
	if !s.Valid() {
		return
	}
	a[s] = value
}

// Total soma os valores de todos os vendedores
func (a SellerAmounts) Total() float64 {
	var total float64
	for _, v := range a {
		total += v
	}
	return total
}

// MarshalJSON serializa como objeto {"carlos": 0, ...}, o formato do snapshot persistido
func (a SellerAmounts) MarshalJSON() ([]byte, error) {
	out := make(map[string]float64, sellerCount)
	for s := SellerID(0); s < sellerCount; s++ {
		out[s.Key()] = a[s]
	}
	return json.Marshal(out)
}
