package repository

import (
	"sort"
	"sync"
	"time"

	"github.com/vfg2006/sales-performance-api/internal/domain"
)

// Repositórios em memória, usados quando o banco está desabilitado ou inacessível.
// O estado não sobrevive a reinícios do processo.

type memorySnapshotRepository struct {
	mu      sync.RWMutex
	payload []byte
}

func NewMemorySnapshotRepository() SnapshotRepository {
	return &memorySnapshotRepository{}
}

func (r *memorySnapshotRepository) Load() ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.payload == nil {
		return nil, nil
	}
	payload := make([]byte, len(r.payload))
	copy(payload, r.payload)
	return payload, nil
}

func (r *memorySnapshotRepository) Save(payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.payload = make([]byte, len(payload))
	copy(r.payload, payload)
	return nil
}

type rankingKey struct {
	year  int
	month domain.Month
}

type memorySellerRankingRepository struct {
	mu       sync.RWMutex
	nextID   int
	rankings map[rankingKey]map[domain.SellerID]domain.SellerRankingItem
}

func NewMemorySellerRankingRepository() SellerRankingRepository {
	return &memorySellerRankingRepository{
		rankings: make(map[rankingKey]map[domain.SellerID]domain.SellerRankingItem),
	}
}

func (r *memorySellerRankingRepository) GetRanking(year int, month domain.Month) (*domain.SellerRankingResponse, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.rankings[rankingKey{year: year, month: month}]
	if !ok || len(stored) == 0 {
		return nil, nil
	}

	ranking := make([]domain.SellerRankingItem, 0, len(stored))
	var lastUpdate time.Time
	for _, item := range stored {
		ranking = append(ranking, item)
		if item.UpdatedAt.After(lastUpdate) {
			lastUpdate = item.UpdatedAt
		}
	}

	sort.Slice(ranking, func(i, j int) bool {
		return ranking[i].Position < ranking[j].Position
	})

	return &domain.SellerRankingResponse{
		Year:       year,
		Month:      month,
		Ranking:    ranking,
		LastUpdate: lastUpdate,
	}, nil
}

func (r *memorySellerRankingRepository) SaveOrUpdateSellerRanking(rankings []*domain.SellerRankingItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for _, ranking := range rankings {
		key := rankingKey{year: ranking.Year, month: ranking.Month}
		if r.rankings[key] == nil {
			r.rankings[key] = make(map[domain.SellerID]domain.SellerRankingItem)
		}

		item := *ranking
		if existing, ok := r.rankings[key][ranking.Seller]; ok {
			item.ID = existing.ID
			item.CreatedAt = existing.CreatedAt
		} else {
			r.nextID++
			item.ID = r.nextID
			item.CreatedAt = now
		}
		item.UpdatedAt = now
		r.rankings[key][ranking.Seller] = item
	}

	return nil
}
