package ranking

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/usecases/insighting"
)

type RankingService interface {
	GetSellerRanking(year int, month domain.Month) (*domain.SellerRankingResponse, error)
}

// LiveRanker calcula o ranking do mês diretamente do snapshot
type LiveRanker interface {
	SellerRanking(year int, month domain.Month) ([]domain.SellerRankingItem, error)
}

type SellerRankingService struct {
	SellerRankingRepository repository.SellerRankingRepository
	live                    LiveRanker
}

func NewSellerRankingService(sellerRankingRepository repository.SellerRankingRepository, live LiveRanker) RankingService {
	return &SellerRankingService{
		SellerRankingRepository: sellerRankingRepository,
		live:                    live,
	}
}

// GetSellerRanking usa o ranking gravado pelo agendador; sem registros do período, calcula na hora
func (s *SellerRankingService) GetSellerRanking(year int, month domain.Month) (*domain.SellerRankingResponse, error) {
	if s.SellerRankingRepository != nil {
		ranking, err := s.SellerRankingRepository.GetRanking(year, month)
		if err != nil {
			logrus.WithError(err).Warn("ranking: erro ao buscar ranking gravado, calculando a partir do snapshot")
		} else if ranking != nil && len(ranking.Ranking) > 0 {
			return ranking, nil
		}
	}

	items, err := s.live.SellerRanking(year, month)
	if err != nil {
		return nil, err
	}

	return &domain.SellerRankingResponse{
		Year:       year,
		Month:      month,
		Ranking:    items,
		LastUpdate: time.Now(),
	}, nil
}

var _ LiveRanker = (*insighting.Service)(nil)
