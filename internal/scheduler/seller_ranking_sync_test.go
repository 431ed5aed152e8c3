package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reference"
	"github.com/vfg2006/sales-performance-api/internal/usecases/hydrating"
	"github.com/vfg2006/sales-performance-api/internal/usecases/insighting"
	"go.uber.org/mock/gomock"
)

type staticReader struct {
	snapshot *domain.Snapshot
}

func (r staticReader) Snapshot() *domain.Snapshot {
	return r.snapshot.Clone()
}

// rankingSnapshot: fevereiro com carlos na frente, março com fernanda na frente
func rankingSnapshot() *domain.Snapshot {
	snapshot := hydrating.Skeleton(reference.TopClients())

	feb := snapshot.Revenue[2026].At(domain.February)
	feb.Set(domain.SellerCarlos, 100)
	feb.Set(domain.SellerFernanda, 50)

	mar := snapshot.Revenue[2026].At(domain.March)
	mar.Set(domain.SellerFernanda, 200)
	mar.Set(domain.SellerCarlos, 100)

	return snapshot
}

func newRankingSync(repo *mocks.MockSellerRankingRepository, lookback int, now time.Time) *SellerRankingSyncService {
	return &SellerRankingSyncService{
		reader:      staticReader{snapshot: rankingSnapshot()},
		rankingRepo: repo,
		config:      SellerRankingSyncConfig{MonthLookBack: lookback},
		now:         func() time.Time { return now },
	}
}

func positionsOf(items []*domain.SellerRankingItem) map[domain.SellerID][3]int {
	out := make(map[domain.SellerID][3]int, len(items))
	for _, item := range items {
		out[item.Seller] = [3]int{item.Position, item.PreviousPosition, item.PositionChange}
	}
	return out
}

func TestSellerRankingSyncService_processPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSellerRankingRepository(ctrl)
	service := newRankingSync(mockRepo, 0, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))

	previousMonth := map[domain.SellerID][3]int{
		domain.SellerFernanda: {1, 2, 1},
		domain.SellerCarlos:   {2, 1, -1},
	}

	tests := []struct {
		name    string
		setup   func()
		wantErr bool
		want    map[domain.SellerID][3]int
	}{
		{
			name: "Compara com o mês anterior",
			setup: func() {
				mockRepo.EXPECT().SaveOrUpdateSellerRanking(gomock.Len(domain.SellerCount)).Return(nil)
			},
			want: previousMonth,
		},
		{
			name: "Nova execução no mesmo mês mantém a base do mês anterior",
			setup: func() {
				mockRepo.EXPECT().SaveOrUpdateSellerRanking(gomock.Any()).Return(nil)
			},
			want: previousMonth,
		},
		{
			name: "Erro ao salvar",
			setup: func() {
				mockRepo.EXPECT().SaveOrUpdateSellerRanking(gomock.Any()).Return(errors.New("falha"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			result, err := service.processPeriod(rankingSnapshot(), 2026, domain.March)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			require.Len(t, result, domain.SellerCount)

			positions := positionsOf(result)
			for seller, want := range tt.want {
				assert.Equal(t, want, positions[seller], seller.Key())
			}
		})
	}
}

func TestSellerRankingSyncService_MatchesLiveRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSellerRankingRepository(ctrl)
	service := newRankingSync(mockRepo, 0, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))

	var saved []*domain.SellerRankingItem
	mockRepo.EXPECT().SaveOrUpdateSellerRanking(gomock.Any()).DoAndReturn(func(items []*domain.SellerRankingItem) error {
		saved = items
		return nil
	}).Times(2)

	_, err := service.processPeriod(rankingSnapshot(), 2026, domain.March)
	require.NoError(t, err)
	_, err = service.processPeriod(rankingSnapshot(), 2026, domain.March)
	require.NoError(t, err)

	live := insighting.RankSellers(2026, domain.March, rankingSnapshot())
	require.Len(t, saved, len(live))
	for i := range live {
		assert.Equal(t, live[i], *saved[i])
	}
}

func TestSellerRankingSyncService_periods(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		lookback int
		want     []period
	}{
		{
			name:     "Mês corrente e anterior",
			now:      time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
			lookback: 1,
			want:     []period{{2026, domain.March}, {2026, domain.February}},
		},
		{
			name:     "Virada de ano dentro da janela",
			now:      time.Date(2027, time.January, 5, 0, 0, 0, 0, time.UTC),
			lookback: 1,
			want:     []period{{2027, domain.January}, {2026, domain.December}},
		},
		{
			name:     "Meses fora da janela são ignorados",
			now:      time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC),
			lookback: 2,
			want:     []period{{2026, domain.January}},
		},
		{
			name:     "Antes da janela de planejamento",
			now:      time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
			lookback: 0,
			want:     []period{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newRankingSync(nil, tt.lookback, tt.now)
			assert.Equal(t, tt.want, service.periods())
		})
	}
}

func TestSellerRankingSyncService_UpdateSellerRanking(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockSellerRankingRepository(ctrl)
	service := newRankingSync(mockRepo, 1, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))

	mockRepo.EXPECT().SaveOrUpdateSellerRanking(gomock.Any()).Return(nil).Times(2)

	assert.NoError(t, service.UpdateSellerRanking())

	status := service.GetStatus()
	assert.Equal(t, false, status["sync_running"])
	assert.Equal(t, 1, status["month_lookback"])
}
