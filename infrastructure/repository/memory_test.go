package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/internal/domain"
)

func TestMemorySnapshotRepository(t *testing.T) {
	repo := NewMemorySnapshotRepository()

	payload, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, payload, "sem snapshot persistido")

	original := []byte(`{"revenue":{}}`)
	require.NoError(t, repo.Save(original))

	// alterar o slice salvo não afeta o repositório
	original[2] = 'X'

	payload, err = repo.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"revenue":{}}`, string(payload))
}

func TestMemorySellerRankingRepository(t *testing.T) {
	repo := NewMemorySellerRankingRepository()

	ranking, err := repo.GetRanking(2026, domain.March)
	require.NoError(t, err)
	assert.Nil(t, ranking)

	items := []*domain.SellerRankingItem{
		{Year: 2026, Month: domain.March, Seller: domain.SellerFernanda, Realized: 200, Position: 1},
		{Year: 2026, Month: domain.March, Seller: domain.SellerCarlos, Realized: 100, Position: 2},
	}
	require.NoError(t, repo.SaveOrUpdateSellerRanking(items))

	ranking, err = repo.GetRanking(2026, domain.March)
	require.NoError(t, err)
	require.Len(t, ranking.Ranking, 2)
	assert.Equal(t, domain.SellerFernanda, ranking.Ranking[0].Seller)
	firstID := ranking.Ranking[0].ID
	createdAt := ranking.Ranking[0].CreatedAt

	t.Run("Upsert mantém id e data de criação", func(t *testing.T) {
		updated := []*domain.SellerRankingItem{
			{Year: 2026, Month: domain.March, Seller: domain.SellerCarlos, Realized: 300, Position: 1, PreviousPosition: 2, PositionChange: 1},
			{Year: 2026, Month: domain.March, Seller: domain.SellerFernanda, Realized: 200, Position: 2, PreviousPosition: 1, PositionChange: -1},
		}
		require.NoError(t, repo.SaveOrUpdateSellerRanking(updated))

		ranking, err := repo.GetRanking(2026, domain.March)
		require.NoError(t, err)
		require.Len(t, ranking.Ranking, 2)

		assert.Equal(t, domain.SellerCarlos, ranking.Ranking[0].Seller)
		assert.Equal(t, 1, ranking.Ranking[0].PositionChange)

		fernanda := ranking.Ranking[1]
		assert.Equal(t, firstID, fernanda.ID)
		assert.Equal(t, createdAt, fernanda.CreatedAt)
		assert.False(t, ranking.LastUpdate.IsZero())
	})

	t.Run("Períodos são independentes", func(t *testing.T) {
		ranking, err := repo.GetRanking(2026, domain.April)
		require.NoError(t, err)
		assert.Nil(t, ranking)
	})
}
