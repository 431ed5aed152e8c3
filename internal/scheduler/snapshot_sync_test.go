package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-performance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/sales-performance-api/internal/config"
	"github.com/vfg2006/sales-performance-api/internal/domain"
	"github.com/vfg2006/sales-performance-api/internal/reference"
	"github.com/vfg2006/sales-performance-api/internal/usecases/recording"
	"go.uber.org/mock/gomock"
)

func newSnapshotSync(t *testing.T, enabled bool) (*SnapshotSyncService, *recording.Service, *mocks.MockSnapshotRepository) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSnapshotRepository(ctrl)
	recorder := recording.NewService(repo, reference.TopClients())

	cfg := &config.Config{
		SnapshotSync: config.SnapshotSync{CronSchedule: "*/1 * * * *", Enabled: enabled},
	}

	return NewSnapshotSyncService(recorder, cfg), recorder, repo
}

func TestSnapshotSyncService_Sync(t *testing.T) {
	t.Run("Sem alterações não salva", func(t *testing.T) {
		service, _, _ := newSnapshotSync(t, false)

		assert.NoError(t, service.Sync())
	})

	t.Run("Com alterações salva uma única vez", func(t *testing.T) {
		service, recorder, repo := newSnapshotSync(t, false)

		_, err := recorder.RecordSellerActual(2026, domain.January, domain.SellerCarlos, "1.000")
		require.NoError(t, err)

		repo.EXPECT().Save(gomock.Any()).Return(nil).Times(1)

		assert.NoError(t, service.Sync())
		assert.NoError(t, service.Sync())
		assert.False(t, recorder.Dirty())
		assert.Empty(t, service.GetStatus()["last_error"])
	})

	t.Run("Erro ao salvar mantém alterações pendentes", func(t *testing.T) {
		service, recorder, repo := newSnapshotSync(t, false)

		_, err := recorder.RecordOperationalCost(2026, domain.March, domain.CostCorreios, "250")
		require.NoError(t, err)

		repo.EXPECT().Save(gomock.Any()).Return(errors.New("conexão recusada"))

		err = service.Sync()
		assert.ErrorIs(t, err, recording.ErrSaveSnapshot)

		status := service.GetStatus()
		assert.Equal(t, true, status["dirty"])
		assert.NotEmpty(t, status["last_error"])
	})
}

func TestSnapshotSyncService_SaveOnShutdown(t *testing.T) {
	service, recorder, repo := newSnapshotSync(t, false)

	_, err := recorder.RecordProjection("c01", 2027, "600.000")
	require.NoError(t, err)

	saved := make(chan struct{}, 1)
	repo.EXPECT().Save(gomock.Any()).DoAndReturn(func([]byte) error {
		saved <- struct{}{}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, service.Start(ctx))

	cancel()

	select {
	case <-service.Stopped():
	case <-time.After(2 * time.Second):
		t.Fatal("snapshot não foi salvo no desligamento")
	}

	assert.Len(t, saved, 1)
	assert.False(t, recorder.Dirty())
}

func TestSnapshotSyncService_StartWithInvalidCron(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := recording.NewService(mocks.NewMockSnapshotRepository(ctrl), reference.TopClients())

	cfg := &config.Config{
		SnapshotSync: config.SnapshotSync{CronSchedule: "cron inválida", Enabled: true},
	}
	service := NewSnapshotSyncService(recorder, cfg)

	err := service.Start(context.Background())
	assert.Error(t, err)
}
