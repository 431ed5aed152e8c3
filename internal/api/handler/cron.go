package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-performance-api/pkg/apiErrors"
	"github.com/vfg2006/sales-performance-api/pkg/log"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeSnapshot      = "snapshot"
	CronJobTypeSellerRanking = "seller-ranking"
	CronJobTypeAll           = "all"
)

// SyncJob é uma rotina agendada que também pode ser disparada manualmente
type SyncJob interface {
	TriggerManualSync()
	GetStatus() map[string]any
}

// CronJobServices contém os serviços de cron necessários para executar manualmente.
// Serviços nil indicam rotina não configurada.
type CronJobServices struct {
	SnapshotSyncService      SyncJob
	SellerRankingSyncService SyncJob
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeSnapshot:
			if services.SnapshotSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização do snapshot não disponível", nil)
				return
			}
			services.SnapshotSyncService.TriggerManualSync()

		case CronJobTypeSellerRanking:
			if services.SellerRankingSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de ranking de vendedores não disponível", nil)
				return
			}
			services.SellerRankingSyncService.TriggerManualSync()

		case CronJobTypeAll:
			if services.SnapshotSyncService != nil {
				services.SnapshotSyncService.TriggerManualSync()
			}
			if services.SellerRankingSyncService != nil {
				services.SellerRankingSyncService.TriggerManualSync()
			}

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshot, seller-ranking, all", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: execução manual iniciada")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	})
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.SnapshotSyncService != nil {
			status[CronJobTypeSnapshot] = services.SnapshotSyncService.GetStatus()
		}
		if services.SellerRankingSyncService != nil {
			status[CronJobTypeSellerRanking] = services.SellerRankingSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	})
}
