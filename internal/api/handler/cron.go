package handler

import (
	"encoding/json"
	"net/http"

	"github.com/futurewise/futurewise-api/internal/scheduler"
	"github.com/futurewise/futurewise-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// Tipos de cron job disparáveis manualmente
const (
	CronJobTypeImportCleanup = "import-cleanup"
)

// CronJobServices contém os serviços de cron executáveis manualmente
type CronJobServices struct {
	ImportEventsCleanupService *scheduler.ImportEventsCleanupService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeImportCleanup:
			if services.ImportEventsCleanupService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de limpeza de eventos não disponível", nil)
				return
			}
			services.ImportEventsCleanupService.TriggerManualCleanup(r.Context())

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: import-cleanup", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{
			"import-cleanup": services.ImportEventsCleanupService.GetStatus(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
