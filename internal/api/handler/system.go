package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/futurewise/futurewise-api/infrastructure/repository"
	"github.com/futurewise/futurewise-api/pkg/apiErrors"
	"github.com/sirupsen/logrus"
)

const defaultAuditListLimit = 100

// GetSystemStats devolve os contadores globais do painel administrativo.
func GetSystemStats(statsRepo repository.SystemStatsRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := statsRepo.GetStats(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao agregar estatísticas do sistema", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(stats)
	}
}

// ListAuditEvents lista as ações administrativas mais recentes.
func ListAuditEvents(auditRepo repository.AuditRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultAuditListLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		var offset uint64
		if raw := r.URL.Query().Get("offset"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "offset inválido", nil)
				return
			}
			offset = parsed
		}

		events, err := auditRepo.ListRecent(r.Context(), limit, offset)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar eventos de auditoria", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(events)
	}
}
