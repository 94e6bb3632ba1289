package handler

import (
	"encoding/json"
	"net/http"

	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/futurewise/futurewise-api/internal/usecases/importing"
	"github.com/futurewise/futurewise-api/internal/usecases/tenanting"
	"github.com/futurewise/futurewise-api/pkg/apiErrors"
	"github.com/futurewise/futurewise-api/pkg/middleware"
	"github.com/futurewise/futurewise-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type CreateTenantRequest struct {
	Name string `json:"name"`
}

// ListTenants lista todos os tenants do sistema.
func ListTenants(service tenanting.TenantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenants, err := service.ListTenants(r.Context())
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar tenants", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tenants)
	}
}

// CreateTenant cria um novo tenant com ID gerado pelo servidor.
func CreateTenant(service tenanting.TenantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateTenantRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		tenant, err := service.CreateTenant(r.Context(), req.Name, actorID(r))
		if err != nil {
			handleTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(tenant)
	}
}

// DeleteTenant remove um tenant e, via cascata, seus dados.
func DeleteTenant(service tenanting.TenantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteTenant(r.Context(), tenantID, actorID(r)); err != nil {
			handleTenantError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// GetTenantDefaults devolve os defaults de importação do tenant.
func GetTenantDefaults(service tenanting.TenantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		defaults, err := service.GetDefaults(r.Context(), tenantID)
		if err != nil {
			handleTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(defaults)
	}
}

// SaveTenantDefaults grava os defaults de importação do tenant.
func SaveTenantDefaults(service tenanting.TenantManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var defaults domain.TenantDefaults
		if err := json.NewDecoder(r.Body).Decode(&defaults); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if err := service.SaveDefaults(r.Context(), tenantID, &defaults, actorID(r)); err != nil {
			handleTenantError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(defaults)
	}
}

// GetTenantKpis devolve a série diária de KPIs do tenant no intervalo pedido
// (últimos 30 dias por padrão).
func GetTenantKpis(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		from, to, err := utils.ParseDateRange(r.URL.Query().Get("date_from"), r.URL.Query().Get("date_to"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Datas devem estar no formato YYYY-MM-DD", nil)
			return
		}

		records, err := service.GetKpiRange(r.Context(), tenantID, from, to)
		if err != nil {
			handleImportError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(records)
	}
}

// actorID extrai o ID do usuário autenticado para fins de auditoria
func actorID(r *http.Request) int {
	if claims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims); ok {
		return claims.UserID
	}
	return 0
}

// handleTenantError traduz erros de tenant para a resposta padronizada
func handleTenantError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tenanting.ErrTenantNotFound):
		apiErrors.WriteError(w, apiErrors.ErrTenantNotFound, "Tenant não encontrado", nil)

	case errors.Is(err, tenanting.ErrNameRequired):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Nome do tenant é obrigatório", nil)

	case errors.Is(err, tenanting.ErrInvalidDefaults):
		apiErrors.WriteError(w, apiErrors.ErrInvalidTenantConfig, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar operação de tenant", nil)
	}
}
