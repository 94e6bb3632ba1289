package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/futurewise/futurewise-api/internal/usecases/simulating"
	"github.com/futurewise/futurewise-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultScenarioListLimit = 50

type SimulateRequest struct {
	TenantID   string                `json:"tenant_id"`
	ScenarioID *int64                `json:"scenario_id,omitempty"`
	Params     domain.ScenarioParams `json:"params,omitempty"`
	DateFrom   string                `json:"date_from"`
	DateTo     string                `json:"date_to"`
}

type CreateScenarioRequest struct {
	TenantID string                `json:"tenant_id"`
	Name     string                `json:"name"`
	Kind     string                `json:"kind"`
	Params   domain.ScenarioParams `json:"params"`
}

// SimulateScenario executa uma simulação sobre a baseline do intervalo.
func SimulateScenario(service simulating.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SimulateRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.TenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "tenant_id é obrigatório", nil)
			return
		}

		summary, err := service.Simulate(r.Context(), &simulating.SimulationInput{
			TenantID:   req.TenantID,
			ScenarioID: req.ScenarioID,
			Params:     req.Params,
			DateFrom:   req.DateFrom,
			DateTo:     req.DateTo,
		})
		if err != nil {
			handleSimulationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(summary)
	}
}

// CreateScenario cria um cenário nomeado sem executá-lo.
func CreateScenario(service simulating.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateScenarioRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		if req.TenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "tenant_id é obrigatório", nil)
			return
		}

		scenarioID, err := service.CreateScenario(r.Context(), req.TenantID, req.Name, req.Kind, req.Params)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar cenário", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]int64{
			"scenario_id": scenarioID,
		})
	}
}

// ListScenarios lista os cenários mais recentes do tenant.
func ListScenarios(service simulating.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant_id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "tenant_id é obrigatório", nil)
			return
		}

		scenarios, err := service.ListScenarios(r.Context(), tenantID, defaultScenarioListLimit)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar cenários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(scenarios)
	}
}

// GetScenarioResults devolve a série simulada do cenário em ordem de data.
func GetScenarioResults(service simulating.Simulator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		scenarioID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de cenário inválido", nil)
			return
		}

		tenantID := r.URL.Query().Get("tenant_id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "tenant_id é obrigatório", nil)
			return
		}

		results, err := service.ListResults(r.Context(), scenarioID, tenantID)
		if err != nil {
			handleSimulationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(results)
	}
}

// handleSimulationError traduz erros de simulação para a resposta padronizada
func handleSimulationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, simulating.ErrMissingParameters):
		apiErrors.WriteError(w, apiErrors.ErrMissingParameters, err.Error(), nil)

	case errors.Is(err, simulating.ErrInvalidParameter):
		apiErrors.WriteError(w, apiErrors.ErrInvalidParameter, err.Error(), nil)

	case errors.Is(err, simulating.ErrScenarioNotFound):
		apiErrors.WriteError(w, apiErrors.ErrScenarioNotFound, "Cenário não encontrado", nil)

	case errors.Is(err, simulating.ErrInvalidDate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, err.Error(), nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao executar simulação", nil)
	}
}
