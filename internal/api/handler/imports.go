package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/futurewise/futurewise-api/internal/domain"
	"github.com/futurewise/futurewise-api/internal/usecases/importing"
	"github.com/futurewise/futurewise-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const defaultEventListLimit = 50

// maxUploadSize limita uploads de CSV/planilha a 32 MiB
const maxUploadSize = 32 << 20

// ImportFromAPI recebe um array JSON de linhas e o importa como lote.
func ImportFromAPI(service importing.Importer) http.HandlerFunc {
	return importJSONHandler(service, domain.ImportSourceAPI)
}

// ImportFromWebhook recebe o mesmo formato do import via API, mas registra a
// origem como webhook para auditoria.
func ImportFromWebhook(service importing.Importer) http.HandlerFunc {
	return importJSONHandler(service, domain.ImportSourceWebhook)
}

func importJSONHandler(service importing.Importer, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant_id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "tenant_id é obrigatório", nil)
			return
		}

		payload, err := io.ReadAll(r.Body)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPayload, "Erro ao ler o corpo da requisição", nil)
			return
		}

		rows, err := importing.RowsFromJSON(payload)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidPayload, "Payload deve ser um array JSON de linhas", nil)
			return
		}

		runImport(w, r, service, tenantID, source, rows, nil)
	}
}

// ImportFromCSV recebe um arquivo CSV via multipart form (campo "file").
func ImportFromCSV(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant_id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "tenant_id é obrigatório", nil)
			return
		}

		file, header, err := openUpload(w, r)
		if err != nil {
			return
		}
		defer file.Close()

		rows, err := importing.RowsFromCSV(file)
		if err != nil {
			handleImportError(w, err)
			return
		}

		runImport(w, r, service, tenantID, domain.ImportSourceCSV, rows, &header.Filename)
	}
}

// ImportFromXLSX recebe uma planilha XLSX via multipart form (campo "file").
func ImportFromXLSX(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant_id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "tenant_id é obrigatório", nil)
			return
		}

		file, header, err := openUpload(w, r)
		if err != nil {
			return
		}
		defer file.Close()

		rows, err := importing.RowsFromXLSX(file)
		if err != nil {
			handleImportError(w, err)
			return
		}

		runImport(w, r, service, tenantID, domain.ImportSourceXLS, rows, &header.Filename)
	}
}

// ListImportEvents lista os eventos de importação mais recentes do tenant.
func ListImportEvents(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tenantID := r.URL.Query().Get("tenant_id")
		if tenantID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "tenant_id é obrigatório", nil)
			return
		}

		limit := uint64(defaultEventListLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		events, err := service.ListEvents(r.Context(), tenantID, limit)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar eventos de importação", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(events)
	}
}

// ListImportEventErrors devolve o ledger de erros de um evento de importação.
func ListImportEventErrors(service importing.Importer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rawID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		eventID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "ID de evento inválido", nil)
			return
		}

		importErrors, err := service.ListEventErrors(r.Context(), eventID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar erros do evento", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(importErrors)
	}
}

func openUpload(w http.ResponseWriter, r *http.Request) (io.ReadCloser, *multipartHeader, error) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidPayload, "Upload multipart inválido", nil)
		return nil, nil, err
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campo de arquivo \"file\" é obrigatório", nil)
		return nil, nil, err
	}

	return file, &multipartHeader{Filename: header.Filename}, nil
}

type multipartHeader struct {
	Filename string
}

func runImport(w http.ResponseWriter, r *http.Request, service importing.Importer, tenantID, source string, rows []domain.RawRow, filename *string) {
	summary, err := service.ImportBatch(r.Context(), tenantID, source, rows, filename)
	if err != nil {
		handleImportError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(summary)
}

// handleImportError traduz erros fatais de lote para a resposta padronizada
func handleImportError(w http.ResponseWriter, err error) {
	var missingErr *importing.MissingColumnsError
	if errors.As(err, &missingErr) {
		apiErrors.WriteError(w, apiErrors.ErrMissingColumns, "Colunas obrigatórias ausentes", map[string]any{
			"columns": missingErr.Columns,
		})
		return
	}

	switch {
	case errors.Is(err, importing.ErrUnknownTenant):
		apiErrors.WriteError(w, apiErrors.ErrUnknownTenant, "Tenant não encontrado", nil)

	case errors.Is(err, importing.ErrMissingColumns):
		apiErrors.WriteError(w, apiErrors.ErrMissingColumns, "Colunas obrigatórias ausentes", nil)

	default:
		logrus.Error(err)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar lote de importação", nil)
	}
}
