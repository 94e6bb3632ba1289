package domain

import "time"

// Origem de uma importação em lote.
const (
	ImportSourceAPI     = "api"
	ImportSourceCSV     = "csv"
	ImportSourceXLS     = "xls"
	ImportSourceWebhook = "webhook"
)

// Status de um evento de importação, derivado dos contadores finais.
const (
	ImportStatusPending = "pending"
	ImportStatusSuccess = "success"
	ImportStatusPartial = "partial"
	ImportStatusFailed  = "failed"
)

// ImportStatusFor deriva o status final de um lote a partir dos contadores.
func ImportStatusFor(insertedCount, errorCount int) string {
	switch {
	case errorCount == 0:
		return ImportStatusSuccess
	case insertedCount > 0:
		return ImportStatusPartial
	default:
		return ImportStatusFailed
	}
}

// ImportEvent é o registro de auditoria de uma tentativa de ingestão em lote.
type ImportEvent struct {
	ID            int64     `json:"id"`
	TenantID      string    `json:"tenant_id"`
	Source        string    `json:"source"`
	Filename      *string   `json:"filename,omitempty"`
	InsertedCount int       `json:"inserted_count"`
	ErrorCount    int       `json:"error_count"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// ImportEventError guarda o detalhe de uma linha rejeitada, com a linha
// original preservada para diagnóstico.
type ImportEventError struct {
	ID       int64  `json:"id"`
	EventID  int64  `json:"event_id"`
	RowIndex int    `json:"row_index"`
	Error    string `json:"error"`
	RawRow   RawRow `json:"raw_row"`
}

// ImportSummary é o resultado agregado devolvido ao chamador de um lote.
type ImportSummary struct {
	EventID       int64  `json:"event_id"`
	InsertedCount int    `json:"inserted_count"`
	ErrorCount    int    `json:"error_count"`
	Status        string `json:"status"`
}
