// internal/workers/tasks.go
package workers

import (
	"time"

	"github.com/google/uuid"
)

// Task type names. Shared between the API (which enqueues) and the
// worker (which registers handlers).
const (
	TypeExpiryScan       = "expiry:scan"
	TypeLowStockScan     = "stock:low_scan"
	TypeLedgerReport     = "report:ledger_excel"
	TypeSendEmail        = "email:send"
	TypeCleanupTempFiles = "cleanup:temp_files"
	TypeCleanupReports   = "cleanup:reports"
)

// LedgerReportPayload describes an Excel ledger export job
type LedgerReportPayload struct {
	JobID        string     `json:"job_id"`
	ItemMasterID *uuid.UUID `json:"item_master_id,omitempty"`
	From         *time.Time `json:"from,omitempty"`
	To           *time.Time `json:"to,omitempty"`
	RequestedBy  string     `json:"requested_by,omitempty"`
}

// EmailPayload describes an outbound notification
type EmailPayload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// ReportStatus is the cache-backed state of a report job, keyed by job
// id so the API can poll it.
type ReportStatus struct {
	JobID       string     `json:"job_id"`
	Status      string     `json:"status"`
	URL         string     `json:"url,omitempty"`
	RowCount    int        `json:"row_count,omitempty"`
	GeneratedAt *time.Time `json:"generated_at,omitempty"`
	Error       string     `json:"error,omitempty"`
}

const (
	ReportStatusQueued    = "queued"
	ReportStatusRunning   = "running"
	ReportStatusCompleted = "completed"
	ReportStatusFailed    = "failed"
)
