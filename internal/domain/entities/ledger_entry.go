package entities

import "time"

// LedgerStatus is the audit status recorded for an intake.
//
// The ledger is append-only: rows are written once with StatusPendente and
// never updated by this service, so no further statuses exist here.
type LedgerStatus string

const LedgerStatusPendente LedgerStatus = "PENDENTE"

// LedgerEntry is one audit row of the local intake ledger, created exactly
// once per successfully created charge.
type LedgerEntry struct {
	Timestamp  time.Time
	CustomerID string
	PaymentID  string
	StoreName  string
	InvoiceURL string
	Status     LedgerStatus
}
