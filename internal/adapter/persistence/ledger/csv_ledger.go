package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"github.com/sanfergio/Anuncia-JA-Checkout/internal/domain/entities"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/usecase/interfaces"
)

var csvHeader = []string{"Data", "CustomerID", "PaymentID", "Loja", "InvoiceURL", "Status"}

const timestampLayout = "2006-01-02 15:04:05"

// CSVLedger appends one audit row per completed intake to a shared CSV
// file, writing the header first when the file is new.
//
// Concurrency: the in-process mutex serializes goroutines, the flock
// serializes other processes sharing the file. Both are held only for the
// duration of a single append, never across gateway calls.

type CSVLedger struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

var _ interfaces.ILedgerWriter = (*CSVLedger)(nil)

func NewCSVLedger(path string) *CSVLedger {
	return &CSVLedger{path: path, lock: flock.New(path)}
}

func (l *CSVLedger) Append(entry entities.LedgerEntry) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.lock.Lock(); err != nil {
		return fmt.Errorf("locking ledger file: %w", err)
	}
	defer l.lock.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening ledger file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stating ledger file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("writing ledger header: %w", err)
		}
	}

	ts := entry.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	record := []string{
		ts.Format(timestampLayout),
		entry.CustomerID,
		entry.PaymentID,
		entry.StoreName,
		entry.InvoiceURL,
		string(entry.Status),
	}
	if err := w.Write(record); err != nil {
		return fmt.Errorf("writing ledger row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing ledger row: %w", err)
	}
	return nil
}
