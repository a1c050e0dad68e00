package ledger

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/sanfergio/Anuncia-JA-Checkout/internal/domain/entities"
)

func testEntry(paymentID string) entities.LedgerEntry {
	return entities.LedgerEntry{
		Timestamp:  time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC),
		CustomerID: "cus_001",
		PaymentID:  paymentID,
		StoreName:  "Loja do Zé",
		InvoiceURL: "https://asaas.example/i/" + paymentID,
		Status:     entities.LedgerStatusPendente,
	}
}

func readRecords(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening ledger: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("parsing ledger csv: %v", err)
	}
	return records
}

func TestCSVLedger_Append(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registros.csv")
	l := NewCSVLedger(path)

	if err := l.Append(testEntry("pay_001")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := readRecords(t, path)
	if len(records) != 2 {
		t.Fatalf("expected header + 1 row, got %d records", len(records))
	}

	header := records[0]
	want := []string{"Data", "CustomerID", "PaymentID", "Loja", "InvoiceURL", "Status"}
	for i := range want {
		if header[i] != want[i] {
			t.Fatalf("unexpected header: %v", header)
		}
	}

	row := records[1]
	if row[0] != "2026-08-29 10:30:00" {
		t.Fatalf("unexpected timestamp: %q", row[0])
	}
	if row[1] != "cus_001" || row[2] != "pay_001" || row[3] != "Loja do Zé" {
		t.Fatalf("unexpected row: %v", row)
	}
	if row[5] != "PENDENTE" {
		t.Fatalf("expected PENDENTE status, got %q", row[5])
	}
}

func TestCSVLedger_HeaderWrittenOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registros.csv")
	l := NewCSVLedger(path)

	if err := l.Append(testEntry("pay_001")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := l.Append(testEntry("pay_002")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := readRecords(t, path)
	if len(records) != 3 {
		t.Fatalf("expected header + 2 rows, got %d records", len(records))
	}
	if records[0][0] != "Data" {
		t.Fatalf("expected single leading header, got %v", records[0])
	}
	for _, row := range records[1:] {
		if row[0] == "Data" {
			t.Fatalf("header written more than once")
		}
	}
}

func TestCSVLedger_ConcurrentAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registros.csv")
	l := NewCSVLedger(path)

	const writers = 20
	var wg sync.WaitGroup
	wg.Add(writers)
	for i := 0; i < writers; i++ {
		go func(i int) {
			defer wg.Done()
			if err := l.Append(testEntry(fmt.Sprintf("pay_%03d", i))); err != nil {
				t.Errorf("append %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	records := readRecords(t, path)
	if len(records) != writers+1 {
		t.Fatalf("expected header + %d rows, got %d records", writers, len(records))
	}
	seen := make(map[string]bool, writers)
	for _, row := range records[1:] {
		if len(row) != 6 {
			t.Fatalf("malformed row: %v", row)
		}
		if seen[row[2]] {
			t.Fatalf("duplicate payment id %q", row[2])
		}
		seen[row[2]] = true
	}
	if len(seen) != writers {
		t.Fatalf("expected %d distinct rows, got %d", writers, len(seen))
	}
}

func TestCSVLedger_FieldsWithCommasStayIntact(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registros.csv")
	l := NewCSVLedger(path)

	entry := testEntry("pay_001")
	entry.StoreName = "Loja, Filial Centro"
	if err := l.Append(entry); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records := readRecords(t, path)
	if records[1][3] != "Loja, Filial Centro" {
		t.Fatalf("expected quoted comma field to round-trip, got %q", records[1][3])
	}
}
