package interfaces

import "github.com/sanfergio/Anuncia-JA-Checkout/internal/domain/entities"

// ILedgerWriter abstracts the append-only local audit ledger.

type ILedgerWriter interface {
	Append(entry entities.LedgerEntry) error
}
