package interfaces

import (
	"context"

	"github.com/sanfergio/Anuncia-JA-Checkout/internal/domain/entities"
)

// IBillingGateway abstracts the external billing provider (Asaas).
//
// The intake usecase uses it to:
//   - create a billing customer (or learn one already exists)
//   - look a customer up by normalized tax document
//   - create the pending registration charge
type IBillingGateway interface {
	CreateCustomer(ctx context.Context, payload entities.CustomerPayload) (string, error)
	FindCustomerByDocument(ctx context.Context, cpfCnpj string) (string, error)
	CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.Charge, error)
}
