package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sanfergio/Anuncia-JA-Checkout/internal/domain/entities"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/infrastructure/billing"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/infrastructure/config"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/usecase/interfaces"
)

var (
	// ErrCustomerReconciliation marks the inconsistency where the provider
	// reports the customer as existing but the document lookup finds
	// nothing. The intake aborts; no id is ever fabricated.
	ErrCustomerReconciliation = errors.New("customer reported as existing but not found")

	ErrGatewayNotConfigured = errors.New("billing gateway not configured")
	ErrLedgerNotConfigured  = errors.New("ledger writer not configured")
)

const (
	billingTypePix = "PIX"

	// Provider cap on the payment description field.
	maxDescriptionLen = 500

	// Charges fall due this many calendar days after submission.
	dueDateOffsetDays = 3

	dueDateLayout = "2006-01-02"
)

// IntakeResult is the successful outcome of one intake: where to send the
// merchant to pay, plus optional PIX payloads when the provider returns
// them inline.
type IntakeResult struct {
	PaymentURL string
	PixCode    string
	PixQRCode  string
}

// IIntakeUseCase encapsulates the registration-to-payment workflow.
//
// The pipeline is linear with no retries: resolve customer, assemble and
// create the charge, append the audit ledger. Each external call is
// attempted exactly once; any stage failure is terminal for the request.

type IIntakeUseCase interface {
	Process(ctx context.Context, reg entities.StoreRegistration) (IntakeResult, error)
}

type IntakeUseCase struct {
	gateway interfaces.IBillingGateway
	ledger  interfaces.ILedgerWriter
	cfg     config.Config
	now     func() time.Time
}

var _ IIntakeUseCase = (*IntakeUseCase)(nil)

func NewIntakeUseCase(gateway interfaces.IBillingGateway, ledger interfaces.ILedgerWriter, cfg config.Config) *IntakeUseCase {
	return &IntakeUseCase{gateway: gateway, ledger: ledger, cfg: cfg, now: time.Now}
}

func (u *IntakeUseCase) Process(ctx context.Context, reg entities.StoreRegistration) (IntakeResult, error) {
	log.Printf("[intake][usecase] process start store=%q document=%s", reg.StoreName, reg.Document)
	if u.gateway == nil {
		return IntakeResult{}, ErrGatewayNotConfigured
	}
	if u.ledger == nil {
		return IntakeResult{}, ErrLedgerNotConfigured
	}

	customerID, err := u.resolveCustomer(ctx, reg)
	if err != nil {
		return IntakeResult{}, err
	}
	log.Printf("[intake][usecase] customer resolved customer_id=%s", customerID)

	charge, err := u.createCharge(ctx, customerID, reg)
	if err != nil {
		log.Printf("[intake][usecase] charge creation failed customer_id=%s err=%v", customerID, err)
		return IntakeResult{}, err
	}
	log.Printf("[intake][usecase] charge created customer_id=%s payment_id=%s", customerID, charge.ID)

	// Best-effort audit: the payment already exists upstream, so a ledger
	// failure must not fail the intake.
	entry := entities.LedgerEntry{
		Timestamp:  u.now(),
		CustomerID: customerID,
		PaymentID:  charge.ID,
		StoreName:  reg.StoreName,
		InvoiceURL: charge.InvoiceURL,
		Status:     entities.LedgerStatusPendente,
	}
	if err := u.ledger.Append(entry); err != nil {
		log.Printf("[intake][usecase] ledger append failed payment_id=%s err=%v", charge.ID, err)
	}

	return IntakeResult{
		PaymentURL: charge.InvoiceURL,
		PixCode:    charge.PixCode,
		PixQRCode:  charge.PixQRCode,
	}, nil
}

// resolveCustomer creates the billing customer, recovering from a
// duplicate-document conflict by looking the customer up instead.
// Creation-first avoids an extra round trip in the common (new customer)
// case; the lookup handles repeat registrations without a pre-check.
func (u *IntakeUseCase) resolveCustomer(ctx context.Context, reg entities.StoreRegistration) (string, error) {
	payload := entities.CustomerPayload{
		Name:                 reg.OwnerName,
		CpfCnpj:              reg.Document,
		Email:                reg.Email,
		MobilePhone:          reg.Phone,
		Address:              reg.Street,
		AddressNumber:        reg.Number,
		Complement:           reg.Complement,
		Province:             reg.Neighborhood,
		PostalCode:           reg.PostalCode,
		ExternalReference:    newExternalReference("LOJA"),
		NotificationDisabled: false,
		Observations:         "Loja: " + reg.StoreName,
	}

	customerID, err := u.gateway.CreateCustomer(ctx, payload)
	if err == nil {
		return customerID, nil
	}
	if !errors.Is(err, billing.ErrCustomerExists) {
		return "", err
	}

	log.Printf("[intake][usecase] customer exists, looking up document=%s", reg.Document)
	customerID, err = u.gateway.FindCustomerByDocument(ctx, reg.Document)
	if err != nil {
		return "", err
	}
	if customerID == "" {
		log.Printf("[intake][usecase] reconciliation failure: customer reported as existing but not found document=%s", reg.Document)
		return "", ErrCustomerReconciliation
	}
	return customerID, nil
}

func (u *IntakeUseCase) createCharge(ctx context.Context, customerID string, reg entities.StoreRegistration) (entities.Charge, error) {
	req := entities.ChargeRequest{
		BillingType:       billingTypePix,
		Customer:          customerID,
		Value:             u.cfg.RegistrationFee,
		DueDate:           u.now().AddDate(0, 0, dueDateOffsetDays).Format(dueDateLayout),
		Description:       buildDescription(reg),
		ExternalReference: newExternalReference("CAD"),
		Callback: entities.ChargeCallback{
			SuccessURL:   u.cfg.ConfirmationURL,
			AutoRedirect: true,
		},
	}
	return u.gateway.CreateCharge(ctx, req)
}

// buildDescription concatenates the fixed labeled lines in order, then
// applies the provider's hard cap last, even if it cuts a line mid-word.
func buildDescription(reg entities.StoreRegistration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CADASTRO LOJA: %s\n", strings.ToUpper(reg.StoreName))
	fmt.Fprintf(&b, "Resp: %s\n", reg.OwnerName)
	fmt.Fprintf(&b, "Logo: %s\n", reg.LogoURL)
	fmt.Fprintf(&b, "Vitrine: %s\n", reg.StorefrontURL)
	fmt.Fprintf(&b, "Descrição da Loja: %s\n", orNA(reg.LongDescription))
	fmt.Fprintf(&b, "Slogan: %s\n", orNA(reg.ShortDescription))

	desc := b.String()
	if runes := []rune(desc); len(runes) > maxDescriptionLen {
		desc = string(runes[:maxDescriptionLen])
	}
	return desc
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

func newExternalReference(prefix string) string {
	return prefix + "_" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
