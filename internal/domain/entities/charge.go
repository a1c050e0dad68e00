package entities

// ChargeCallback configures the post-payment redirect on the provider's
// hosted invoice page.
type ChargeCallback struct {
	SuccessURL   string `json:"successUrl"`
	AutoRedirect bool   `json:"autoRedirect"`
}

// ChargeRequest is the payment-creation body sent to the billing provider
// (Asaas /payments schema).
//
// ExternalReference is a fresh per-request trace tag, never a dedup key:
// resubmitting the same registration intentionally creates a second charge.
type ChargeRequest struct {
	BillingType       string         `json:"billingType"`
	Customer          string         `json:"customer"`
	Value             float64        `json:"value"`
	DueDate           string         `json:"dueDate"`
	Description       string         `json:"description"`
	ExternalReference string         `json:"externalReference"`
	Callback          ChargeCallback `json:"callback"`
}

// Charge is the provider's view of a created payment, reduced to the
// fields the intake response and the ledger need.
type Charge struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	InvoiceURL string `json:"invoiceUrl"`
	PixCode    string `json:"pixCode"`
	PixQRCode  string `json:"encodedImage"`
}
