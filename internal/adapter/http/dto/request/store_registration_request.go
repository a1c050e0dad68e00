package request

import (
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/sanfergio/Anuncia-JA-Checkout/internal/domain/entities"
)

// ErrInvalidDocument means the tax document has neither CPF (11) nor CNPJ
// (14) digits after normalization. Full checksum validation is delegated to
// the billing provider, which is authoritative.
var ErrInvalidDocument = errors.New("invalid cpf/cnpj")

// MissingFieldError names the first required field absent from the
// submission, following the canonical field order.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// StoreRegistrationRequest is the store-registration payload accepted by
// the checkout endpoint, as JSON or multipart form fields.
type StoreRegistrationRequest struct {
	NomeLoja     string `json:"nomeLoja" form:"nomeLoja"`
	Proprietario string `json:"proprietario" form:"proprietario"`
	Documento    string `json:"documento" form:"documento"`
	Email        string `json:"email" form:"email"`
	Telefone     string `json:"telefone" form:"telefone"`
	CEP          string `json:"cep" form:"cep"`
	Rua          string `json:"rua" form:"rua"`
	Numero       string `json:"numero" form:"numero"`
	Complemento  string `json:"complemento" form:"complemento"`
	Bairro       string `json:"bairro" form:"bairro"`
	DescCurta    string `json:"descCurta" form:"descCurta"`
	DescLonga    string `json:"descLonga" form:"descLonga"`
	LogoURL      string `json:"logoUrl" form:"logoUrl"`
	FotoLojaURL  string `json:"fotoLojaUrl" form:"fotoLojaUrl"`
}

// Validate checks required fields in canonical order and the document
// length. The first missing field wins, deterministically.
func (r StoreRegistrationRequest) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"nomeLoja", r.NomeLoja},
		{"proprietario", r.Proprietario},
		{"documento", r.Documento},
		{"email", r.Email},
		{"telefone", r.Telefone},
		{"cep", r.CEP},
		{"rua", r.Rua},
		{"numero", r.Numero},
		{"logoUrl", r.LogoURL},
		{"fotoLojaUrl", r.FotoLojaURL},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}

	if l := len(r.NormalizedDocument()); l != 11 && l != 14 {
		return ErrInvalidDocument
	}
	return nil
}

// NormalizedDocument strips everything but digits from the tax document.
func (r StoreRegistrationRequest) NormalizedDocument() string {
	return onlyDigits(r.Documento)
}

// ToRegistration sanitizes the submission into the domain entity: free
// text is trimmed and HTML-escaped so it cannot inject markup into
// generated descriptions or ledger rows; document, phone and postal code
// keep digits only.
func (r StoreRegistrationRequest) ToRegistration() entities.StoreRegistration {
	return entities.StoreRegistration{
		StoreName:        sanitize(r.NomeLoja),
		OwnerName:        sanitize(r.Proprietario),
		Document:         onlyDigits(r.Documento),
		Email:            strings.TrimSpace(r.Email),
		Phone:            onlyDigits(r.Telefone),
		PostalCode:       onlyDigits(r.CEP),
		Street:           sanitize(r.Rua),
		Number:           sanitize(r.Numero),
		Complement:       sanitize(r.Complemento),
		Neighborhood:     sanitize(r.Bairro),
		ShortDescription: sanitize(r.DescCurta),
		LongDescription:  sanitize(r.DescLonga),
		LogoURL:          strings.TrimSpace(r.LogoURL),
		StorefrontURL:    strings.TrimSpace(r.FotoLojaURL),
	}
}

func sanitize(v string) string {
	return html.EscapeString(strings.TrimSpace(v))
}

func onlyDigits(v string) string {
	var b strings.Builder
	for _, r := range v {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
