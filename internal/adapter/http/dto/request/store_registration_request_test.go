package request

import (
	"errors"
	"testing"
)

func validRequest() StoreRegistrationRequest {
	return StoreRegistrationRequest{
		NomeLoja:     "Loja do Zé",
		Proprietario: "José Silva",
		Documento:    "529.982.247-25",
		Email:        " ze@example.com ",
		Telefone:     "(11) 99999-0000",
		CEP:          "01001-000",
		Rua:          "Praça da Sé",
		Numero:       "100",
		LogoURL:      "https://img.example.com/logo.png",
		FotoLojaURL:  "https://img.example.com/vitrine.png",
	}
}

func TestStoreRegistrationRequest_Validate(t *testing.T) {
	if err := validRequest().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("reports first missing field in canonical order", func(t *testing.T) {
		r := validRequest()
		r.Telefone = ""
		r.Rua = "   "
		r.LogoURL = ""

		err := r.Validate()
		var missing *MissingFieldError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingFieldError, got %v", err)
		}
		if missing.Field != "telefone" {
			t.Fatalf("expected telefone (first in order), got %q", missing.Field)
		}
	})

	t.Run("every required field is checked", func(t *testing.T) {
		fields := []struct {
			name  string
			clear func(*StoreRegistrationRequest)
		}{
			{"nomeLoja", func(r *StoreRegistrationRequest) { r.NomeLoja = "" }},
			{"proprietario", func(r *StoreRegistrationRequest) { r.Proprietario = "" }},
			{"documento", func(r *StoreRegistrationRequest) { r.Documento = "" }},
			{"email", func(r *StoreRegistrationRequest) { r.Email = "" }},
			{"telefone", func(r *StoreRegistrationRequest) { r.Telefone = "" }},
			{"cep", func(r *StoreRegistrationRequest) { r.CEP = "" }},
			{"rua", func(r *StoreRegistrationRequest) { r.Rua = "" }},
			{"numero", func(r *StoreRegistrationRequest) { r.Numero = "" }},
			{"logoUrl", func(r *StoreRegistrationRequest) { r.LogoURL = "" }},
			{"fotoLojaUrl", func(r *StoreRegistrationRequest) { r.FotoLojaURL = "" }},
		}
		for _, f := range fields {
			r := validRequest()
			f.clear(&r)
			err := r.Validate()
			var missing *MissingFieldError
			if !errors.As(err, &missing) || missing.Field != f.name {
				t.Fatalf("clearing %s: expected MissingFieldError for it, got %v", f.name, err)
			}
		}
	})

	t.Run("document length", func(t *testing.T) {
		cases := []struct {
			documento string
			ok        bool
		}{
			{"52998224725", true},            // CPF, 11 digits
			{"529.982.247-25", true},         // CPF with punctuation
			{"12345678000195", true},         // CNPJ, 14 digits
			{"12.345.678/0001-95", true},     // CNPJ with punctuation
			{"123", false},                   // too short
			{"123456789012", false},          // 12 digits
			{"123456789012345", false},       // 15 digits
			{"abcdefghijk", false},           // no digits at all
		}
		for _, tc := range cases {
			r := validRequest()
			r.Documento = tc.documento
			err := r.Validate()
			if tc.ok && err != nil {
				t.Fatalf("document %q: unexpected error %v", tc.documento, err)
			}
			if !tc.ok && !errors.Is(err, ErrInvalidDocument) {
				t.Fatalf("document %q: expected ErrInvalidDocument, got %v", tc.documento, err)
			}
		}
	})
}

func TestStoreRegistrationRequest_ToRegistration(t *testing.T) {
	r := validRequest()
	r.NomeLoja = "  Loja <script>alert(1)</script>  "
	r.DescCurta = `"promo" & cia`

	reg := r.ToRegistration()

	if reg.StoreName != "Loja &lt;script&gt;alert(1)&lt;/script&gt;" {
		t.Fatalf("expected escaped store name, got %q", reg.StoreName)
	}
	if reg.ShortDescription != "&#34;promo&#34; &amp; cia" {
		t.Fatalf("expected escaped short description, got %q", reg.ShortDescription)
	}
	if reg.Document != "52998224725" {
		t.Fatalf("expected digits-only document, got %q", reg.Document)
	}
	if reg.Phone != "11999990000" {
		t.Fatalf("expected digits-only phone, got %q", reg.Phone)
	}
	if reg.PostalCode != "01001000" {
		t.Fatalf("expected digits-only cep, got %q", reg.PostalCode)
	}
	if reg.Email != "ze@example.com" {
		t.Fatalf("expected trimmed email, got %q", reg.Email)
	}
}
