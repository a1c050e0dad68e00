package response

import (
	"encoding/json"
	"testing"

	"github.com/sanfergio/Anuncia-JA-Checkout/internal/usecase"
)

func TestFromIntakeResult(t *testing.T) {
	res := FromIntakeResult(usecase.IntakeResult{
		PaymentURL: "https://asaas.example/i/pay_001",
		PixCode:    "000201pix",
		PixQRCode:  "aGVsbG8=",
	})

	if !res.Success {
		t.Fatalf("expected success envelope")
	}
	if res.Message != "Cadastro iniciado!" {
		t.Fatalf("unexpected message: %q", res.Message)
	}
	if res.PaymentURL != "https://asaas.example/i/pay_001" {
		t.Fatalf("unexpected payment url: %q", res.PaymentURL)
	}
}

func TestFailureOmitsPaymentFields(t *testing.T) {
	b, err := json.Marshal(Failure("CPF ou CNPJ inválido"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if body["success"] != false || body["message"] != "CPF ou CNPJ inválido" {
		t.Fatalf("unexpected body: %s", b)
	}
	for _, k := range []string{"paymentUrl", "pixCode", "pixQrCode"} {
		if _, ok := body[k]; ok {
			t.Fatalf("failure envelope must omit %s", k)
		}
	}
}

func TestFromIntakeResultOmitsEmptyPixFields(t *testing.T) {
	b, err := json.Marshal(FromIntakeResult(usecase.IntakeResult{PaymentURL: "https://asaas.example/i/pay_001"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var body map[string]any
	_ = json.Unmarshal(b, &body)
	if _, ok := body["pixCode"]; ok {
		t.Fatalf("expected pixCode omitted when absent: %s", b)
	}
	if _, ok := body["pixQrCode"]; ok {
		t.Fatalf("expected pixQrCode omitted when absent: %s", b)
	}
}
