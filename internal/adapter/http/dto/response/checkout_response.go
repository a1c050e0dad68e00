package response

import "github.com/sanfergio/Anuncia-JA-Checkout/internal/usecase"

// CheckoutResponse is the envelope returned by the checkout endpoint for
// both outcomes: {success, message?, paymentUrl?, pixCode?, pixQrCode?}.
type CheckoutResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	PaymentURL string `json:"paymentUrl,omitempty"`
	PixCode    string `json:"pixCode,omitempty"`
	PixQRCode  string `json:"pixQrCode,omitempty"`
}

func FromIntakeResult(res usecase.IntakeResult) CheckoutResponse {
	return CheckoutResponse{
		Success:    true,
		Message:    "Cadastro iniciado!",
		PaymentURL: res.PaymentURL,
		PixCode:    res.PixCode,
		PixQRCode:  res.PixQRCode,
	}
}

func Failure(message string) CheckoutResponse {
	return CheckoutResponse{Success: false, Message: message}
}
