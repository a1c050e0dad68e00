package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sanfergio/Anuncia-JA-Checkout/internal/adapter/http/dto/request"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/adapter/http/dto/response"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/infrastructure/billing"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/usecase"
	"github.com/sanfergio/Anuncia-JA-Checkout/pkg"
)

// CheckoutHandler handles the store-registration intake endpoint.

type CheckoutHandler struct {
	usecase usecase.IIntakeUseCase
}

func NewCheckoutHandler(uc usecase.IIntakeUseCase) *CheckoutHandler {
	return &CheckoutHandler{usecase: uc}
}

// CreateCheckout runs one intake end to end.
//
// @Summary      Register a store and create its pending registration charge
// @Description  Validates the submission, resolves the billing customer and creates a PIX charge.
// @Accept       json
// @Accept       mpfd
// @Produce      json
// @Param        registration  body      request.StoreRegistrationRequest  true  "Store registration"
// @Success      200  {object}  response.CheckoutResponse
// @Failure      400  {object}  response.CheckoutResponse
// @Failure      405  {object}  response.CheckoutResponse
// @Router       /checkout [post]
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	req, err := readRegistration(c)
	if err != nil {
		log.Printf("[checkout][handler] malformed body err=%v", err)
		c.JSON(http.StatusBadRequest, response.Failure("JSON inválido"))
		return
	}

	if err := req.Validate(); err != nil {
		log.Printf("[checkout][handler] validation failed err=%v", err)
		appErr := mapValidationError(err)
		c.JSON(appErr.HTTPStatus, response.Failure(appErr.Message))
		return
	}

	res, err := h.usecase.Process(c.Request.Context(), req.ToRegistration())
	if err != nil {
		log.Printf("[checkout][handler] intake failed store=%q err=%v", req.NomeLoja, err)
		appErr := mapIntakeError(err)
		c.JSON(appErr.HTTPStatus, response.Failure(appErr.Message))
		return
	}

	log.Printf("[checkout][handler] intake success store=%q payment_url=%s", req.NomeLoja, res.PaymentURL)
	c.JSON(http.StatusOK, response.FromIntakeResult(res))
}

// readRegistration accepts either a JSON body or multipart form fields.
func readRegistration(c *gin.Context) (request.StoreRegistrationRequest, error) {
	var req request.StoreRegistrationRequest

	ct := c.ContentType()
	if strings.HasPrefix(ct, "multipart/form-data") || ct == "application/x-www-form-urlencoded" {
		if err := c.ShouldBind(&req); err != nil {
			return request.StoreRegistrationRequest{}, err
		}
		return req, nil
	}

	raw, err := c.GetRawData()
	if err != nil {
		return request.StoreRegistrationRequest{}, err
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return request.StoreRegistrationRequest{}, err
	}
	return req, nil
}

func mapValidationError(err error) *pkg.AppError {
	var missing *request.MissingFieldError
	switch {
	case errors.As(err, &missing):
		return pkg.NewDomainError("MISSING_FIELD", fmt.Sprintf("Campo obrigatório ausente: %s", missing.Field), err, http.StatusBadRequest)
	case errors.Is(err, request.ErrInvalidDocument):
		return pkg.NewDomainError("INVALID_DOCUMENT", "CPF ou CNPJ inválido", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INVALID_REQUEST", "Requisição inválida", err, http.StatusBadRequest)
	}
}

// mapIntakeError sanitizes workflow failures for the caller: only text that
// originated in the gateway's own error payload is forwarded; everything
// else gets a generic wrapped message while the full cause stays in the
// server logs.
func mapIntakeError(err error) *pkg.AppError {
	var upstream *billing.UpstreamError
	switch {
	case errors.As(err, &upstream):
		return pkg.NewDomainError("GATEWAY_ERROR", "Erro ao processar: "+upstream.Description, err, http.StatusBadRequest)
	case errors.Is(err, billing.ErrConnectionFailed):
		return pkg.NewDomainError("GATEWAY_UNREACHABLE", "Erro ao processar: falha de conexão com o provedor de pagamento", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerReconciliation):
		return pkg.NewDomainError("CUSTOMER_RECONCILIATION", "Erro ao processar: Erro ao recuperar cadastro do cliente existente.", err, http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "Erro ao processar: erro inesperado", err, http.StatusBadRequest)
	}
}
