package billing

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sanfergio/Anuncia-JA-Checkout/internal/domain/entities"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/infrastructure/config"
	"github.com/sanfergio/Anuncia-JA-Checkout/internal/usecase/interfaces"
)

const (
	userAgent      = "AnunciaJA-Checkout/1.0"
	defaultTimeout = 30 * time.Second

	// Asaas reports an upstream error list; when it is empty we fall back
	// to this message rather than leaking raw response bytes.
	defaultUpstreamMessage = "Erro desconhecido na API Asaas"
)

// ErrConnectionFailed marks a network/transport failure before any HTTP
// status was obtained. Fatal for the intake.
var ErrConnectionFailed = errors.New("falha de conexão com a API Asaas")

// ErrCustomerExists is the recoverable conflict signal consumed by the
// customer resolver: the provider refused creation because a customer with
// the same tax document already exists.
var ErrCustomerExists = errors.New("customer already exists")

// UpstreamError is any other non-2xx outcome. Description comes from the
// provider's own error payload and is safe to surface to the caller.
type UpstreamError struct {
	StatusCode  int
	Description string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("asaas upstream error (status %d): %s", e.StatusCode, e.Description)
}

// Client executes signed HTTP calls against the Asaas REST API and
// classifies their outcomes. TLS peer verification stays enabled: the
// default transport is used as-is.

type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
}

var _ interfaces.IBillingGateway = (*Client)(nil)

func NewClient(cfg config.Config) *Client {
	if cfg.GatewayAccessToken == "" {
		log.Printf("[billing][gateway] missing ASAAS_ACCESS_TOKEN; gateway calls will be rejected upstream")
	}
	return &Client{
		httpClient:  &http.Client{Timeout: defaultTimeout},
		baseURL:     strings.TrimRight(cfg.GatewayBaseURL, "/"),
		accessToken: cfg.GatewayAccessToken,
	}
}

// CreateCustomer creates a billing customer and returns the provider's id.
// A duplicate tax document surfaces as ErrCustomerExists.
func (c *Client) CreateCustomer(ctx context.Context, payload entities.CustomerPayload) (string, error) {
	raw, err := c.do(ctx, http.MethodPost, "/customers", payload)
	if err != nil {
		return "", err
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decoding customer response: %w", err)
	}
	log.Printf("[billing][gateway] customer created customer_id=%s", resp.ID)
	return resp.ID, nil
}

// FindCustomerByDocument looks a customer up by normalized tax document and
// returns the first match's id, or empty when there is none.
func (c *Client) FindCustomerByDocument(ctx context.Context, cpfCnpj string) (string, error) {
	raw, err := c.do(ctx, http.MethodGet, "/customers?cpfCnpj="+url.QueryEscape(cpfCnpj), nil)
	if err != nil {
		return "", err
	}

	var resp struct {
		Data []struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &resp); err != nil {
		return "", fmt.Errorf("decoding customer lookup response: %w", err)
	}
	if len(resp.Data) == 0 {
		log.Printf("[billing][gateway] customer lookup empty cpf_cnpj=%s", cpfCnpj)
		return "", nil
	}
	return resp.Data[0].ID, nil
}

// CreateCharge creates the pending registration payment.
func (c *Client) CreateCharge(ctx context.Context, req entities.ChargeRequest) (entities.Charge, error) {
	raw, err := c.do(ctx, http.MethodPost, "/payments", req)
	if err != nil {
		return entities.Charge{}, err
	}

	var charge entities.Charge
	if err := json.Unmarshal(raw, &charge); err != nil {
		return entities.Charge{}, fmt.Errorf("decoding charge response: %w", err)
	}
	log.Printf("[billing][gateway] charge created payment_id=%s status=%s", charge.ID, charge.Status)
	return charge, nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("access_token", c.accessToken)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("[billing][gateway] transport failure method=%s endpoint=%s err=%v", method, endpoint, err)
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return raw, nil
	}

	description := upstreamDescription(raw)
	if resp.StatusCode == http.StatusBadRequest && isDuplicateCustomer(description) {
		log.Printf("[billing][gateway] customer conflict endpoint=%s", endpoint)
		return nil, ErrCustomerExists
	}

	log.Printf("[billing][gateway] upstream error method=%s endpoint=%s status=%d description=%q", method, endpoint, resp.StatusCode, description)
	return nil, &UpstreamError{StatusCode: resp.StatusCode, Description: description}
}

func upstreamDescription(raw []byte) string {
	var parsed struct {
		Errors []struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(raw, &parsed); err == nil && len(parsed.Errors) > 0 && parsed.Errors[0].Description != "" {
		return parsed.Errors[0].Description
	}
	return defaultUpstreamMessage
}

// isDuplicateCustomer matches the provider's duplicate-customer wording.
// Asaas exposes no structured error code for this conflict, only free text,
// so the match lives here behind the ErrCustomerExists sentinel: callers
// never string-match, and a structured code later touches this one function.
func isDuplicateCustomer(description string) bool {
	d := strings.ToLower(description)
	return strings.Contains(d, "já existe") || strings.Contains(d, "already exists")
}
