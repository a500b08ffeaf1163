// Package payment provides the concrete payment gateway implementation.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"vitrina/config"
	"vitrina/internal/domain/service"
	"vitrina/internal/errors"

	"github.com/google/uuid"
)

const (
	defaultBaseURL    = "https://api.mercadopago.com"
	defaultHTTPSecs   = 10
	approvedStatus    = "approved"
	preferencePath    = "/checkout/preferences"
	paymentLookupPath = "/v1/payments/"
)

// mercadoPagoGateway talks to the MercadoPago REST API. Only the two calls
// the subscription lifecycle needs are implemented: preference creation and
// payment lookup for webhook confirmation.
type mercadoPagoGateway struct {
	client      *http.Client
	baseURL     string
	accessToken string
	notifyURL   string
}

// NewMercadoPagoGateway is the constructor for mercadoPagoGateway.
func NewMercadoPagoGateway(cfg *config.Config) (service.PaymentGateway, error) {
	if cfg.MercadoPago == nil || cfg.MercadoPago.AccessToken == "" {
		return nil, errors.New("mercadopago access token must be provided")
	}

	baseURL := cfg.MercadoPago.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &mercadoPagoGateway{
		client:      &http.Client{Timeout: defaultHTTPSecs * time.Second},
		baseURL:     baseURL,
		accessToken: cfg.MercadoPago.AccessToken,
		notifyURL:   cfg.MercadoPago.NotifyURL,
	}, nil
}

type preferenceRequest struct {
	ExternalReference string           `json:"external_reference"`
	NotificationURL   string           `json:"notification_url,omitempty"`
	Items             []preferenceItem `json:"items"`
}

type preferenceItem struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// CreatePreference registers a pending payment at the gateway.
func (g *mercadoPagoGateway) CreatePreference(ctx context.Context, subscriptionID uuid.UUID, amount float64, description string) (*service.PaymentPreference, error) {
	payload := preferenceRequest{
		ExternalReference: subscriptionID.String(),
		NotificationURL:   g.notifyURL,
		Items: []preferenceItem{
			{Title: description, Quantity: 1, UnitPrice: amount},
		},
	}

	var resp preferenceResponse
	if err := g.do(ctx, http.MethodPost, preferencePath, payload, &resp); err != nil {
		return nil, errors.Wrap(err, "mercadopago create preference")
	}

	return &service.PaymentPreference{
		ExternalID:  resp.ID,
		CheckoutURL: resp.InitPoint,
	}, nil
}

type paymentResponse struct {
	ID     int64  `json:"id"`
	Status string `json:"status"`
}

// LookupPayment resolves a webhook's payment reference at the gateway.
func (g *mercadoPagoGateway) LookupPayment(ctx context.Context, paymentRef string) (*service.PaymentNotification, error) {
	var resp paymentResponse
	if err := g.do(ctx, http.MethodGet, paymentLookupPath+paymentRef, nil, &resp); err != nil {
		return nil, errors.Wrap(err, "mercadopago lookup payment")
	}

	return &service.PaymentNotification{
		ExternalID: paymentRef,
		Approved:   resp.Status == approvedStatus,
	}, nil
}

func (g *mercadoPagoGateway) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "marshal request body")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, body)
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Authorization", "Bearer "+g.accessToken)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "execute request")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))

		return errors.Errorf("gateway returned %d: %s", resp.StatusCode, string(raw))
	}

	if out == nil {
		return nil
	}

	return errors.Wrap(json.NewDecoder(resp.Body).Decode(out), "decode response body")
}
