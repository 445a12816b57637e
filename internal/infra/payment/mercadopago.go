// Package payment creates hosted checkout links with Mercado Pago.
package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"lane-booking/internal/pkg/config"
	"lane-booking/internal/pkg/errs"
	"lane-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

const preferencesPath = "/checkout/preferences"

type Client struct {
	http      *http.Client
	baseURL   string
	token     string
	returnURL string
}

// NewClient returns nil when no access token is configured; the booking flow then falls back
// to manual checkout.
func NewClient(cfg config.PaymentConfig) *Client {
	if cfg.AccessToken == "" {
		return nil
	}
	return &Client{
		http:      &http.Client{Timeout: cfg.Timeout},
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		token:     cfg.AccessToken,
		returnURL: cfg.ReturnURL,
	}
}

type preferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

type preferencePayer struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type backURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type preferenceRequest struct {
	Items             []preferenceItem `json:"items"`
	Payer             preferencePayer  `json:"payer"`
	ExternalReference string           `json:"external_reference"`
	BackURLs          backURLs         `json:"back_urls"`
	AutoReturn        string           `json:"auto_return"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

func (c *Client) CreatePaymentLink(ctx context.Context, req commands.PaymentRequest) (string, error) {
	body, err := json.Marshal(preferenceRequest{
		Items: []preferenceItem{{
			Title:      req.Title,
			Quantity:   1,
			UnitPrice:  req.Total.Float(),
			CurrencyID: "BRL",
		}},
		Payer:             preferencePayer{Name: req.PayerName, Email: req.PayerEmail},
		ExternalReference: ExternalReference(req),
		BackURLs: backURLs{
			Success: c.returnURL + "?status=success",
			Failure: c.returnURL + "?status=failure",
			Pending: c.returnURL + "?status=pending",
		},
		AutoReturn: "approved",
	})
	if err != nil {
		return "", errs.Wrap(err, "encode preference")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+preferencesPath, bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "build preference request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.token)
	httpReq.Header.Set("X-Idempotency-Key", req.ReferenceID.String())

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", errs.Wrap(err, "call payment provider")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", errs.Newf("payment provider returned %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var pref preferenceResponse
	if err := json.NewDecoder(resp.Body).Decode(&pref); err != nil {
		return "", errs.Wrap(err, "decode preference")
	}
	if pref.InitPoint == "" {
		return "", errs.New("payment provider returned no checkout url")
	}
	return pref.InitPoint, nil
}

// ExternalReference lists every reservation id of the booking, comma separated.
func ExternalReference(req commands.PaymentRequest) string {
	ids := req.ReservationIDs
	if len(ids) == 0 {
		ids = []uuid.UUID{req.ReferenceID}
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}
	return strings.Join(parts, ",")
}

// ParseExternalReference is the inverse of ExternalReference.
func ParseExternalReference(ref string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, part := range strings.Split(ref, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := uuid.Parse(part)
		if err != nil {
			return nil, errs.Wrapf(err, "invalid reservation id %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errs.New("empty external reference")
	}
	return ids, nil
}
