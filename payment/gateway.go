// Package payment assembles and submits payment-gateway requests. The
// storefront only hands the shopper off to the gateway's hosted page; it
// never parses gateway responses beyond the redirect target.
package payment

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Gateway is the payment-provider boundary. Implementations build the
// provider-specific payload from a Request and trigger the hosted-page
// handoff.
type Gateway interface {
	SubmitPaymentRequest(ctx context.Context, req Request) (*Redirect, error)
}

type Request struct {
	OrderNumber   string
	Amount        float64
	Currency      string
	CustomerEmail string
	FirstName     string
	LastName      string
	// CustomFields are passed through to the gateway and echoed back on
	// the return URL.
	CustomFields []string
}

// Redirect tells the caller where to send the shopper and which form fields
// to post there.
type Redirect struct {
	URL    string            `json:"url"`
	Fields map[string]string `json:"fields"`
}

type Config struct {
	BaseURL    string
	MerchantID string
	Secret     string
	ReturnURL  string
	CancelURL  string
}

type webXPayGateway struct {
	cfg    Config
	client *http.Client
}

// NewWebXPayGateway builds the WebXPay form-post gateway client. A nil client
// falls back to a 15s-timeout default.
func NewWebXPayGateway(cfg Config, client *http.Client) Gateway {
	if client == nil {
		client = &http.Client{
			Timeout: 15 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}
	return &webXPayGateway{cfg: cfg, client: client}
}

// BuildFields assembles the gateway form payload: the payment field is the
// base64 of "orderNumber|amount|currency" and the signature is an HMAC-SHA256
// of the same plaintext under the merchant secret.
func (g *webXPayGateway) BuildFields(req Request) map[string]string {
	plaintext := fmt.Sprintf("%s|%.2f|%s", req.OrderNumber, req.Amount, req.Currency)

	mac := hmac.New(sha256.New, []byte(g.cfg.Secret))
	mac.Write([]byte(plaintext))

	return map[string]string{
		"merchant_id":   g.cfg.MerchantID,
		"first_name":    req.FirstName,
		"last_name":     req.LastName,
		"email":         req.CustomerEmail,
		"payment":       base64.StdEncoding.EncodeToString([]byte(plaintext)),
		"signature":     hex.EncodeToString(mac.Sum(nil)),
		"custom_fields": base64.StdEncoding.EncodeToString([]byte(strings.Join(req.CustomFields, "|"))),
		"return_url":    g.cfg.ReturnURL,
		"cancel_url":    g.cfg.CancelURL,
	}
}

func (g *webXPayGateway) SubmitPaymentRequest(ctx context.Context, req Request) (*Redirect, error) {
	fields := g.BuildFields(req)

	form := url.Values{}
	for k, v := range fields {
		form.Set(k, v)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 300 && resp.StatusCode < 400:
		location := resp.Header.Get("Location")
		if location == "" {
			return nil, fmt.Errorf("gateway redirect without location")
		}
		return &Redirect{URL: location, Fields: fields}, nil
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Gateway accepted the request; the shopper re-posts the same
		// fields to the hosted page.
		return &Redirect{URL: g.cfg.BaseURL, Fields: fields}, nil
	default:
		return nil, fmt.Errorf("gateway rejected payment request: status %d", resp.StatusCode)
	}
}
