// Package gateway is the adapter for the external STK-push mobile money API.
// Nothing outside this package sees the gateway's wire shapes; failures are
// translated into the apperr taxonomy at this boundary.
package gateway

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hudumapay/settlement-service/config"
	"github.com/hudumapay/settlement-service/internal/apperr"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// refresh the cached token this long before the gateway-reported expiry.
const tokenRefreshWatermark = 5 * time.Minute

const timestampLayout = "20060102150405"

// PushResult is the synchronous acknowledgement of an accepted push request.
type PushResult struct {
	MerchantRequestID string
	CheckoutRequestID string
	ResponseCode      string
	CustomerMessage   string
}

// StatusResult is the answer to a status query. Pending means the gateway has
// not resolved the push yet; Succeeded/FailureReason are meaningful only once
// Pending is false.
type StatusResult struct {
	Pending       bool
	Succeeded     bool
	ResultCode    string
	FailureReason string
}

type tokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// Client talks to the push-payment gateway. One instance per process owns the
// token cache; inject it rather than sharing globals.
type Client struct {
	cfg        config.Gateway
	httpClient *http.Client
	tokens     *tokenCache
	now        func() time.Time
}

func New(cfg config.Gateway) *Client {
	tr := &http.Transport{
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
		},
		MaxIdleConns:    10,
		IdleConnTimeout: 30 * time.Second,
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Transport: tr,
			Timeout:   timeout,
		},
		tokens: &tokenCache{},
		now:    time.Now,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   string `json:"expires_in"`
}

// GetAccessToken returns the cached bearer token, exchanging credentials when
// the cache is empty or past its refresh watermark.
func (c *Client) GetAccessToken(ctx context.Context) (string, error) {
	c.tokens.mu.Lock()
	defer c.tokens.mu.Unlock()

	if c.tokens.token != "" && c.now().Before(c.tokens.expiresAt) {
		return c.tokens.token, nil
	}

	url := fmt.Sprintf("%s/oauth/v1/generate?grant_type=client_credentials", c.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: token exchange: %v", apperr.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading token response: %v", apperr.ErrGatewayUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: token exchange failed: %s, body: %s", apperr.ErrGatewayUnavailable, resp.Status, string(respBody))
	}

	var tr tokenResponse
	if err := json.Unmarshal(respBody, &tr); err != nil {
		return "", fmt.Errorf("%w: decoding token response: %v", apperr.ErrGatewayUnavailable, err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("%w: token exchange returned empty token", apperr.ErrGatewayUnavailable)
	}

	lifetime := 50 * time.Minute
	if secs, err := time.ParseDuration(tr.ExpiresIn + "s"); err == nil && secs > tokenRefreshWatermark {
		lifetime = secs - tokenRefreshWatermark
	}

	c.tokens.token = tr.AccessToken
	c.tokens.expiresAt = c.now().Add(lifetime)
	return c.tokens.token, nil
}

// credential builds the timestamped hashed credential string the gateway
// requires on push and query calls.
func (c *Client) credential(timestamp string) string {
	raw := c.cfg.ShortCode + c.cfg.Passkey + timestamp
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

type pushRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	TransactionType   string `json:"TransactionType"`
	Amount            string `json:"Amount"`
	PartyA            string `json:"PartyA"`
	PartyB            string `json:"PartyB"`
	PhoneNumber       string `json:"PhoneNumber"`
	CallBackURL       string `json:"CallBackURL"`
	AccountReference  string `json:"AccountReference"`
	TransactionDesc   string `json:"TransactionDesc"`
}

type pushResponse struct {
	MerchantRequestID   string `json:"MerchantRequestID"`
	CheckoutRequestID   string `json:"CheckoutRequestID"`
	ResponseCode        string `json:"ResponseCode"`
	ResponseDescription string `json:"ResponseDescription"`
	CustomerMessage     string `json:"CustomerMessage"`
	ErrorCode           string `json:"errorCode"`
	ErrorMessage        string `json:"errorMessage"`
}

// InitiatePush asks the gateway to prompt the phone for payment. The returned
// CheckoutRequestID is the correlation id later callbacks carry.
func (c *Client) InitiatePush(ctx context.Context, phone string, amount decimal.Decimal, reference, description string) (*PushResult, error) {
	msisdn, err := NormalizePhone(phone)
	if err != nil {
		return nil, err
	}

	if c.cfg.Simulation {
		return c.simulatePush(msisdn, reference)
	}

	timestamp := c.now().Format(timestampLayout)
	body := pushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          c.credential(timestamp),
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            amount.StringFixed(0),
		PartyA:            msisdn,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       msisdn,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  reference,
		TransactionDesc:   description,
	}

	var out pushResponse
	if err := c.post(ctx, "/mpesa/stkpush/v1/processrequest", body, &out); err != nil {
		return nil, err
	}

	if out.ResponseCode != "0" {
		reason := out.ResponseDescription
		if reason == "" {
			reason = out.ErrorMessage
		}
		return nil, fmt.Errorf("%w: code %s: %s", apperr.ErrGatewayRejected, out.ResponseCode, reason)
	}

	return &PushResult{
		MerchantRequestID: out.MerchantRequestID,
		CheckoutRequestID: out.CheckoutRequestID,
		ResponseCode:      out.ResponseCode,
		CustomerMessage:   out.CustomerMessage,
	}, nil
}

type queryRequest struct {
	BusinessShortCode string `json:"BusinessShortCode"`
	Password          string `json:"Password"`
	Timestamp         string `json:"Timestamp"`
	CheckoutRequestID string `json:"CheckoutRequestID"`
}

type queryResponse struct {
	ResponseCode string `json:"ResponseCode"`
	ResultCode   string `json:"ResultCode"`
	ResultDesc   string `json:"ResultDesc"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
}

// stillProcessingCode is returned by the gateway while a push has not resolved.
const stillProcessingCode = "500.001.1001"

// QueryStatus polls the gateway for the outcome of a push. Used by the sweep
// when no callback arrived within the wait window.
func (c *Client) QueryStatus(ctx context.Context, checkoutRequestID string) (*StatusResult, error) {
	if c.cfg.Simulation {
		return &StatusResult{Succeeded: true, ResultCode: "0"}, nil
	}

	timestamp := c.now().Format(timestampLayout)
	body := queryRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          c.credential(timestamp),
		Timestamp:         timestamp,
		CheckoutRequestID: checkoutRequestID,
	}

	var out queryResponse
	if err := c.post(ctx, "/mpesa/stkpushquery/v1/query", body, &out); err != nil {
		if out.ErrorCode == stillProcessingCode {
			return &StatusResult{Pending: true}, nil
		}
		return nil, err
	}

	if out.ResultCode == "0" {
		return &StatusResult{Succeeded: true, ResultCode: out.ResultCode}, nil
	}

	return &StatusResult{
		Succeeded:     false,
		ResultCode:    out.ResultCode,
		FailureReason: out.ResultDesc,
	}, nil
}

// post issues an authenticated JSON call and decodes the response body into
// out even on non-2xx so callers can inspect gateway error codes.
func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	token, err := c.GetAccessToken(ctx)
	if err != nil {
		return err
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", apperr.ErrGatewayUnavailable, err)
	}

	if len(respBody) > 0 {
		// decoded best-effort; gateway error bodies share field names
		_ = json.Unmarshal(respBody, out)
	}

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: %s: %s", apperr.ErrGatewayUnavailable, resp.Status, string(respBody))
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("%w: %s: %s", apperr.ErrGatewayRejected, resp.Status, string(respBody))
	}

	return nil
}

func (c *Client) simulatePush(msisdn, reference string) (*PushResult, error) {
	id := uuid.New().String()
	logrus.WithFields(logrus.Fields{
		"phone":     msisdn,
		"reference": reference,
	}).Warn("gateway simulation mode: returning synthetic push acceptance")

	return &PushResult{
		MerchantRequestID: "SIM-" + id,
		CheckoutRequestID: "ws_CO_SIM_" + id,
		ResponseCode:      "0",
		CustomerMessage:   "Simulated request accepted for processing",
	}, nil
}

// NormalizePhone converts local formats (07XX..., +2547XX...) into the
// canonical 2547XXXXXXXX form the gateway expects.
func NormalizePhone(phone string) (string, error) {
	p := strings.TrimSpace(phone)
	p = strings.TrimPrefix(p, "+")
	p = strings.ReplaceAll(p, " ", "")

	switch {
	case strings.HasPrefix(p, "254") && len(p) == 12:
	case strings.HasPrefix(p, "0") && len(p) == 10:
		p = "254" + p[1:]
	case (strings.HasPrefix(p, "7") || strings.HasPrefix(p, "1")) && len(p) == 9:
		p = "254" + p
	default:
		return "", fmt.Errorf("%w: unrecognized phone number format: %s", apperr.ErrValidation, phone)
	}

	for _, r := range p {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: phone number must be digits only", apperr.ErrValidation)
		}
	}

	return p, nil
}
