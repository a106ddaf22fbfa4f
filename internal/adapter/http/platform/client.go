package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"xrpl-payment-portal/config"
	"xrpl-payment-portal/internal/core/domain"
	"xrpl-payment-portal/internal/core/ports"
	"xrpl-payment-portal/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// HeaderRequestID carries a per-call correlation id.
const HeaderRequestID = "X-Request-ID"

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the platform web API the way the browser pages do:
// cookies from the credential store go out on every call, Set-Cookie headers
// come back into it, and state-changing calls echo the CSRF cookie in a header.
type Client struct {
	baseURL    *url.URL
	cfg        config.PlatformConfig
	httpClient HTTPClient
	creds      ports.CredentialStore
	log        zerolog.Logger
}

// NewClient creates a platform client. It fails only on an unusable base URL.
func NewClient(cfg config.PlatformConfig, httpClient HTTPClient, creds ports.CredentialStore, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing platform base url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("platform base url must be http or https, got %q", cfg.BaseURL)
	}
	if httpClient == nil {
		httpClient = NewHTTPClient(cfg.Timeout)
	}
	if creds == nil {
		creds = NewJarStore()
	}
	return &Client{
		baseURL:    base,
		cfg:        cfg,
		httpClient: httpClient,
		creds:      creds,
		log:        log,
	}, nil
}

// NewHTTPClient builds the default transport client. A zero timeout leaves
// calls bounded only by their context.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

type initiateResponse struct {
	QRPNG string `json:"qr_png"`
	UUID  string `json:"uuid"`
}

type statusResponse struct {
	Resolved *bool `json:"resolved"`
	Signed   *bool `json:"signed"`
}

type keyLoginRequest struct {
	SecretKey string `json:"secret_key"`
}

// InitiatePayment implements ports.PaymentGateway.
func (c *Client) InitiatePayment(ctx context.Context, req ports.InitiateRequest) (*domain.PaymentRequest, error) {
	body, err := c.do(ctx, http.MethodPost, c.cfg.InitiatePath, req, true)
	if err != nil {
		return nil, err
	}

	var resp initiateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperror.ErrMalformedBody(err)
	}

	return &domain.PaymentRequest{
		UUID:        resp.UUID,
		QRImageData: resp.QRPNG,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// PaymentStatus implements ports.PaymentGateway.
func (c *Client) PaymentStatus(ctx context.Context, paymentUUID string) (*domain.PaymentStatus, error) {
	body, err := c.do(ctx, http.MethodGet, c.cfg.StatusURLPath(url.PathEscape(paymentUUID)), nil, false)
	if err != nil {
		return nil, err
	}

	var resp statusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperror.ErrMalformedBody(err)
	}
	if resp.Resolved == nil {
		return nil, apperror.ErrMissingFields("resolved")
	}

	status := &domain.PaymentStatus{Resolved: *resp.Resolved}
	if resp.Signed != nil {
		status.Signed = *resp.Signed
	}
	return status, nil
}

// KeyLogin implements ports.KeyLoginGateway.
func (c *Client) KeyLogin(ctx context.Context, secretKey string) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodPost, c.cfg.LoginPath, keyLoginRequest{SecretKey: secretKey}, true)
	if err != nil {
		return nil, err
	}
	return decodeRaw(body)
}

// FetchData implements ports.DataGateway.
func (c *Client) FetchData(ctx context.Context) (json.RawMessage, error) {
	body, err := c.do(ctx, http.MethodGet, c.cfg.DataPath, nil, false)
	if err != nil {
		return nil, err
	}
	return decodeRaw(body)
}

func decodeRaw(body []byte) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, apperror.ErrMalformedBody(err)
	}
	return raw, nil
}

// do performs one call and returns the body of a 2xx response.
// Non-2xx is a server error regardless of body content.
func (c *Client) do(ctx context.Context, method, path string, payload any, withCSRF bool) ([]byte, error) {
	target := c.resolve(path)

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("encoding request body: %w", err))
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), body)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("building request: %w", err))
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, requestID)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if withCSRF {
		token, err := c.csrfToken(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			req.Header.Set(c.cfg.CSRFHeader, token)
		} else {
			c.log.Warn().Str("cookie", c.cfg.CSRFCookie).Str("path", target.Path).Msg("no csrf token available, sending without it")
		}
	}

	cookies, err := c.creds.Cookies(ctx, target)
	if err != nil {
		return nil, apperror.ErrCredentialStore(err)
	}
	for _, ck := range cookies {
		req.AddCookie(ck)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.ErrNetwork(err)
	}
	defer resp.Body.Close()

	if set := resp.Cookies(); len(set) > 0 {
		if err := c.creds.SetCookies(ctx, target, set); err != nil {
			c.log.Warn().Err(err).Str("request_id", requestID).Msg("failed to store response cookies")
		}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperror.ErrNetwork(fmt.Errorf("reading response body: %w", err))
	}

	c.log.Debug().
		Str("method", method).
		Str("path", target.Path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Str("request_id", requestID).
		Msg("platform call")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apperror.ErrServerStatus(resp.StatusCode, statusText(resp))
	}
	return data, nil
}

// csrfToken returns the CSRF cookie value, fetching the bootstrap page once
// when the cookie is not there yet.
func (c *Client) csrfToken(ctx context.Context) (string, error) {
	token, err := c.cookieValue(ctx, c.cfg.CSRFCookie)
	if err != nil || token != "" || c.cfg.CSRFBootstrapPath == "" {
		return token, err
	}

	if _, err := c.do(ctx, http.MethodGet, c.cfg.CSRFBootstrapPath, nil, false); err != nil {
		c.log.Warn().Err(err).Str("path", c.cfg.CSRFBootstrapPath).Msg("csrf bootstrap failed")
	}
	return c.cookieValue(ctx, c.cfg.CSRFCookie)
}

func (c *Client) cookieValue(ctx context.Context, name string) (string, error) {
	cookies, err := c.creds.Cookies(ctx, c.baseURL)
	if err != nil {
		return "", apperror.ErrCredentialStore(err)
	}
	for _, ck := range cookies {
		if ck.Name != name {
			continue
		}
		if v, err := url.PathUnescape(ck.Value); err == nil {
			return v, nil
		}
		return ck.Value, nil
	}
	return "", nil
}

// resolve joins an already-escaped path onto the base URL.
func (c *Client) resolve(escapedPath string) *url.URL {
	u := *c.baseURL
	raw := strings.TrimRight(c.baseURL.EscapedPath(), "/") + "/" + strings.TrimLeft(escapedPath, "/")
	if p, err := url.PathUnescape(raw); err == nil {
		u.Path, u.RawPath = p, raw
	} else {
		u.Path, u.RawPath = raw, ""
	}
	return &u
}

func statusText(resp *http.Response) string {
	if resp.Status != "" {
		return resp.Status
	}
	return fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}
