// Package platformtest provides a scripted stand-in for the platform web API,
// in the spirit of net/http/httptest.
package platformtest

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"xrpl-payment-portal/config"

	"github.com/gin-gonic/gin"
)

// Default route layout of the platform.
const (
	CSRFPagePath = "/payment/"
	InitiatePath = "/api/v1/payments/initiate/"
	StatusPrefix = "/api/v1/payments/status/"
	LoginPath    = "/api/key-login/"
	DataPath     = "/api/data/"

	CSRFCookie = "csrftoken"
	CSRFHeader = "X-CSRFToken"
)

// RawBody is written verbatim instead of being JSON-encoded.
type RawBody string

// Response is one scripted answer.
type Response struct {
	Status int
	Body   any // nil = empty body, RawBody = verbatim, anything else = JSON
}

// JSON is a 200 response with a JSON body.
func JSON(body any) Response {
	return Response{Status: http.StatusOK, Body: body}
}

// Status is an empty response with the given status code.
func Status(code int) Response {
	return Response{Status: code}
}

// Pending, Signed and Rejected are the three shapes of the status endpoint.
func Pending() Response  { return JSON(gin.H{"resolved": false}) }
func Signed() Response   { return JSON(gin.H{"resolved": true, "signed": true}) }
func Rejected() Response { return JSON(gin.H{"resolved": true, "signed": false}) }

// Recorded is a request the backend received.
type Recorded struct {
	Method string
	Path   string
	Header http.Header
	Body   []byte
}

// Backend is a scripted platform server.
type Backend struct {
	server *httptest.Server

	mu          sync.Mutex
	csrfToken   string
	requireCSRF bool
	initiate    []Response
	status      map[string][]Response
	login       Response
	data        Response
	requests    []Recorded
}

// New starts a backend and stops it when t finishes.
func New(t testing.TB) *Backend {
	t.Helper()
	gin.SetMode(gin.TestMode)

	b := &Backend{
		csrfToken:   "test-csrf-token",
		requireCSRF: true,
		status:      make(map[string][]Response),
		login:       JSON(gin.H{"status": "success", "message": "Key received and printed to console."}),
		data:        JSON(gin.H{"name": "My API", "version": "1.0", "data": []int{1, 2, 3, 4}}),
	}

	r := gin.New()
	r.Use(b.record)
	r.GET(CSRFPagePath, b.handleCSRFPage)
	r.POST(InitiatePath, b.requireToken, b.handleInitiate)
	r.GET(StatusPrefix+":uuid/", b.handleStatus)
	r.POST(LoginPath, b.handleLogin)
	r.GET(DataPath, b.handleData)

	b.server = httptest.NewServer(r)
	t.Cleanup(b.server.Close)
	return b
}

// URL is the base URL of the backend.
func (b *Backend) URL() string {
	return b.server.URL
}

// PlatformConfig points a platform client at the backend.
func (b *Backend) PlatformConfig() config.PlatformConfig {
	return config.PlatformConfig{
		BaseURL:           b.server.URL,
		InitiatePath:      InitiatePath,
		StatusPath:        StatusPrefix + "%s/",
		LoginPath:         LoginPath,
		DataPath:          DataPath,
		CSRFBootstrapPath: CSRFPagePath,
		CSRFCookie:        CSRFCookie,
		CSRFHeader:        CSRFHeader,
	}
}

// CSRFToken is the token the CSRF page hands out.
func (b *Backend) CSRFToken() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.csrfToken
}

// RequireCSRF toggles the 403 on initiate calls without a matching token.
func (b *Backend) RequireCSRF(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requireCSRF = on
}

// QueueInitiate appends answers for initiate calls. The last one repeats.
func (b *Backend) QueueInitiate(resps ...Response) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.initiate = append(b.initiate, resps...)
}

// QueueStatus appends answers for status calls of uuid. The last one repeats.
func (b *Backend) QueueStatus(uuid string, resps ...Response) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status[uuid] = append(b.status[uuid], resps...)
}

// SetLogin sets the answer of the key login endpoint.
func (b *Backend) SetLogin(resp Response) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.login = resp
}

// SetData sets the answer of the data endpoint.
func (b *Backend) SetData(resp Response) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = resp
}

// Requests returns the recorded requests for path, in arrival order.
func (b *Backend) Requests(path string) []Recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Recorded
	for _, r := range b.requests {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// StatusCalls counts status calls for uuid.
func (b *Backend) StatusCalls(uuid string) int {
	return len(b.Requests(StatusPrefix + uuid + "/"))
}

func (b *Backend) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	b.mu.Lock()
	b.requests = append(b.requests, Recorded{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	b.mu.Unlock()
	c.Next()
}

func (b *Backend) handleCSRFPage(c *gin.Context) {
	c.SetCookie(CSRFCookie, b.CSRFToken(), 3600, "/", "", false, false)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<html><body>payment</body></html>"))
}

func (b *Backend) requireToken(c *gin.Context) {
	b.mu.Lock()
	required, token := b.requireCSRF, b.csrfToken
	b.mu.Unlock()

	if required && c.GetHeader(CSRFHeader) != token {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "CSRF verification failed."})
		return
	}
	c.Next()
}

func (b *Backend) handleInitiate(c *gin.Context) {
	b.mu.Lock()
	resp := next(&b.initiate, JSON(gin.H{"qr_png": "data:image/png;base64,iVBORw0KGgo=", "uuid": "abc-123"}))
	b.mu.Unlock()
	write(c, resp)
}

func (b *Backend) handleStatus(c *gin.Context) {
	uuid := c.Param("uuid")
	b.mu.Lock()
	queue := b.status[uuid]
	resp := next(&queue, Status(http.StatusNotFound))
	b.status[uuid] = queue
	b.mu.Unlock()
	write(c, resp)
}

func (b *Backend) handleLogin(c *gin.Context) {
	var req struct {
		SecretKey string `json:"secret_key"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid JSON format"})
		return
	}
	if req.SecretKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "No 'secret_key' provided"})
		return
	}
	b.mu.Lock()
	resp := b.login
	b.mu.Unlock()
	write(c, resp)
}

func (b *Backend) handleData(c *gin.Context) {
	b.mu.Lock()
	resp := b.data
	b.mu.Unlock()
	write(c, resp)
}

// next pops the head of queue, keeping the last element so it repeats.
func next(queue *[]Response, fallback Response) Response {
	q := *queue
	switch len(q) {
	case 0:
		return fallback
	case 1:
		return q[0]
	default:
		*queue = q[1:]
		return q[0]
	}
}

func write(c *gin.Context, resp Response) {
	switch body := resp.Body.(type) {
	case nil:
		c.Status(resp.Status)
	case RawBody:
		c.Data(resp.Status, "application/json", []byte(body))
	default:
		c.JSON(resp.Status, body)
	}
}
