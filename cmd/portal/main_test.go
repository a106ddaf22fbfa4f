package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"xrpl-payment-portal/config"
	"xrpl-payment-portal/internal/platformtest"
	"xrpl-payment-portal/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cmdResult struct {
	out    string
	errOut string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) cmdResult {
	t.Helper()
	var out, errOut bytes.Buffer

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := run(ctx, root)
	return cmdResult{out: out.String(), errOut: errOut.String(), err: err}
}

// userLines returns the stderr lines that are not JSON log records.
func (r cmdResult) userLines() []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(r.errOut), "\n") {
		if line != "" && !json.Valid([]byte(line)) {
			lines = append(lines, line)
		}
	}
	return lines
}

func payArgs(t *testing.T, backend *platformtest.Backend, extra ...string) []string {
	qrPath := filepath.Join(t.TempDir(), "qr.png")
	args := []string{"pay", "--base-url", backend.URL(), "--poll-interval", "10ms", "--qr-path", qrPath, "--no-color"}
	return append(args, extra...)
}

func TestPay_Signed(t *testing.T) {
	backend := platformtest.New(t)
	backend.QueueStatus("abc-123", platformtest.Pending(), platformtest.Signed())

	res := execute(t, "", payArgs(t, backend)...)
	require.NoError(t, res.err, res.errOut)

	assert.Contains(t, res.out, "Scan the QR code saved to")
	assert.Contains(t, res.out, "Waiting for payment abc-123...")
	assert.Contains(t, res.out, "Success! Payment has been signed.")
	assert.Equal(t, 2, backend.StatusCalls("abc-123"))
}

func TestPay_Rejected(t *testing.T) {
	backend := platformtest.New(t)
	backend.QueueStatus("abc-123", platformtest.Rejected())

	res := execute(t, "", payArgs(t, backend)...)
	require.ErrorIs(t, res.err, errNotSigned)
	assert.Contains(t, res.out, "Payment was rejected by the user.")
}

func TestPay_InitiateFails(t *testing.T) {
	backend := platformtest.New(t)
	backend.QueueInitiate(platformtest.Status(http.StatusInternalServerError))

	res := execute(t, "", payArgs(t, backend)...)
	require.Error(t, res.err)
	assert.Contains(t, res.out, "An error occurred. Please try again.")
	assert.Zero(t, len(backend.Requests(platformtest.StatusPrefix+"abc-123/")))
}

func TestPay_SendsAmount(t *testing.T) {
	backend := platformtest.New(t)
	backend.QueueStatus("abc-123", platformtest.Signed())

	res := execute(t, "", payArgs(t, backend, "--amount", "2.50", "--currency", "XRP")...)
	require.NoError(t, res.err, res.errOut)

	initiates := backend.Requests(platformtest.InitiatePath)
	require.Len(t, initiates, 1)
	assert.JSONEq(t, `{"amount":"2.5","currency":"XRP"}`, string(initiates[0].Body))
}

func TestPay_RejectsBadAmount(t *testing.T) {
	backend := platformtest.New(t)

	res := execute(t, "", payArgs(t, backend, "--amount", "-1")...)
	require.Error(t, res.err)
	assert.Empty(t, backend.Requests(platformtest.InitiatePath))
}

func TestInitiateRequest(t *testing.T) {
	req, err := initiateRequest(config.PaymentConfig{})
	require.NoError(t, err)
	assert.Nil(t, req.Amount)

	req, err = initiateRequest(config.PaymentConfig{Amount: "10", Currency: "XRP"})
	require.NoError(t, err)
	assert.True(t, req.Amount.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, "XRP", req.Currency)

	_, err = initiateRequest(config.PaymentConfig{Amount: "ten"})
	assert.Error(t, err)

	_, err = initiateRequest(config.PaymentConfig{Amount: "0"})
	assert.Error(t, err)
}

func TestLogin_Success(t *testing.T) {
	backend := platformtest.New(t)
	key := strings.TrimSpace(strings.Repeat("abandon ", 24))

	res := execute(t, key+"\n", "login", "--base-url", backend.URL(), "--no-color")
	require.NoError(t, res.err, res.errOut)
	assert.Contains(t, res.out, "Accessing...")
	assert.Contains(t, res.out, "Success!")

	logins := backend.Requests(platformtest.LoginPath)
	require.Len(t, logins, 1)
	assert.JSONEq(t, `{"secret_key":"`+key+`"}`, string(logins[0].Body))
}

func TestLogin_WrongWordCount(t *testing.T) {
	backend := platformtest.New(t)

	res := execute(t, "one two three", "login", "--base-url", backend.URL(), "--no-color")
	require.Error(t, res.err)
	assert.Contains(t, res.out, "Please enter your 24-word key. You entered 3.")
	assert.Empty(t, backend.Requests(platformtest.LoginPath))
}

func TestLogin_ServerRejects(t *testing.T) {
	backend := platformtest.New(t)
	backend.SetLogin(platformtest.Status(http.StatusBadRequest))

	res := execute(t, strings.Repeat("word ", 24), "login", "--base-url", backend.URL(), "--no-color")
	require.Error(t, res.err)
	assert.Contains(t, res.out, "Login failed. Please try again.")
}

func TestProbe(t *testing.T) {
	backend := platformtest.New(t)
	backend.SetData(platformtest.JSON(gin.H{"name": "My API"}))

	res := execute(t, "", "probe", "--base-url", backend.URL())
	require.NoError(t, res.err, res.errOut)
	assert.Empty(t, res.out, "probe has no UI effect")
	assert.Contains(t, res.errOut, "Data probe succeeded")
}

func TestHealth(t *testing.T) {
	backend := platformtest.New(t)

	res := execute(t, "", "health", "--base-url", backend.URL())
	require.NoError(t, res.err, res.errOut)
	assert.Contains(t, res.out, `"status": "healthy"`)
	assert.Contains(t, res.out, `"platform"`)
}

func TestHealth_Degraded(t *testing.T) {
	backend := platformtest.New(t)
	backend.SetData(platformtest.Status(http.StatusServiceUnavailable))

	res := execute(t, "", "health", "--base-url", backend.URL())
	require.ErrorIs(t, res.err, errDegraded)
	assert.Contains(t, res.out, `"status": "degraded"`)
}

func TestHistory_NeedsDatabase(t *testing.T) {
	res := execute(t, "", "history", "abc-123")
	require.ErrorIs(t, res.err, errDatabaseDisabled)
}

func TestConfigFileFlag(t *testing.T) {
	backend := platformtest.New(t)
	cfgPath := filepath.Join(t.TempDir(), "portal.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("platform:\n  base_url: \""+backend.URL()+"\"\n"), 0o644))

	res := execute(t, "", "probe", "--config", cfgPath)
	require.NoError(t, res.err, res.errOut)
	assert.Len(t, backend.Requests(platformtest.DataPath), 1)
}

const unreachableURL = "http://127.0.0.1:1"

func TestPay_UnreachablePlatformShowsOnlyCatalogueMessage(t *testing.T) {
	qrPath := filepath.Join(t.TempDir(), "qr.png")

	res := execute(t, "", "pay", "--base-url", unreachableURL, "--qr-path", qrPath, "--no-color")
	require.Error(t, res.err)
	assert.Equal(t, apperror.KindNetwork, apperror.KindOf(res.err))

	assert.Contains(t, res.out, "An error occurred. Please try again.")
	assert.NotContains(t, res.out, "dial tcp")
	assert.Empty(t, res.userLines(), "surface already showed the message")
	assert.Contains(t, res.errOut, "Payment initiate failed", "detail goes to the log")
}

func TestProbe_UnreachablePlatformHidesDetail(t *testing.T) {
	res := execute(t, "", "probe", "--base-url", unreachableURL)
	require.Error(t, res.err)

	lines := res.userLines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "Error: "), lines[0])
	assert.NotContains(t, lines[0], "dial tcp")
	assert.NotContains(t, lines[0], "[NET_001]")
}

func TestPay_RejectedPrintsNothingExtra(t *testing.T) {
	backend := platformtest.New(t)
	backend.QueueStatus("abc-123", platformtest.Rejected())

	res := execute(t, "", payArgs(t, backend)...)
	require.ErrorIs(t, res.err, errNotSigned)
	assert.Empty(t, res.userLines())
}

func TestPay_ConcurrentLogsStayWhole(t *testing.T) {
	backend := platformtest.New(t)
	backend.QueueStatus("abc-123",
		platformtest.Pending(), platformtest.Pending(), platformtest.Pending(), platformtest.Signed())

	res := execute(t, "", payArgs(t, backend, "--log-level", "debug")...)
	require.NoError(t, res.err, res.errOut)

	assert.Empty(t, res.userLines(), "every stderr line is a whole log record")
	assert.Contains(t, res.errOut, `"message":"flow event"`)
	assert.Contains(t, res.errOut, `"message":"Payment still pending"`)
	assert.Equal(t, 1, strings.Count(res.out, "Waiting for payment abc-123..."))
}

func TestUserMessage(t *testing.T) {
	netErr := apperror.ErrNetwork(errors.New("dial tcp 127.0.0.1:1: connect: connection refused"))

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"network detail hidden", netErr, "Error: Network request failed"},
		{"wrapped app error", fmt.Errorf("probe: %w", netErr), "Error: Network request failed"},
		{"validation shown bare", apperror.ErrSecretKeyWordCount(24, 3), "Please enter your 24-word key. You entered 3."},
		{"already surfaced", surfaced(netErr), ""},
		{"surfaced sentinel", surfaced(errNotSigned), ""},
		{"plain error", errDatabaseDisabled, "Error: the flow journal needs database.enabled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, userMessage(tt.err))
		})
	}
}
