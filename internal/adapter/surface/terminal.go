// Package surface renders the payment and login flows on a terminal.
package surface

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"xrpl-payment-portal/config"
	"xrpl-payment-portal/internal/core/domain"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

var errNotDataURI = errors.New("not a base64 data URI")

// Terminal implements ports.Surface on a writer. Data URI QR payloads are
// written to an image file; URL payloads are printed as is.
type Terminal struct {
	out    io.Writer
	qrPath string
	log    zerolog.Logger

	mu      sync.Mutex
	green   *color.Color
	red     *color.Color
	faint   *color.Color
	written bool // qrPath holds the current QR image
}

// NewTerminal creates a terminal surface.
func NewTerminal(out io.Writer, cfg config.UIConfig, log zerolog.Logger) *Terminal {
	return &Terminal{
		out:    out,
		qrPath: cfg.QRPath,
		log:    log,
		green:  tone(color.FgGreen, cfg.Color),
		red:    tone(color.FgRed, cfg.Color),
		faint:  tone(color.Faint, cfg.Color),
	}
}

func tone(attr color.Attribute, enabled bool) *color.Color {
	c := color.New(attr)
	if !enabled {
		c.DisableColor()
	}
	return c
}

// ShowQR renders the QR payload.
func (t *Terminal) ShowQR(imageData string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	img, err := decodeDataURI(imageData)
	if errors.Is(err, errNotDataURI) {
		fmt.Fprintf(t.out, "Scan the QR code at %s\n", imageData)
		return
	}
	if err != nil {
		t.log.Error().Err(err).Msg("Decoding QR payload failed")
		t.red.Fprintln(t.out, domain.MessageQRUnavailable.Text)
		return
	}
	if err := os.WriteFile(t.qrPath, img, 0o644); err != nil {
		t.log.Error().Err(err).Str("path", t.qrPath).Msg("Writing QR image failed")
		t.red.Fprintln(t.out, domain.MessageQRUnavailable.Text)
		return
	}
	t.written = true
	fmt.Fprintf(t.out, "Scan the QR code saved to %s\n", t.qrPath)
}

// HideQR removes the QR image written by ShowQR.
func (t *Terminal) HideQR() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.written {
		return
	}
	t.written = false
	if err := os.Remove(t.qrPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		t.log.Warn().Err(err).Str("path", t.qrPath).Msg("Removing QR image failed")
	}
}

// SetMessage prints msg in its tone. The empty message prints nothing.
func (t *Terminal) SetMessage(msg domain.Message) {
	if msg.IsEmpty() {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	switch msg.Tone {
	case domain.ToneSuccess:
		t.green.Fprintln(t.out, msg.Text)
	case domain.ToneFailure:
		t.red.Fprintln(t.out, msg.Text)
	default:
		fmt.Fprintln(t.out, msg.Text)
	}
}

// SetLoading prints a progress line when loading starts.
func (t *Terminal) SetLoading(visible bool) {
	if !visible {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.faint.Fprintln(t.out, "Requesting payment...")
}

// Notice prints a plain status line.
func (t *Terminal) Notice(text string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, text)
}

// SetButtonEnabled has no terminal rendition.
func (t *Terminal) SetButtonEnabled(enabled bool) {
	t.log.Debug().Bool("enabled", enabled).Msg("Trigger state")
}

// decodeDataURI decodes a "data:<mime>;base64,<payload>" URI.
func decodeDataURI(s string) ([]byte, error) {
	rest, ok := strings.CutPrefix(s, "data:")
	if !ok {
		return nil, errNotDataURI
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasSuffix(meta, ";base64") {
		return nil, fmt.Errorf("unsupported data URI header %q", meta)
	}
	return base64.StdEncoding.DecodeString(payload)
}

// Login implements ports.LoginSurface on a writer.
type Login struct {
	out io.Writer
	red *color.Color
	mu  sync.Mutex
}

// NewLogin creates a login surface.
func NewLogin(out io.Writer, cfg config.UIConfig) *Login {
	return &Login{out: out, red: tone(color.FgRed, cfg.Color)}
}

// ShowError prints message in red. The empty message prints nothing.
func (l *Login) ShowError(message string) {
	if message == "" {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.red.Fprintln(l.out, message)
}

// SetButton prints the button label while the form is busy or done.
func (l *Login) SetButton(label string, enabled bool) {
	if enabled {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.out, label)
}
