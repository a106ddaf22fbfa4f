package ports

import (
	"context"
	"net/http"
	"net/url"

	"xrpl-payment-portal/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories_mock.go -package=mocks

// FlowEventRepository persists the payment flow journal.
type FlowEventRepository interface {
	Create(ctx context.Context, event *domain.FlowEvent) error
	ListByPayment(ctx context.Context, paymentUUID string) ([]domain.FlowEvent, error)
}

// CredentialStore holds the cookies the platform hands out (session, CSRF).
// It plays the part of the browser's cookie jar.
type CredentialStore interface {
	Cookies(ctx context.Context, u *url.URL) ([]*http.Cookie, error)
	SetCookies(ctx context.Context, u *url.URL, cookies []*http.Cookie) error
}
