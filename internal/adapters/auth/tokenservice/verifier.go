package tokenservice

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"clinic-manager/internal/platform/httpclient"
	"clinic-manager/internal/ports/auth"
)

var (
	ErrNotConfigured = errors.New("token service not configured")
	ErrUnauthorized  = errors.New("token service unauthorized")
	ErrUpstream      = errors.New("token service upstream error")
)

// Config del verificador remoto. BaseURL y APIKey vienen de env vars; si
// faltan, el servicio corre en modo dev sin verifier.
type Config struct {
	BaseURL string
	APIKey  string

	// Header para la API key; por defecto "X-Api-Key".
	APIKeyHeader string

	Timeout time.Duration
}

// Verifier implementa auth.AuthVerifier contra el servicio de identidad de
// la clínica (staff y veterinarios comparten el mismo emisor de tokens).
type Verifier struct {
	http         *httpclient.Client
	apiKey       string
	apiKeyHeader string
}

func NewVerifier(cfg Config) *Verifier {
	h := strings.TrimSpace(cfg.APIKeyHeader)
	if h == "" {
		h = "X-Api-Key"
	}
	return &Verifier{
		http:         httpclient.New(cfg.BaseURL, cfg.Timeout),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		apiKeyHeader: h,
	}
}

func (v *Verifier) IsConfigured() bool {
	return v != nil && v.http != nil && v.http.BaseURL != "" && v.apiKey != ""
}

// Verify valida el token contra el servicio de identidad y trae los claims.
func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if !v.IsConfigured() {
		return auth.Claims{}, ErrNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrUnauthorized
	}

	var out struct {
		UserID string `json:"user_id"`
		Email  string `json:"email"`
		Role   string `json:"role"`
	}

	err := v.http.DoJSON(ctx, http.MethodPost, "/v1/tokens/verify",
		map[string]string{
			v.apiKeyHeader:  v.apiKey,
			"Authorization": "Bearer " + token,
		},
		map[string]string{"token": token},
		&out,
	)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden {
				return auth.Claims{}, ErrUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	claims := auth.Claims{
		UserID: strings.TrimSpace(out.UserID),
		Email:  strings.TrimSpace(out.Email),
		Role:   strings.TrimSpace(out.Role),
	}
	if claims.UserID == "" {
		return auth.Claims{}, fmt.Errorf("%w: claims missing user id", ErrUpstream)
	}
	return claims, nil
}
