package v1handler

import (
	"context"
	"coursesearch/internal/api/specs/v1specs"
	"coursesearch/internal/config"
	"coursesearch/pkg/logger"
	"coursesearch/pkg/serrors"
	"crypto/rsa"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key tokens are verified with. When it
	// is empty, authentication is disabled.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

type ctxKey string

// SubjectKey is the context key under which the authenticated token subject is stored.
const SubjectKey ctxKey = "subject"

// SecHandler verifies RS256 bearer tokens.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	if opts == nil || opts.PublicKey == "" {
		return &SecHandler{}, nil
	}

	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// Enabled reports whether requests must carry a valid token.
func (s *SecHandler) Enabled() bool {
	return s.publicKey != nil
}

// AnonymousSubject is the subject of requests served while authentication is disabled.
const AnonymousSubject = "anonymous"

// Ensure SecHandler implements v1specs.SecurityHandler.
var _ v1specs.SecurityHandler = (*SecHandler)(nil)

// HandleBearerAuth validates the token and stores its subject in the returned context.
func (s *SecHandler) HandleBearerAuth(
	ctx context.Context,
	operationName v1specs.OperationName,
	t v1specs.BearerAuth) (context.Context, error) {
	if !s.Enabled() {
		return context.WithValue(ctx, SubjectKey, AnonymousSubject), nil
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(t.Token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}
	if claims.Subject == "" {
		return ctx, serrors.With(serrors.ErrUnauthorized, "token has no subject")
	}

	ctx = context.WithValue(ctx, SubjectKey, claims.Subject)

	return logger.WithFields(ctx, zap.String("subject", claims.Subject), zap.String("operation", string(operationName))), nil
}

// AllowAnonymous lets requests without a bearer token through while
// authentication is disabled. The generated server requires the header, so
// a placeholder token is filled in.
func (s *SecHandler) AllowAnonymous(next http.Handler) http.Handler {
	if s.Enabled() {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			r = r.Clone(r.Context())
			r.Header.Set("Authorization", "Bearer "+AnonymousSubject)
		}
		next.ServeHTTP(w, r)
	})
}
