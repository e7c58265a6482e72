package auth

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"loadhive/internal/entities"
	"loadhive/pkg/logger"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidRole  = errors.New("token carries no usable role")
)

// Claims of the access token. user_role holds the profile role; the standard
// role claim is left to the identity provider.
type Claims struct {
	UserRole string `json:"user_role"`
	jwt.RegisteredClaims
}

func Middleware(log handlerLogger, secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, err := Authenticate(r.Header.Get("Authorization"), secret)
			if err != nil {
				log.Warn("unauthorized request",
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				if _, err := w.Write([]byte(`{"error":"Unauthorized"}`)); err != nil {
					log.Error("failed to write unauthorized response", logger.NewField("error", err))
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(WithCaller(r.Context(), caller)))
		})
	}
}

// Authenticate validates an "Authorization: Bearer <jwt>" header value signed with HS256.
func Authenticate(header string, secret []byte) (entities.Caller, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || strings.TrimSpace(raw) == "" {
		return entities.Caller{}, ErrMissingToken
	}

	var claims Claims
	_, err := jwt.ParseWithClaims(strings.TrimSpace(raw), &claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return entities.Caller{}, fmt.Errorf("parse token: %w", err)
	}

	if claims.Subject == "" {
		return entities.Caller{}, errors.New("token has no subject")
	}

	role := entities.Role(claims.UserRole)
	switch role {
	case entities.RoleShipper, entities.RoleCarrier, entities.RoleAdmin:
	default:
		return entities.Caller{}, fmt.Errorf("%w: %q", ErrInvalidRole, claims.UserRole)
	}

	return entities.Caller{UserID: claims.Subject, Role: role}, nil
}
