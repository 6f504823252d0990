package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

// Authorization failures. ErrNoToken and a failed Verify both surface as
// 401; ErrForbidden means the token was fine but the role was not.
var (
	ErrNoToken   = errors.New("missing auth token")
	ErrForbidden = errors.New("insufficient role")
)

// contextKey is the context key type for user claims.
type contextKey string

const userClaimsKey = contextKey("userClaims")

// ClaimsFromContext returns the verified claims attached by RequireRoles.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(*Claims)
	return claims, ok
}

// Authorize verifies the presented token and enforces the required-role set.
// An empty requiredRoles admits any valid token. It is a pure function of
// its inputs and the codec's secret.
func Authorize(codec *Codec, requiredRoles []string, tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, ErrNoToken
	}
	claims, err := codec.Verify(tokenStr)
	if err != nil {
		return nil, err
	}
	if len(requiredRoles) > 0 && !slices.Contains(requiredRoles, claims.Role) {
		return nil, ErrForbidden
	}
	return claims, nil
}

// RequireRoles creates a middleware protecting routes behind the given role
// set. On success the decoded claims are attached to the request context for
// downstream handlers.
func RequireRoles(codec *Codec, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := r.Header.Get("Authorization")
			// Tolerate a Bearer prefix; the original clients send the raw token.
			tokenStr = strings.TrimPrefix(tokenStr, "Bearer ")

			claims, err := Authorize(codec, roles, tokenStr)
			if err != nil {
				if errors.Is(err, ErrForbidden) {
					log.Warn().Strs("required", roles).Msg("Role not permitted")
					writeAuthError(w, http.StatusForbidden, "You do not have permission to perform this action")
					return
				}
				log.Warn().Err(err).Msg("Rejected auth token")
				writeAuthError(w, http.StatusUnauthorized, "You are not authorized")
				return
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"message": message,
	})
}
