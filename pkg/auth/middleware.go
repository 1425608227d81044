package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/tienda/pkg/utils"
)

type ContextKey string

const TenantIDKey ContextKey = "tenantID"

// Middleware admits requests carrying a valid tenant bearer token and puts
// the tenant id into the request context under TenantIDKey.
func Middleware(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), TenantIDKey, claims.TenantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TenantID reads the id stored by Middleware.
func TenantID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(TenantIDKey).(int)
	return id, ok
}
