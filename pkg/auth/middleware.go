package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/GlebRadaev/suilottery/internal/domain"
	"github.com/GlebRadaev/suilottery/pkg/utils"
)

type ContextKey string

const AddressKey ContextKey = "address"

// Session reports the wallet address currently connected, empty when none is.
type Session interface {
	Address() string
}

// AuthMiddleware admits requests whose bearer token was issued for the
// connected wallet. Disconnecting invalidates every outstanding token.
func AuthMiddleware(tokens JWTServiceInterface, session Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := tokens.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if !domain.SameAddress(claims.Address, session.Address()) {
				utils.RespondWithError(w, http.StatusUnauthorized, "Wallet is not connected")
				return
			}

			ctx := context.WithValue(r.Context(), AddressKey, claims.Address)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AddressFrom(ctx context.Context) string {
	address, _ := ctx.Value(AddressKey).(string)
	return address
}
