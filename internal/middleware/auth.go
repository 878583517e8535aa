package middleware

import (
	"context"
	"net/http"
	"strings"

	"devsa-hub/backend/internal/authctx"
	"devsa-hub/backend/internal/domain/principal"

	"firebase.google.com/go/v4/auth"
)

type ctxKey string

const authUserKey ctxKey = "authUser"

type AuthUser struct {
	UID    string
	Email  string
	Claims map[string]any
}

// WithAuth verifies the Firebase ID token and stashes the caller's identity.
func WithAuth(authClient *auth.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := r.Header.Get("Authorization")
			if h == "" || !strings.HasPrefix(strings.ToLower(h), "bearer ") {
				http.Error(w, "missing Authorization: Bearer <token>", http.StatusUnauthorized)
				return
			}
			idToken := strings.TrimSpace(h[len("Bearer "):])

			tok, err := authClient.VerifyIDToken(r.Context(), idToken)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			au := &AuthUser{
				UID:    tok.UID,
				Claims: tok.Claims,
			}
			if v, ok := tok.Claims["email"].(string); ok {
				au.Email = v
			}

			ctx := context.WithValue(r.Context(), authUserKey, au)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetAuthUser(ctx context.Context) (*AuthUser, bool) {
	v := ctx.Value(authUserKey)
	if v == nil {
		return nil, false
	}
	au, ok := v.(*AuthUser)
	return au, ok
}

// WithPrincipal resolves the verified email against the admins allow-list and
// puts the policy actor on the context. Unknown emails resolve to anonymous;
// the policy layer then shows them nothing rather than failing the request.
func WithPrincipal(svc *principal.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			au, ok := GetAuthUser(r.Context())
			if !ok {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			actor, _, err := svc.ResolveActor(r.Context(), au.Email)
			if err != nil {
				http.Error(w, "failed to resolve access", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(authctx.WithActor(r.Context(), actor)))
		})
	}
}
