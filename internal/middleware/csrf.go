package middleware

import (
	"context"
	"net/http"

	"github.com/itchan-dev/qaboard/internal/csrf"
	"github.com/itchan-dev/qaboard/internal/logger"
)

type contextKey string

const csrfTokenKey contextKey = "csrf_token"

// CSRF implements the double-submit cookie check for HTML forms. Safe
// requests get a token cookie (reused if present) exposed via GetCSRFToken;
// unsafe requests must echo the cookie value in the csrf_token form field.
func CSRF(secureCookies bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var cookieToken string
			if c, err := r.Cookie(csrf.CookieName); err == nil {
				cookieToken = c.Value
			}

			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				if cookieToken == "" {
					token, err := csrf.GenerateToken()
					if err != nil {
						logger.Log.Error("failed to generate csrf token", "error", err)
						http.Error(w, "Internal server error", http.StatusInternalServerError)
						return
					}
					cookieToken = token
					http.SetCookie(w, &http.Cookie{
						Name:     csrf.CookieName,
						Value:    token,
						Path:     "/",
						HttpOnly: true,
						Secure:   secureCookies,
						SameSite: http.SameSiteLaxMode,
					})
				}
			default:
				if !csrf.ValidateToken(cookieToken, r.PostFormValue(csrf.FormField)) {
					logger.Log.Warn("csrf token mismatch", "path", r.URL.Path)
					http.Error(w, "Invalid CSRF token", http.StatusForbidden)
					return
				}
			}

			ctx := context.WithValue(r.Context(), csrfTokenKey, cookieToken)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetCSRFToken(r *http.Request) string {
	token, _ := r.Context().Value(csrfTokenKey).(string)
	return token
}
