package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"sscs-bulk-scan/internal/domain"
	"sscs-bulk-scan/pkg/requestcontext"
)

// Token extracts the credential bundle the case store expects: the user
// token, the service-to-service token, and the user id. The bundle is
// passed through opaquely; when the user-id header is absent it is
// recovered from the user token's claims without verifying the signature,
// since verification belongs to the identity provider.
func Token(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := domain.Token{
			UserAuthToken:    r.Header.Get("Authorization"),
			ServiceAuthToken: r.Header.Get("ServiceAuthorization"),
			UserID:           r.Header.Get("user-id"),
		}

		if token.UserID == "" && token.UserAuthToken != "" {
			token.UserID = subjectOf(token.UserAuthToken)
		}

		ctx := requestcontext.WithToken(r.Context(), token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func subjectOf(bearer string) string {
	raw := bearer
	if len(raw) > 7 && raw[:7] == "Bearer " {
		raw = raw[7:]
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(raw, jwt.MapClaims{})
	if err != nil {
		return ""
	}
	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return ""
	}
	return subject
}
