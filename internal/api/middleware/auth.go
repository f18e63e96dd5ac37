package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fsnd-projects/fsnd-api/internal/api/handler/v1/response"
	"github.com/fsnd-projects/fsnd-api/internal/pkg/jwthelper"
)

const (
	ClaimsKey = "claims"
	UserIDKey = "userID"
)

// AuthError is an authorization failure with a machine readable code.
type AuthError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

func renderAuthErr(ctx *gin.Context, e *AuthError) {
	response.RenderErr(ctx, response.ErrAuth(e.StatusCode, e.Code, e.Description))
}

type Authenticator struct {
	signingKey []byte
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: []byte(signingKey),
	}
}

// VerifyJWT rejects requests without a valid bearer token and stores the
// token claims in the context.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token, authErr := bearerToken(ctx.GetHeader("Authorization"))
		if authErr != nil {
			renderAuthErr(ctx, authErr)
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, token)
		if err != nil {
			renderAuthErr(ctx, tokenError(err))
			return
		}

		ctx.Set(ClaimsKey, claims)
		ctx.Set(UserIDKey, claims.UserID)
		ctx.Next()
	}
}

// RequirePermission must run after VerifyJWT.
func RequirePermission(permission string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, ok := ClaimsFromContext(ctx)
		if !ok || claims.Permissions == nil {
			renderAuthErr(ctx, &AuthError{
				StatusCode:  http.StatusBadRequest,
				Code:        "invalid_claims",
				Description: "Permissions not included in JWT.",
			})
			return
		}

		if !claims.HasPermission(permission) {
			renderAuthErr(ctx, &AuthError{
				StatusCode:  http.StatusForbidden,
				Code:        "unauthorized",
				Description: "Permission not found.",
			})
			return
		}

		ctx.Next()
	}
}

func ClaimsFromContext(ctx *gin.Context) (*jwthelper.Claims, bool) {
	v, ok := ctx.Get(ClaimsKey)
	if !ok {
		return nil, false
	}

	claims, ok := v.(*jwthelper.Claims)
	return claims, ok
}

func bearerToken(header string) (string, *AuthError) {
	parts := strings.Fields(header)
	if len(parts) == 0 {
		return "", &AuthError{
			StatusCode:  http.StatusUnauthorized,
			Code:        "authorization_header_missing",
			Description: "Authorization header is expected.",
		}
	}

	switch {
	case !strings.EqualFold(parts[0], "bearer"):
		return "", &AuthError{
			StatusCode:  http.StatusUnauthorized,
			Code:        "invalid_header",
			Description: `Authorization header must start with "Bearer".`,
		}
	case len(parts) == 1:
		return "", &AuthError{
			StatusCode:  http.StatusUnauthorized,
			Code:        "invalid_header",
			Description: "Token not found.",
		}
	case len(parts) > 2:
		return "", &AuthError{
			StatusCode:  http.StatusUnauthorized,
			Code:        "invalid_header",
			Description: "Authorization header must be bearer token.",
		}
	}

	return parts[1], nil
}

func tokenError(err error) *AuthError {
	switch {
	case errors.Is(err, jwthelper.ErrTokenExpired):
		return &AuthError{StatusCode: http.StatusUnauthorized, Code: "token_expired", Description: "Token expired."}
	case errors.Is(err, jwthelper.ErrTokenMalformed):
		return &AuthError{StatusCode: http.StatusUnauthorized, Code: "invalid_header", Description: "Unable to parse authentication token."}
	default:
		return &AuthError{StatusCode: http.StatusUnauthorized, Code: "invalid_token", Description: "Unable to verify authentication token."}
	}
}
