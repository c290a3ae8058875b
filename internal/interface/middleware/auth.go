package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/loopers/member-api/internal/domain/member"
	"github.com/loopers/member-api/pkg/apperr"
	"github.com/loopers/member-api/pkg/response"
)

const (
	// LoginIDHeader and LoginPWHeader carry the per-request credentials.
	LoginIDHeader = "X-Loopers-LoginId"
	LoginPWHeader = "X-Loopers-LoginPw"

	apiRoot = "/api/"

	authenticatedMemberKey = "authenticatedMember"
)

// publicPathPrefixes lists path prefixes that bypass authentication.
// Matching is per path segment: a path is public only if it equals a
// prefix or continues it with "/".
var publicPathPrefixes = []string{
	"/api/v1/members/signup",
	"/api/v1/examples",
}

// Authentication resolves the calling member from credential headers on
// every non-public request. Unknown member ids and wrong passwords produce
// an identical 401 response so that member existence cannot be probed.
func Authentication(repo member.Repository, hasher member.PasswordHasher) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isPublicPath(path) || !strings.HasPrefix(path, apiRoot) {
			c.Next()
			return
		}

		loginID := c.GetHeader(LoginIDHeader)
		loginPW := c.GetHeader(LoginPWHeader)
		if loginID == "" || loginPW == "" {
			reject(c, "authentication credentials are required")
			return
		}

		m, err := repo.FindByMemberID(c.Request.Context(), loginID)
		if err != nil {
			// Only an absent member is a credential failure; anything else
			// is an infrastructure problem and must not masquerade as 401.
			if apperr.IsNotFound(err) {
				reject(c, "authentication failed")
				return
			}
			abort(c, http.StatusInternalServerError, "internal server error")
			return
		}
		if !m.Password().Matches(loginPW, hasher) {
			reject(c, "authentication failed")
			return
		}

		c.Set(authenticatedMemberKey, m)
		c.Next()
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range publicPathPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

func reject(c *gin.Context, message string) {
	abort(c, http.StatusUnauthorized, message)
}

func abort(c *gin.Context, status int, message string) {
	resp := response.Error[any](c, status, message, nil)
	c.AbortWithStatusJSON(resp.Status, resp)
}

// AuthenticatedMember returns the member resolved by the Authentication
// middleware for the current request.
func AuthenticatedMember(c *gin.Context) (*member.Member, bool) {
	v, ok := c.Get(authenticatedMemberKey)
	if !ok {
		return nil, false
	}
	m, ok := v.(*member.Member)
	return m, ok
}
