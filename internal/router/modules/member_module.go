package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/loopers/member-api/internal/interface/http"
)

// MemberModule wires the member HTTP surface into routes.
// Public: POST /api/v1/members/signup
// Protected (via the authentication gate): GET /api/v1/members/me,
// PUT /api/v1/members/me/password

type MemberModule struct {
	Handler *handlers.MemberHandler
}

func NewMemberModule(h *handlers.MemberHandler) *MemberModule {
	return &MemberModule{Handler: h}
}

func (m *MemberModule) Register(rg *gin.RouterGroup) {
	members := rg.Group("/v1/members")
	{
		members.POST("/signup", m.Handler.Signup)
		members.GET("/me", m.Handler.Me)
		members.PUT("/me/password", m.Handler.ChangePassword)
	}
}
