package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	memberapp "github.com/loopers/member-api/internal/application"
	"github.com/loopers/member-api/internal/interface/middleware"
	"github.com/loopers/member-api/pkg/response"
	"github.com/loopers/member-api/pkg/validation"
)

type MemberHandler struct {
	Svc    *memberapp.Service
	Logger *logrus.Logger
}

func NewMemberHandler(svc *memberapp.Service, logger *logrus.Logger) *MemberHandler {
	return &MemberHandler{Svc: svc, Logger: logger}
}

type signupRequest struct {
	MemberID  string `json:"memberId" binding:"required"`
	Password  string `json:"password" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	BirthDate string `json:"birthDate" binding:"required"`
}

type signupResponse struct {
	MemberID string `json:"memberId"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

type meResponse struct {
	MemberID  string `json:"memberId"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	BirthDate string `json:"birthDate"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (h *MemberHandler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	m, err := h.Svc.Signup(c.Request.Context(), memberapp.SignupInput{
		MemberID:  req.MemberID,
		Password:  req.Password,
		Name:      req.Name,
		Email:     req.Email,
		BirthDate: req.BirthDate,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, signupResponse{
		MemberID: m.MemberID().Value(),
		Name:     m.Name().Value(),
		Email:    m.Email().Value(),
	}, "signup successful")
}

// Me returns the authenticated member's own profile with a masked name.
func (h *MemberHandler) Me(c *gin.Context) {
	m, ok := middleware.AuthenticatedMember(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	response.OK(c, meResponse{
		MemberID:  m.MemberID().Value(),
		Name:      m.Name().Masked(),
		Email:     m.Email().Value(),
		BirthDate: m.BirthDate().Formatted(),
	}, "me")
}

func (h *MemberHandler) ChangePassword(c *gin.Context) {
	m, ok := middleware.AuthenticatedMember(c)
	if !ok {
		response.Fail(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	if err := h.Svc.ChangePassword(c.Request.Context(), m.MemberID().Value(), req.CurrentPassword, req.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}

	response.OK[any](c, nil, "password changed")
}
