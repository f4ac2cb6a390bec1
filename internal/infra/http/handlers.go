package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fenixAlex88/technical-support/internal/domain"
	"github.com/fenixAlex88/technical-support/internal/usecase"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type loginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name       string   `json:"name" binding:"required"`
	Password   string   `json:"password" binding:"required"`
	Email      string   `json:"email"`
	TelegramID string   `json:"telegramId"`
	Roles      []string `json:"roles"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type validateRequest struct {
	Token string `json:"token" binding:"required"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_REQUEST", "name and password are required")
		return
	}
	tok, err := s.service.Login(c.Request.Context(), req.Name, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: tok})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_REQUEST", "name and password are required")
		return
	}
	tok, err := s.service.Register(c.Request.Context(), usecase.RegisterInput{
		Name:       req.Name,
		Password:   req.Password,
		Email:      req.Email,
		TelegramID: req.TelegramID,
		Roles:      req.Roles,
	})
	if err != nil {
		// The register surface reports both conflicts and unknown
		// roles as a bad request.
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			writeErrorCode(c, http.StatusBadRequest, "USER_ALREADY_EXISTS", err.Error())
		case errors.Is(err, domain.ErrRoleNotFound):
			writeErrorCode(c, http.StatusBadRequest, "ROLE_NOT_FOUND", err.Error())
		default:
			writeError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: tok})
}

func (s *Server) handleLogout(c *gin.Context) {
	tok, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_HEADER", "Authorization header must be 'Bearer <token>'")
		return
	}
	if err := s.service.Logout(c.Request.Context(), tok); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (s *Server) handleValidateToken(c *gin.Context) {
	var req validateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_REQUEST", "token is required")
		return
	}
	identity, err := s.service.ValidateToken(c.Request.Context(), req.Token)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, identity)
}

func (s *Server) handleListRoles(c *gin.Context) {
	roles, err := s.service.ListRoles(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, roles)
}

func (s *Server) handleListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	sortDir := c.DefaultQuery("sort", "asc")
	var roleFilter []string
	if raw := c.Query("roles"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				roleFilter = append(roleFilter, trimmed)
			}
		}
	}
	result, err := s.service.ListUsers(c.Request.Context(), page, size, sortDir, roleFilter)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		writeErrorCode(c, http.StatusBadRequest, "INVALID_REQUEST", "user id must be numeric")
		return
	}
	identity, err := s.service.GetUser(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, identity)
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	tok := strings.TrimSpace(header[len("Bearer "):])
	return tok, tok != ""
}

func writeError(c *gin.Context, err error) {
	status, code := http.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		status, code = http.StatusNotFound, "USER_NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidCredentials):
		status, code = http.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, domain.ErrUserAlreadyExists):
		status, code = http.StatusConflict, "USER_ALREADY_EXISTS"
	case errors.Is(err, domain.ErrRoleNotFound):
		status, code = http.StatusNotFound, "ROLE_NOT_FOUND"
	case errors.Is(err, domain.ErrInvalidToken):
		status, code = http.StatusUnauthorized, "INVALID_TOKEN"
	}
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Printf("internal error: %v", err)
		message = "an unexpected error occurred"
	}
	writeErrorCode(c, status, code, message)
}

func writeErrorCode(c *gin.Context, status int, code, message string) {
	c.JSON(status, errorResponse{Code: code, Message: message})
}
