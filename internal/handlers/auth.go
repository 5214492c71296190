package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/dto"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/services"
)

type AuthHandler struct {
  log         *logger.Logger
  authService services.AuthService
}

func NewAuthHandler(baseLog *logger.Logger, authService services.AuthService) *AuthHandler {
  return &AuthHandler{
    log:         baseLog.With("handler", "AuthHandler"),
    authService: authService,
  }
}

func (h *AuthHandler) Register(c *gin.Context) {
  var input services.RegisterClientInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  client, err := h.authService.RegisterClient(c.Request.Context(), input)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusCreated, dto.BuildClientSummary(client))
}

type loginRequest struct {
  Email    string `json:"email" binding:"required,email"`
  Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
  var req loginRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  token, err := h.authService.LoginClient(c.Request.Context(), req.Email, req.Password)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, gin.H{"access_token": token, "token_type": "Bearer"})
}
