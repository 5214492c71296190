package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/services"
)

type ClientHandler struct {
  log           *logger.Logger
  clientService services.ClientService
}

func NewClientHandler(baseLog *logger.Logger, clientService services.ClientService) *ClientHandler {
  return &ClientHandler{
    log:           baseLog.With("handler", "ClientHandler"),
    clientService: clientService,
  }
}

func (h *ClientHandler) List(c *gin.Context) {
  clients, err := h.clientService.List(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, clients)
}

func (h *ClientHandler) GetByID(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  client, err := h.clientService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, client)
}

func (h *ClientHandler) Update(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  var input services.UpdateClientInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  client, err := h.clientService.Update(c.Request.Context(), id, input)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, client)
}

func (h *ClientHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  if err := h.clientService.Delete(c.Request.Context(), id); err != nil {
    RespondError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
