package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/services"
)

type PickupLocationHandler struct {
  log           *logger.Logger
  pickupService services.PickupLocationService
}

func NewPickupLocationHandler(baseLog *logger.Logger, pickupService services.PickupLocationService) *PickupLocationHandler {
  return &PickupLocationHandler{
    log:           baseLog.With("handler", "PickupLocationHandler"),
    pickupService: pickupService,
  }
}

func (h *PickupLocationHandler) Create(c *gin.Context) {
  var input services.PickupLocationInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  location, err := h.pickupService.Create(c.Request.Context(), input)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusCreated, location)
}

func (h *PickupLocationHandler) List(c *gin.Context) {
  locations, err := h.pickupService.List(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, locations)
}

func (h *PickupLocationHandler) GetByID(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  location, err := h.pickupService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, location)
}

func (h *PickupLocationHandler) Update(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  var input services.PickupLocationInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  location, err := h.pickupService.Update(c.Request.Context(), id, input)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, location)
}

func (h *PickupLocationHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  if err := h.pickupService.Delete(c.Request.Context(), id); err != nil {
    RespondError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
