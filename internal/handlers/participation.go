package handlers

import (
  "errors"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/requestdata"
  "github.com/feiracoletiva/feira-backend/internal/services"
)

type ParticipationHandler struct {
  log                  *logger.Logger
  participationService services.ParticipationService
}

func NewParticipationHandler(baseLog *logger.Logger, participationService services.ParticipationService) *ParticipationHandler {
  return &ParticipationHandler{
    log:                  baseLog.With("handler", "ParticipationHandler"),
    participationService: participationService,
  }
}

type createParticipationRequest struct {
  Items []services.OrderItemInput `json:"items" binding:"required"`
}

// Create joins the authenticated client to a publication. The client id
// comes from the verified token, never from the request body.
func (h *ParticipationHandler) Create(c *gin.Context) {
  publicationID, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.ClientID == uuid.Nil {
    RespondError(c, apierr.Unauthorized(errors.New("missing client identity")))
    return
  }
  var req createParticipationRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  result, err := h.participationService.CreateParticipation(c.Request.Context(), services.CreateParticipationInput{
    ClientID:      rd.ClientID,
    PublicationID: publicationID,
    Items:         req.Items,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusCreated, result)
}

func (h *ParticipationHandler) List(c *gin.Context) {
  results, err := h.participationService.List(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, results)
}

func (h *ParticipationHandler) GetByID(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  result, err := h.participationService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, result)
}

// ListMine returns the authenticated client's own participations.
func (h *ParticipationHandler) ListMine(c *gin.Context) {
  rd := requestdata.GetRequestData(c.Request.Context())
  if rd == nil || rd.ClientID == uuid.Nil {
    RespondError(c, apierr.Unauthorized(errors.New("missing client identity")))
    return
  }
  results, err := h.participationService.ListByClient(c.Request.Context(), rd.ClientID)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, results)
}
