package handlers

import (
  "net/http"
  "time"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/services"
)

type PublicationHandler struct {
  log                *logger.Logger
  publicationService services.PublicationService
}

func NewPublicationHandler(baseLog *logger.Logger, publicationService services.PublicationService) *PublicationHandler {
  return &PublicationHandler{
    log:                baseLog.With("handler", "PublicationHandler"),
    publicationService: publicationService,
  }
}

type createPublicationRequest struct {
  OfferID          uuid.UUID `json:"offer_id" binding:"required"`
  PickupLocationID uuid.UUID `json:"pickup_location_id" binding:"required"`
  ExposureEndDate  time.Time `json:"exposure_end_date" binding:"required"`
  PaymentEndDate   time.Time `json:"payment_end_date" binding:"required"`
}

func (h *PublicationHandler) Create(c *gin.Context) {
  var req createPublicationRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  publication, err := h.publicationService.Create(c.Request.Context(), services.CreatePublicationInput{
    OfferID:          req.OfferID,
    PickupLocationID: req.PickupLocationID,
    ExposureEndDate:  req.ExposureEndDate,
    PaymentEndDate:   req.PaymentEndDate,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusCreated, publication)
}

func (h *PublicationHandler) List(c *gin.Context) {
  if sellerParam := c.Query("seller_id"); sellerParam != "" {
    sellerID, err := uuid.Parse(sellerParam)
    if err != nil {
      RespondError(c, apierr.InvalidInput(err))
      return
    }
    publications, err := h.publicationService.ListBySeller(c.Request.Context(), sellerID)
    if err != nil {
      RespondError(c, err)
      return
    }
    RespondOK(c, http.StatusOK, publications)
    return
  }
  publications, err := h.publicationService.List(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, publications)
}

func (h *PublicationHandler) GetByID(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  publication, err := h.publicationService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, publication)
}

// GetDetail returns the publication together with its offer, products and
// every participant's orders. This is the seller's consolidated view.
func (h *PublicationHandler) GetDetail(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  detail, err := h.publicationService.GetWithParticipants(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, detail)
}

func (h *PublicationHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  if err := h.publicationService.Delete(c.Request.Context(), id); err != nil {
    RespondError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
