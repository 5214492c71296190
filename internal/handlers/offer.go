package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/services"
)

type OfferHandler struct {
  log          *logger.Logger
  offerService services.OfferService
}

func NewOfferHandler(baseLog *logger.Logger, offerService services.OfferService) *OfferHandler {
  return &OfferHandler{
    log:          baseLog.With("handler", "OfferHandler"),
    offerService: offerService,
  }
}

type createOfferRequest struct {
  SellerID    uuid.UUID                    `json:"seller_id" binding:"required"`
  Title       string                       `json:"title" binding:"required"`
  Description string                       `json:"description"`
  Products    []services.OfferProductInput `json:"products" binding:"required"`
}

// Create builds the offer and its whole product list in one request so the
// aggregate is never observable half-built.
func (h *OfferHandler) Create(c *gin.Context) {
  var req createOfferRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  offer, err := h.offerService.CreateWithProducts(c.Request.Context(), services.CreateOfferInput{
    SellerID:    req.SellerID,
    Title:       req.Title,
    Description: req.Description,
    Products:    req.Products,
  })
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusCreated, offer)
}

func (h *OfferHandler) List(c *gin.Context) {
  if c.Query("expand") == "products" {
    offers, err := h.offerService.ListWithProducts(c.Request.Context())
    if err != nil {
      RespondError(c, err)
      return
    }
    RespondOK(c, http.StatusOK, offers)
    return
  }
  offers, err := h.offerService.List(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, offers)
}

func (h *OfferHandler) GetByID(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  offer, err := h.offerService.GetWithProducts(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, offer)
}

func (h *OfferHandler) AddProduct(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  var input services.OfferProductInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  offer, err := h.offerService.AddProduct(c.Request.Context(), id, input)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, offer)
}

func (h *OfferHandler) RemoveProduct(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  productID, err := parseIDParam(c, "productId")
  if err != nil {
    RespondError(c, err)
    return
  }
  offer, err := h.offerService.RemoveProduct(c.Request.Context(), id, productID)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, offer)
}

func (h *OfferHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  if err := h.offerService.Delete(c.Request.Context(), id); err != nil {
    RespondError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
