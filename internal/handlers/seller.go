package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/dto"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/services"
)

type SellerHandler struct {
  log           *logger.Logger
  sellerService services.SellerService
}

func NewSellerHandler(baseLog *logger.Logger, sellerService services.SellerService) *SellerHandler {
  return &SellerHandler{
    log:           baseLog.With("handler", "SellerHandler"),
    sellerService: sellerService,
  }
}

func (h *SellerHandler) Register(c *gin.Context) {
  var input services.RegisterSellerInput
  if err := c.ShouldBindJSON(&input); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  seller, err := h.sellerService.Register(c.Request.Context(), input)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusCreated, dto.BuildSellerBrief(seller))
}

func (h *SellerHandler) List(c *gin.Context) {
  sellers, err := h.sellerService.List(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  out := make([]dto.SellerBrief, 0, len(sellers))
  for _, s := range sellers {
    out = append(out, dto.BuildSellerBrief(s))
  }
  RespondOK(c, http.StatusOK, out)
}

func (h *SellerHandler) GetByID(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  seller, err := h.sellerService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, dto.BuildSellerBrief(seller))
}

func (h *SellerHandler) GetWithOffers(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  seller, err := h.sellerService.GetWithOffers(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  offers := make([]dto.OfferSummary, 0, len(seller.Offers))
  for i := range seller.Offers {
    offers = append(offers, dto.BuildOfferSummary(&seller.Offers[i]))
  }
  RespondOK(c, http.StatusOK, gin.H{
    "seller": dto.BuildSellerBrief(seller),
    "offers": offers,
  })
}

func (h *SellerHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  if err := h.sellerService.Delete(c.Request.Context(), id); err != nil {
    RespondError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}
