package handlers

import (
  "fmt"
  "net/http"

  "github.com/gin-gonic/gin"
  "github.com/google/uuid"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/services"
)

type CategoryHandler struct {
  log             *logger.Logger
  categoryService services.CategoryService
}

func NewCategoryHandler(baseLog *logger.Logger, categoryService services.CategoryService) *CategoryHandler {
  return &CategoryHandler{
    log:             baseLog.With("handler", "CategoryHandler"),
    categoryService: categoryService,
  }
}

type categoryRequest struct {
  Name string `json:"name" binding:"required"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
  var req categoryRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  category, err := h.categoryService.Create(c.Request.Context(), req.Name)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusCreated, category)
}

func (h *CategoryHandler) List(c *gin.Context) {
  categories, err := h.categoryService.List(c.Request.Context())
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, categories)
}

func (h *CategoryHandler) GetByID(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  category, err := h.categoryService.GetByID(c.Request.Context(), id)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, category)
}

func (h *CategoryHandler) Rename(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  var req categoryRequest
  if err := c.ShouldBindJSON(&req); err != nil {
    RespondError(c, apierr.InvalidInput(err))
    return
  }
  category, err := h.categoryService.Rename(c.Request.Context(), id, req.Name)
  if err != nil {
    RespondError(c, err)
    return
  }
  RespondOK(c, http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c *gin.Context) {
  id, err := parseIDParam(c, "id")
  if err != nil {
    RespondError(c, err)
    return
  }
  if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
    RespondError(c, err)
    return
  }
  c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
  id, err := uuid.Parse(c.Param(name))
  if err != nil {
    return uuid.Nil, apierr.InvalidInput(fmt.Errorf("invalid %s: %w", name, err))
  }
  return id, nil
}
