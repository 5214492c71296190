package services

import (
  "context"
  "fmt"
  "strings"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/repos"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type CategoryService interface {
  Create(ctx context.Context, name string) (*types.Category, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Category, error)
  List(ctx context.Context) ([]*types.Category, error)
  Rename(ctx context.Context, id uuid.UUID, name string) (*types.Category, error)
  Delete(ctx context.Context, id uuid.UUID) error
}

type categoryService struct {
  db           *gorm.DB
  log          *logger.Logger
  categoryRepo repos.CategoryRepo
}

func NewCategoryService(db *gorm.DB, baseLog *logger.Logger, categoryRepo repos.CategoryRepo) CategoryService {
  return &categoryService{
    db:           db,
    log:          baseLog.With("service", "CategoryService"),
    categoryRepo: categoryRepo,
  }
}

func (s *categoryService) Create(ctx context.Context, name string) (*types.Category, error) {
  name = strings.TrimSpace(name)
  if name == "" {
    return nil, apierr.InvalidInput(fmt.Errorf("category name is required"))
  }
  category := &types.Category{ID: uuid.New(), Name: name}
  if _, err := s.categoryRepo.Create(ctx, nil, []*types.Category{category}); err != nil {
    s.log.Error("Create category failed", "error", err)
    return nil, err
  }
  return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, id uuid.UUID) (*types.Category, error) {
  category, err := s.categoryRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if category == nil {
    return nil, apierr.NotFound("category", id)
  }
  return category, nil
}

func (s *categoryService) List(ctx context.Context) ([]*types.Category, error) {
  return s.categoryRepo.List(ctx, nil)
}

func (s *categoryService) Rename(ctx context.Context, id uuid.UUID, name string) (*types.Category, error) {
  name = strings.TrimSpace(name)
  if name == "" {
    return nil, apierr.InvalidInput(fmt.Errorf("category name is required"))
  }
  category, err := s.GetByID(ctx, id)
  if err != nil {
    return nil, err
  }
  category.Name = name
  if err := s.categoryRepo.Save(ctx, nil, category); err != nil {
    s.log.Error("Rename category failed", "error", err, "category_id", id)
    return nil, err
  }
  return category, nil
}

func (s *categoryService) Delete(ctx context.Context, id uuid.UUID) error {
  if _, err := s.GetByID(ctx, id); err != nil {
    return err
  }
  return s.categoryRepo.Delete(ctx, nil, id)
}
