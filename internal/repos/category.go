package repos

import (
  "context"
  "strings"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type CategoryRepo interface {
  Create(ctx context.Context, tx *gorm.DB, categories []*types.Category) ([]*types.Category, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Category, error)
  GetOrCreateByName(ctx context.Context, tx *gorm.DB, name string) (*types.Category, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Category, error)
  Save(ctx context.Context, tx *gorm.DB, category *types.Category) error
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type categoryRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewCategoryRepo(db *gorm.DB, baseLog *logger.Logger) CategoryRepo {
  return &categoryRepo{db: db, log: baseLog.With("repo", "CategoryRepo")}
}

func (r *categoryRepo) Create(ctx context.Context, tx *gorm.DB, categories []*types.Category) ([]*types.Category, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(categories) == 0 {
    return []*types.Category{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&categories).Error; err != nil {
    return nil, err
  }
  return categories, nil
}

func (r *categoryRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Category, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Category
  err := transaction.WithContext(ctx).Where("id = ?", id).First(&result).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *categoryRepo) GetOrCreateByName(ctx context.Context, tx *gorm.DB, name string) (*types.Category, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  name = strings.TrimSpace(name)
  var result types.Category
  err := transaction.WithContext(ctx).Where("nome = ?", name).First(&result).Error
  if err == nil {
    return &result, nil
  }
  if err != gorm.ErrRecordNotFound {
    return nil, err
  }
  result = types.Category{ID: uuid.New(), Name: name}
  if err := transaction.WithContext(ctx).Create(&result).Error; err != nil {
    return nil, err
  }
  return &result, nil
}

func (r *categoryRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Category, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Category
  if err := transaction.WithContext(ctx).Order("nome").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *categoryRepo) Save(ctx context.Context, tx *gorm.DB, category *types.Category) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Save(category).Error
}

func (r *categoryRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Category{}).Error
}
