package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type ProductRepo interface {
  Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Product, error)
  ListByOfferID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) ([]*types.Product, error)
  Save(ctx context.Context, tx *gorm.DB, product *types.Product) error
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type productRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
  return &productRepo{db: db, log: baseLog.With("repo", "ProductRepo")}
}

func (r *productRepo) Create(ctx context.Context, tx *gorm.DB, products []*types.Product) ([]*types.Product, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(products) == 0 {
    return []*types.Product{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&products).Error; err != nil {
    return nil, err
  }
  return products, nil
}

func (r *productRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Product, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Product
  err := transaction.WithContext(ctx).
    Preload("Category").
    Where("id = ?", id).
    First(&result).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *productRepo) ListByOfferID(ctx context.Context, tx *gorm.DB, offerID uuid.UUID) ([]*types.Product, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Product
  if err := transaction.WithContext(ctx).
    Preload("Category").
    Where("id_oferta = ?", offerID).
    Order("created_at").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *productRepo) Save(ctx context.Context, tx *gorm.DB, product *types.Product) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Omit("Category").Save(product).Error
}

func (r *productRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Product{}).Error
}
