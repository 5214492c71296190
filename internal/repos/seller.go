package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type SellerRepo interface {
  Create(ctx context.Context, tx *gorm.DB, sellers []*types.Seller) ([]*types.Seller, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Seller, error)
  GetByIDWithOffers(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Seller, error)
  GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Seller, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Seller, error)
  Save(ctx context.Context, tx *gorm.DB, seller *types.Seller) error
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type sellerRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewSellerRepo(db *gorm.DB, baseLog *logger.Logger) SellerRepo {
  return &sellerRepo{db: db, log: baseLog.With("repo", "SellerRepo")}
}

func (r *sellerRepo) Create(ctx context.Context, tx *gorm.DB, sellers []*types.Seller) ([]*types.Seller, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(sellers) == 0 {
    return []*types.Seller{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&sellers).Error; err != nil {
    return nil, err
  }
  return sellers, nil
}

func (r *sellerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Seller, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Seller
  err := transaction.WithContext(ctx).Where("id = ?", id).First(&result).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *sellerRepo) GetByIDWithOffers(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Seller, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Seller
  err := transaction.WithContext(ctx).
    Preload("Offers").
    Preload("Offers.Products").
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

func (r *sellerRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Seller, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Seller
  err := transaction.WithContext(ctx).Where("email = ?", email).First(&result).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *sellerRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Seller, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Seller
  if err := transaction.WithContext(ctx).Order("nome").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *sellerRepo) Save(ctx context.Context, tx *gorm.DB, seller *types.Seller) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Save(seller).Error
}

func (r *sellerRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Seller{}).Error
}
