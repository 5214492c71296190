package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type OfferRepo interface {
  Create(ctx context.Context, tx *gorm.DB, offer *types.Offer) (*types.Offer, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Offer, error)
  GetByIDWithProducts(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Offer, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Offer, error)
  ListWithProducts(ctx context.Context, tx *gorm.DB) ([]*types.Offer, error)
  Save(ctx context.Context, tx *gorm.DB, offer *types.Offer) error
  // MarkUnavailable flips the availability flag off only when it is
  // currently on, reporting whether the flip happened. The conditional
  // update makes the flip atomic with respect to concurrent publications.
  MarkUnavailable(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)
  MarkAvailable(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
  UpdateTotalStock(ctx context.Context, tx *gorm.DB, id uuid.UUID, total int) error
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type offerRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewOfferRepo(db *gorm.DB, baseLog *logger.Logger) OfferRepo {
  return &offerRepo{db: db, log: baseLog.With("repo", "OfferRepo")}
}

func (r *offerRepo) Create(ctx context.Context, tx *gorm.DB, offer *types.Offer) (*types.Offer, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).Create(offer).Error; err != nil {
    return nil, err
  }
  return offer, nil
}

func (r *offerRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Offer, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Offer
  err := transaction.WithContext(ctx).
    Preload("Seller").
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

func (r *offerRepo) GetByIDWithProducts(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Offer, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Offer
  err := transaction.WithContext(ctx).
    Preload("Seller").
    Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("produtos.created_at") }).
    Preload("Products.Category").
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

func (r *offerRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Offer, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Offer
  if err := transaction.WithContext(ctx).
    Preload("Seller").
    Order("created_at").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *offerRepo) ListWithProducts(ctx context.Context, tx *gorm.DB) ([]*types.Offer, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Offer
  if err := transaction.WithContext(ctx).
    Preload("Seller").
    Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("produtos.created_at") }).
    Preload("Products.Category").
    Order("created_at").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *offerRepo) Save(ctx context.Context, tx *gorm.DB, offer *types.Offer) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Omit("Products", "Seller").Save(offer).Error
}

func (r *offerRepo) MarkUnavailable(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  res := transaction.WithContext(ctx).
    Model(&types.Offer{}).
    Where("id = ? AND status_disponibilidade = ?", id, true).
    Update("status_disponibilidade", false)
  if res.Error != nil {
    return false, res.Error
  }
  return res.RowsAffected == 1, nil
}

func (r *offerRepo) MarkAvailable(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).
    Model(&types.Offer{}).
    Where("id = ?", id).
    Update("status_disponibilidade", true).Error
}

func (r *offerRepo) UpdateTotalStock(ctx context.Context, tx *gorm.DB, id uuid.UUID, total int) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).
    Model(&types.Offer{}).
    Where("id = ?", id).
    Update("qtd_estoque_total", total).Error
}

// Delete removes the offer and its owned products. The child delete is
// explicit so the cascade does not depend on database FK configuration.
func (r *offerRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
    if err := inner.Where("id_oferta = ?", id).Delete(&types.Product{}).Error; err != nil {
      return err
    }
    return inner.Where("id = ?", id).Delete(&types.Offer{}).Error
  })
}
