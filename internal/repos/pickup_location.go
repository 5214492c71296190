package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type PickupLocationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, locations []*types.PickupLocation) ([]*types.PickupLocation, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PickupLocation, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.PickupLocation, error)
  Save(ctx context.Context, tx *gorm.DB, location *types.PickupLocation) error
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type pickupLocationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPickupLocationRepo(db *gorm.DB, baseLog *logger.Logger) PickupLocationRepo {
  return &pickupLocationRepo{db: db, log: baseLog.With("repo", "PickupLocationRepo")}
}

func (r *pickupLocationRepo) Create(ctx context.Context, tx *gorm.DB, locations []*types.PickupLocation) ([]*types.PickupLocation, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(locations) == 0 {
    return []*types.PickupLocation{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&locations).Error; err != nil {
    return nil, err
  }
  return locations, nil
}

func (r *pickupLocationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.PickupLocation, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.PickupLocation
  err := transaction.WithContext(ctx).Where("id = ?", id).First(&result).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *pickupLocationRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.PickupLocation, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.PickupLocation
  if err := transaction.WithContext(ctx).Order("nome").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *pickupLocationRepo) Save(ctx context.Context, tx *gorm.DB, location *types.PickupLocation) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Save(location).Error
}

func (r *pickupLocationRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.PickupLocation{}).Error
}
