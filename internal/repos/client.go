package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type ClientRepo interface {
  Create(ctx context.Context, tx *gorm.DB, clients []*types.Client) ([]*types.Client, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Client, error)
  GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Client, error)
  EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Client, error)
  Save(ctx context.Context, tx *gorm.DB, client *types.Client) error
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type clientRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewClientRepo(db *gorm.DB, baseLog *logger.Logger) ClientRepo {
  return &clientRepo{db: db, log: baseLog.With("repo", "ClientRepo")}
}

func (r *clientRepo) Create(ctx context.Context, tx *gorm.DB, clients []*types.Client) ([]*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if len(clients) == 0 {
    return []*types.Client{}, nil
  }
  if err := transaction.WithContext(ctx).Create(&clients).Error; err != nil {
    return nil, err
  }
  return clients, nil
}

func (r *clientRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Client
  err := transaction.WithContext(ctx).Where("id = ?", id).First(&result).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *clientRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Client
  err := transaction.WithContext(ctx).Where("email = ?", email).First(&result).Error
  if err != nil {
    if err == gorm.ErrRecordNotFound {
      return nil, nil
    }
    return nil, err
  }
  return &result, nil
}

func (r *clientRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Client{}).
    Where("email = ?", email).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}

func (r *clientRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Client, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Client
  if err := transaction.WithContext(ctx).Order("nome").Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *clientRepo) Save(ctx context.Context, tx *gorm.DB, client *types.Client) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Save(client).Error
}

func (r *clientRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Where("id = ?", id).Delete(&types.Client{}).Error
}
