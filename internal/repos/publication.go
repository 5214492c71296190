package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type PublicationRepo interface {
  Create(ctx context.Context, tx *gorm.DB, publication *types.Publication) (*types.Publication, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Publication, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Publication, error)
  ListBySeller(ctx context.Context, tx *gorm.DB, sellerID uuid.UUID) ([]*types.Publication, error)
  Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error
}

type publicationRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewPublicationRepo(db *gorm.DB, baseLog *logger.Logger) PublicationRepo {
  return &publicationRepo{db: db, log: baseLog.With("repo", "PublicationRepo")}
}

func (r *publicationRepo) Create(ctx context.Context, tx *gorm.DB, publication *types.Publication) (*types.Publication, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Omit("Offer", "PickupLocation", "Participants").
    Create(publication).Error; err != nil {
    return nil, err
  }
  return publication, nil
}

func (r *publicationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Publication, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Publication
  err := transaction.WithContext(ctx).
    Preload("PickupLocation").
    Preload("Offer").
    Preload("Offer.Seller").
    Preload("Offer.Products", func(db *gorm.DB) *gorm.DB { return db.Order("produtos.created_at") }).
    Preload("Offer.Products.Category").
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

func (r *publicationRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Publication, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Publication
  if err := transaction.WithContext(ctx).
    Preload("PickupLocation").
    Preload("Offer").
    Preload("Offer.Seller").
    Order("created_at").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *publicationRepo) ListBySeller(ctx context.Context, tx *gorm.DB, sellerID uuid.UUID) ([]*types.Publication, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Publication
  if err := transaction.WithContext(ctx).
    Joins("JOIN ofertas ON ofertas.id = publicacoes.id_oferta").
    Where("ofertas.id_vendedor = ?", sellerID).
    Preload("PickupLocation").
    Preload("Offer").
    Preload("Offer.Seller").
    Order("publicacoes.created_at").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

// Delete removes the publication with its owned participants and their
// orders. Children are deleted explicitly, innermost first.
func (r *publicationRepo) Delete(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  return transaction.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
    if err := inner.
      Where("id_participante IN (?)",
        inner.Session(&gorm.Session{NewDB: true}).
          Model(&types.Participant{}).
          Select("id").
          Where("id_publicacao = ?", id),
      ).
      Delete(&types.Order{}).Error; err != nil {
      return err
    }
    if err := inner.Where("id_publicacao = ?", id).Delete(&types.Participant{}).Error; err != nil {
      return err
    }
    return inner.Where("id = ?", id).Delete(&types.Publication{}).Error
  })
}
