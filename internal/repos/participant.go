package repos

import (
  "context"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type ParticipantRepo interface {
  // CreateGraph persists the participant and its orders as one unit inside
  // the given transaction: parent row first, then every order row. The
  // caller provides the transaction so the whole workflow commits or rolls
  // back together.
  CreateGraph(ctx context.Context, tx *gorm.DB, participant *types.Participant) (*types.Participant, error)
  GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Participant, error)
  List(ctx context.Context, tx *gorm.DB) ([]*types.Participant, error)
  ListByClient(ctx context.Context, tx *gorm.DB, clientID uuid.UUID) ([]*types.Participant, error)
  ListByPublication(ctx context.Context, tx *gorm.DB, publicationID uuid.UUID) ([]*types.Participant, error)
  ExistsByClientAndPublication(ctx context.Context, tx *gorm.DB, clientID, publicationID uuid.UUID) (bool, error)
}

type participantRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewParticipantRepo(db *gorm.DB, baseLog *logger.Logger) ParticipantRepo {
  return &participantRepo{db: db, log: baseLog.With("repo", "ParticipantRepo")}
}

func (r *participantRepo) CreateGraph(ctx context.Context, tx *gorm.DB, participant *types.Participant) (*types.Participant, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).
    Omit("Client", "Orders").
    Create(participant).Error; err != nil {
    return nil, err
  }
  for i := range participant.Orders {
    if err := transaction.WithContext(ctx).
      Omit("Product").
      Create(&participant.Orders[i]).Error; err != nil {
      return nil, err
    }
  }
  return participant, nil
}

func participantPreloads(db *gorm.DB) *gorm.DB {
  return db.
    Preload("Client").
    Preload("Orders", func(db *gorm.DB) *gorm.DB { return db.Order("pedidos.created_at") }).
    Preload("Orders.Product").
    Preload("Orders.Product.Category")
}

func (r *participantRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.Participant, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var result types.Participant
  err := participantPreloads(transaction.WithContext(ctx)).
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

func (r *participantRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Participant, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Participant
  if err := participantPreloads(transaction.WithContext(ctx)).
    Order("data_participacao").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *participantRepo) ListByClient(ctx context.Context, tx *gorm.DB, clientID uuid.UUID) ([]*types.Participant, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Participant
  if err := participantPreloads(transaction.WithContext(ctx)).
    Where("id_cliente = ?", clientID).
    Order("data_participacao").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *participantRepo) ListByPublication(ctx context.Context, tx *gorm.DB, publicationID uuid.UUID) ([]*types.Participant, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var results []*types.Participant
  if err := participantPreloads(transaction.WithContext(ctx)).
    Where("id_publicacao = ?", publicationID).
    Order("data_participacao").
    Find(&results).Error; err != nil {
    return nil, err
  }
  return results, nil
}

func (r *participantRepo) ExistsByClientAndPublication(ctx context.Context, tx *gorm.DB, clientID, publicationID uuid.UUID) (bool, error) {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var count int64
  if err := transaction.WithContext(ctx).
    Model(&types.Participant{}).
    Where("id_cliente = ? AND id_publicacao = ?", clientID, publicationID).
    Count(&count).Error; err != nil {
    return false, err
  }
  return count > 0, nil
}
