package services

import (
  "context"
  "errors"
  "fmt"
  "time"

  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  rediscache "github.com/feiracoletiva/feira-backend/internal/clients/redis"
  "github.com/feiracoletiva/feira-backend/internal/dto"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/repos"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

// OrderItemInput is one requested line item: a product of the publication's
// offer and a quantity.
type OrderItemInput struct {
  ProductID uuid.UUID `json:"product_id" binding:"required"`
  Quantity  int       `json:"quantity" binding:"required"`
}

type CreateParticipationInput struct {
  ClientID      uuid.UUID
  PublicationID uuid.UUID
  Items         []OrderItemInput
}

type ParticipationService interface {
  // CreateParticipation validates the client's order against the
  // publication's live offer and persists participant plus orders as one
  // atomic unit. Every line item is validated before anything is written;
  // any failure aborts the whole creation.
  CreateParticipation(ctx context.Context, input CreateParticipationInput) (*dto.ParticipationResult, error)
  List(ctx context.Context) ([]dto.ParticipationResult, error)
  GetByID(ctx context.Context, id uuid.UUID) (*dto.ParticipationResult, error)
  ListByClient(ctx context.Context, clientID uuid.UUID) ([]dto.ParticipationResult, error)
}

type participationService struct {
  db              *gorm.DB
  log             *logger.Logger
  clientRepo      repos.ClientRepo
  publicationRepo repos.PublicationRepo
  participantRepo repos.ParticipantRepo
  cache           rediscache.PublicationCache
}

func NewParticipationService(
  db *gorm.DB,
  baseLog *logger.Logger,
  clientRepo repos.ClientRepo,
  publicationRepo repos.PublicationRepo,
  participantRepo repos.ParticipantRepo,
  cache rediscache.PublicationCache,
) ParticipationService {
  return &participationService{
    db:              db,
    log:             baseLog.With("service", "ParticipationService"),
    clientRepo:      clientRepo,
    publicationRepo: publicationRepo,
    participantRepo: participantRepo,
    cache:           cache,
  }
}

func (s *participationService) CreateParticipation(ctx context.Context, input CreateParticipationInput) (*dto.ParticipationResult, error) {
  if len(input.Items) == 0 {
    return nil, apierr.InvalidInput(fmt.Errorf("participation needs at least one order item"))
  }

  client, err := s.clientRepo.GetByID(ctx, nil, input.ClientID)
  if err != nil {
    s.log.Error("CreateParticipation: client lookup failed", "error", err, "client_id", input.ClientID)
    return nil, err
  }
  if client == nil {
    return nil, apierr.NotFound("client", input.ClientID)
  }

  publication, err := s.publicationRepo.GetByID(ctx, nil, input.PublicationID)
  if err != nil {
    s.log.Error("CreateParticipation: publication lookup failed", "error", err, "publication_id", input.PublicationID)
    return nil, err
  }
  if publication == nil {
    return nil, apierr.NotFound("publication", input.PublicationID)
  }

  exists, err := s.participantRepo.ExistsByClientAndPublication(ctx, nil, input.ClientID, input.PublicationID)
  if err != nil {
    s.log.Error("CreateParticipation: duplicate check failed", "error", err)
    return nil, err
  }
  if exists {
    return nil, apierr.DuplicateParticipation(input.ClientID, input.PublicationID)
  }

  offer := publication.Offer
  if offer == nil {
    s.log.Error("CreateParticipation: publication has no offer attached", "publication_id", publication.ID)
    return nil, apierr.Internal(fmt.Errorf("publication %s has no offer attached", publication.ID))
  }

  participant := &types.Participant{
    ID:             uuid.New(),
    TotalValue:     decimal.Zero,
    Paid:           false,
    ParticipatedAt: time.Now().UTC(),
    ClientID:       client.ID,
    Client:         client,
    PublicationID:  publication.ID,
  }

  // Line items are processed in caller order so totals accumulate the same
  // way on every equivalent request. Stock is validated but never
  // decremented here; the exposure model reserves nothing.
  for _, item := range input.Items {
    if item.Quantity <= 0 {
      return nil, apierr.InvalidInput(fmt.Errorf("order quantity must be positive, got %d", item.Quantity))
    }
    product := offer.ProductByID(item.ProductID)
    if product == nil {
      return nil, apierr.ProductNotInOffer(item.ProductID)
    }
    if item.Quantity > product.StockQuantity {
      s.log.Warn("CreateParticipation: requested quantity exceeds stock",
        "product", product.Name, "requested", item.Quantity, "available", product.StockQuantity)
      return nil, apierr.InsufficientStock(product.Name, product.StockQuantity)
    }
    order := types.NewOrder(product, item.Quantity)
    order.Product = product
    participant.AppendOrder(order)
  }

  // All items validated; persist the whole graph in one transaction. The
  // composite unique index backstops the duplicate pre-check under
  // concurrency: the losing insert comes back as a duplicated key.
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    _, createErr := s.participantRepo.CreateGraph(ctx, tx, participant)
    return createErr
  }); err != nil {
    if errors.Is(err, gorm.ErrDuplicatedKey) {
      return nil, apierr.DuplicateParticipation(input.ClientID, input.PublicationID)
    }
    s.log.Error("CreateParticipation: persist failed", "error", err, "participant_id", participant.ID)
    return nil, err
  }

  if s.cache != nil {
    s.cache.InvalidateDetail(ctx, publication.ID)
  }

  result := dto.BuildParticipationResult(participant, publication)
  return &result, nil
}

func (s *participationService) List(ctx context.Context) ([]dto.ParticipationResult, error) {
  participants, err := s.participantRepo.List(ctx, nil)
  if err != nil {
    s.log.Error("List participations failed", "error", err)
    return nil, err
  }
  return s.buildResults(ctx, participants)
}

func (s *participationService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ParticipationResult, error) {
  participant, err := s.participantRepo.GetByID(ctx, nil, id)
  if err != nil {
    s.log.Error("GetByID participation failed", "error", err, "participant_id", id)
    return nil, err
  }
  if participant == nil {
    return nil, apierr.NotFound("participation", id)
  }
  results, err := s.buildResults(ctx, []*types.Participant{participant})
  if err != nil {
    return nil, err
  }
  return &results[0], nil
}

func (s *participationService) ListByClient(ctx context.Context, clientID uuid.UUID) ([]dto.ParticipationResult, error) {
  participants, err := s.participantRepo.ListByClient(ctx, nil, clientID)
  if err != nil {
    s.log.Error("ListByClient participations failed", "error", err, "client_id", clientID)
    return nil, err
  }
  return s.buildResults(ctx, participants)
}

// buildResults resolves each participant's publication once and projects
// the read models.
func (s *participationService) buildResults(ctx context.Context, participants []*types.Participant) ([]dto.ParticipationResult, error) {
  publications := make(map[uuid.UUID]*types.Publication, len(participants))
  results := make([]dto.ParticipationResult, 0, len(participants))
  for _, participant := range participants {
    publication, ok := publications[participant.PublicationID]
    if !ok {
      var err error
      publication, err = s.publicationRepo.GetByID(ctx, nil, participant.PublicationID)
      if err != nil {
        return nil, err
      }
      if publication == nil {
        return nil, apierr.Internal(fmt.Errorf("participation %s references missing publication %s", participant.ID, participant.PublicationID))
      }
      publications[participant.PublicationID] = publication
    }
    results = append(results, dto.BuildParticipationResult(participant, publication))
  }
  return results, nil
}
