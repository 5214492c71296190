package services

import (
  "context"
  "fmt"
  "time"

  "github.com/google/uuid"
  "golang.org/x/sync/errgroup"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  rediscache "github.com/feiracoletiva/feira-backend/internal/clients/redis"
  "github.com/feiracoletiva/feira-backend/internal/dto"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/repos"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type CreatePublicationInput struct {
  OfferID          uuid.UUID
  PickupLocationID uuid.UUID
  ExposureEndDate  time.Time
  PaymentEndDate   time.Time
}

type PublicationService interface {
  // Create publishes an available offer: the availability flip and the
  // publication insert are one atomic unit, so one offer fuels at most one
  // open publication at a time.
  Create(ctx context.Context, input CreatePublicationInput) (*dto.PublicationSummary, error)
  List(ctx context.Context) ([]dto.PublicationSummary, error)
  GetByID(ctx context.Context, id uuid.UUID) (*dto.PublicationSummary, error)
  ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]dto.PublicationSummary, error)
  GetWithParticipants(ctx context.Context, id uuid.UUID) (*dto.PublicationDetail, error)
  Delete(ctx context.Context, id uuid.UUID) error
}

type publicationService struct {
  db              *gorm.DB
  log             *logger.Logger
  publicationRepo repos.PublicationRepo
  offerRepo       repos.OfferRepo
  pickupRepo      repos.PickupLocationRepo
  participantRepo repos.ParticipantRepo
  cache           rediscache.PublicationCache
}

func NewPublicationService(
  db *gorm.DB,
  baseLog *logger.Logger,
  publicationRepo repos.PublicationRepo,
  offerRepo repos.OfferRepo,
  pickupRepo repos.PickupLocationRepo,
  participantRepo repos.ParticipantRepo,
  cache rediscache.PublicationCache,
) PublicationService {
  return &publicationService{
    db:              db,
    log:             baseLog.With("service", "PublicationService"),
    publicationRepo: publicationRepo,
    offerRepo:       offerRepo,
    pickupRepo:      pickupRepo,
    participantRepo: participantRepo,
    cache:           cache,
  }
}

func (s *publicationService) Create(ctx context.Context, input CreatePublicationInput) (*dto.PublicationSummary, error) {
  if input.ExposureEndDate.IsZero() || input.PaymentEndDate.IsZero() {
    return nil, apierr.InvalidInput(fmt.Errorf("exposure and payment end dates are required"))
  }

  offer, err := s.offerRepo.GetByID(ctx, nil, input.OfferID)
  if err != nil {
    s.log.Error("Create publication: offer lookup failed", "error", err, "offer_id", input.OfferID)
    return nil, err
  }
  if offer == nil {
    return nil, apierr.NotFound("offer", input.OfferID)
  }
  if !offer.Available {
    return nil, apierr.OfferUnavailable(offer.ID)
  }

  pickup, err := s.pickupRepo.GetByID(ctx, nil, input.PickupLocationID)
  if err != nil {
    s.log.Error("Create publication: pickup location lookup failed", "error", err, "pickup_location_id", input.PickupLocationID)
    return nil, err
  }
  if pickup == nil {
    return nil, apierr.NotFound("pickup location", input.PickupLocationID)
  }

  publication := &types.Publication{
    ID:               uuid.New(),
    ExposureEndDate:  input.ExposureEndDate,
    PaymentEndDate:   input.PaymentEndDate,
    Stage:            types.StageExposure,
    PickupLocationID: pickup.ID,
    PickupLocation:   pickup,
    OfferID:          offer.ID,
    Offer:            offer,
  }

  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    // The conditional flip is the arbiter: of two concurrent creations for
    // the same offer only one sees a row flip, the other aborts here.
    flipped, flipErr := s.offerRepo.MarkUnavailable(ctx, tx, offer.ID)
    if flipErr != nil {
      return flipErr
    }
    if !flipped {
      return apierr.OfferUnavailable(offer.ID)
    }
    _, createErr := s.publicationRepo.Create(ctx, tx, publication)
    return createErr
  }); err != nil {
    if !apierr.Is(err, apierr.CodeOfferUnavailable) {
      s.log.Error("Create publication failed", "error", err, "offer_id", offer.ID)
    }
    return nil, err
  }
  offer.Available = false

  summary := dto.BuildPublicationSummary(publication)
  return &summary, nil
}

func (s *publicationService) List(ctx context.Context) ([]dto.PublicationSummary, error) {
  publications, err := s.publicationRepo.List(ctx, nil)
  if err != nil {
    s.log.Error("List publications failed", "error", err)
    return nil, err
  }
  results := make([]dto.PublicationSummary, 0, len(publications))
  for _, publication := range publications {
    results = append(results, dto.BuildPublicationSummary(publication))
  }
  return results, nil
}

func (s *publicationService) GetByID(ctx context.Context, id uuid.UUID) (*dto.PublicationSummary, error) {
  publication, err := s.publicationRepo.GetByID(ctx, nil, id)
  if err != nil {
    s.log.Error("GetByID publication failed", "error", err, "publication_id", id)
    return nil, err
  }
  if publication == nil {
    return nil, apierr.NotFound("publication", id)
  }
  summary := dto.BuildPublicationSummary(publication)
  return &summary, nil
}

func (s *publicationService) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]dto.PublicationSummary, error) {
  publications, err := s.publicationRepo.ListBySeller(ctx, nil, sellerID)
  if err != nil {
    s.log.Error("ListBySeller publications failed", "error", err, "seller_id", sellerID)
    return nil, err
  }
  results := make([]dto.PublicationSummary, 0, len(publications))
  for _, publication := range publications {
    results = append(results, dto.BuildPublicationSummary(publication))
  }
  return results, nil
}

func (s *publicationService) GetWithParticipants(ctx context.Context, id uuid.UUID) (*dto.PublicationDetail, error) {
  if s.cache != nil {
    if cached, ok := s.cache.GetDetail(ctx, id); ok {
      return cached, nil
    }
  }

  // The base row (with offer and pickup) and the participant graph are
  // independent reads, so they run concurrently.
  var (
    publication  *types.Publication
    participants []*types.Participant
  )
  group, groupCtx := errgroup.WithContext(ctx)
  group.Go(func() error {
    var err error
    publication, err = s.publicationRepo.GetByID(groupCtx, nil, id)
    return err
  })
  group.Go(func() error {
    var err error
    participants, err = s.participantRepo.ListByPublication(groupCtx, nil, id)
    return err
  })
  if err := group.Wait(); err != nil {
    s.log.Error("GetWithParticipants failed", "error", err, "publication_id", id)
    return nil, err
  }
  if publication == nil {
    return nil, apierr.NotFound("publication", id)
  }

  detail := dto.BuildPublicationDetail(publication, participants)
  if s.cache != nil {
    s.cache.SetDetail(ctx, &detail)
  }
  return &detail, nil
}

func (s *publicationService) Delete(ctx context.Context, id uuid.UUID) error {
  publication, err := s.publicationRepo.GetByID(ctx, nil, id)
  if err != nil {
    return err
  }
  if publication == nil {
    return apierr.NotFound("publication", id)
  }
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if delErr := s.publicationRepo.Delete(ctx, tx, id); delErr != nil {
      return delErr
    }
    // The offer is free to be published again once its open publication
    // is gone.
    return s.offerRepo.MarkAvailable(ctx, tx, publication.OfferID)
  }); err != nil {
    s.log.Error("Delete publication failed", "error", err, "publication_id", id)
    return err
  }
  if s.cache != nil {
    s.cache.InvalidateDetail(ctx, id)
  }
  return nil
}
