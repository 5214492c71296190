package services

import (
  "context"
  "fmt"
  "strings"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/repos"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type PickupLocationInput struct {
  Name string `json:"name" binding:"required"`
  CEP  string `json:"cep" binding:"required"`
}

type PickupLocationService interface {
  Create(ctx context.Context, input PickupLocationInput) (*types.PickupLocation, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.PickupLocation, error)
  List(ctx context.Context) ([]*types.PickupLocation, error)
  Update(ctx context.Context, id uuid.UUID, input PickupLocationInput) (*types.PickupLocation, error)
  Delete(ctx context.Context, id uuid.UUID) error
}

type pickupLocationService struct {
  db         *gorm.DB
  log        *logger.Logger
  pickupRepo repos.PickupLocationRepo
}

func NewPickupLocationService(db *gorm.DB, baseLog *logger.Logger, pickupRepo repos.PickupLocationRepo) PickupLocationService {
  return &pickupLocationService{
    db:         db,
    log:        baseLog.With("service", "PickupLocationService"),
    pickupRepo: pickupRepo,
  }
}

func (s *pickupLocationService) Create(ctx context.Context, input PickupLocationInput) (*types.PickupLocation, error) {
  if strings.TrimSpace(input.Name) == "" {
    return nil, apierr.InvalidInput(fmt.Errorf("pickup location name is required"))
  }
  location := &types.PickupLocation{
    ID:   uuid.New(),
    Name: strings.TrimSpace(input.Name),
    CEP:  strings.TrimSpace(input.CEP),
  }
  if _, err := s.pickupRepo.Create(ctx, nil, []*types.PickupLocation{location}); err != nil {
    s.log.Error("Create pickup location failed", "error", err)
    return nil, err
  }
  return location, nil
}

func (s *pickupLocationService) GetByID(ctx context.Context, id uuid.UUID) (*types.PickupLocation, error) {
  location, err := s.pickupRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if location == nil {
    return nil, apierr.NotFound("pickup location", id)
  }
  return location, nil
}

func (s *pickupLocationService) List(ctx context.Context) ([]*types.PickupLocation, error) {
  return s.pickupRepo.List(ctx, nil)
}

func (s *pickupLocationService) Update(ctx context.Context, id uuid.UUID, input PickupLocationInput) (*types.PickupLocation, error) {
  location, err := s.GetByID(ctx, id)
  if err != nil {
    return nil, err
  }
  if strings.TrimSpace(input.Name) != "" {
    location.Name = strings.TrimSpace(input.Name)
  }
  if strings.TrimSpace(input.CEP) != "" {
    location.CEP = strings.TrimSpace(input.CEP)
  }
  if err := s.pickupRepo.Save(ctx, nil, location); err != nil {
    s.log.Error("Update pickup location failed", "error", err, "pickup_location_id", id)
    return nil, err
  }
  return location, nil
}

func (s *pickupLocationService) Delete(ctx context.Context, id uuid.UUID) error {
  if _, err := s.GetByID(ctx, id); err != nil {
    return err
  }
  return s.pickupRepo.Delete(ctx, nil, id)
}
