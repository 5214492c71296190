package services

import (
  "context"
  "strings"

  "github.com/google/uuid"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/dto"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/repos"
)

type UpdateClientInput struct {
  Name  string `json:"name"`
  Phone string `json:"phone"`
}

type ClientService interface {
  GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientSummary, error)
  List(ctx context.Context) ([]dto.ClientSummary, error)
  Update(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*dto.ClientSummary, error)
  Delete(ctx context.Context, id uuid.UUID) error
}

type clientService struct {
  db         *gorm.DB
  log        *logger.Logger
  clientRepo repos.ClientRepo
}

func NewClientService(db *gorm.DB, baseLog *logger.Logger, clientRepo repos.ClientRepo) ClientService {
  return &clientService{
    db:         db,
    log:        baseLog.With("service", "ClientService"),
    clientRepo: clientRepo,
  }
}

func (s *clientService) GetByID(ctx context.Context, id uuid.UUID) (*dto.ClientSummary, error) {
  client, err := s.clientRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if client == nil {
    return nil, apierr.NotFound("client", id)
  }
  summary := dto.BuildClientSummary(client)
  return &summary, nil
}

func (s *clientService) List(ctx context.Context) ([]dto.ClientSummary, error) {
  clients, err := s.clientRepo.List(ctx, nil)
  if err != nil {
    return nil, err
  }
  results := make([]dto.ClientSummary, 0, len(clients))
  for _, client := range clients {
    results = append(results, dto.BuildClientSummary(client))
  }
  return results, nil
}

func (s *clientService) Update(ctx context.Context, id uuid.UUID, input UpdateClientInput) (*dto.ClientSummary, error) {
  client, err := s.clientRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if client == nil {
    return nil, apierr.NotFound("client", id)
  }
  if strings.TrimSpace(input.Name) != "" {
    client.Name = strings.TrimSpace(input.Name)
  }
  if strings.TrimSpace(input.Phone) != "" {
    client.Phone = strings.TrimSpace(input.Phone)
  }
  if err := s.clientRepo.Save(ctx, nil, client); err != nil {
    s.log.Error("Update client failed", "error", err, "client_id", id)
    return nil, err
  }
  summary := dto.BuildClientSummary(client)
  return &summary, nil
}

func (s *clientService) Delete(ctx context.Context, id uuid.UUID) error {
  client, err := s.clientRepo.GetByID(ctx, nil, id)
  if err != nil {
    return err
  }
  if client == nil {
    return apierr.NotFound("client", id)
  }
  return s.clientRepo.Delete(ctx, nil, id)
}
