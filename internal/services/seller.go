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
  "github.com/feiracoletiva/feira-backend/internal/utils"
)

type RegisterSellerInput struct {
  Name     string `json:"name" binding:"required"`
  Email    string `json:"email" binding:"required,email"`
  Phone    string `json:"phone" binding:"required"`
  Password string `json:"password" binding:"required"`
  RG       string `json:"rg"`
  CEP      string `json:"cep"`
  PixKey   string `json:"pix_key"`
}

type SellerService interface {
  Register(ctx context.Context, input RegisterSellerInput) (*types.Seller, error)
  GetByID(ctx context.Context, id uuid.UUID) (*types.Seller, error)
  GetWithOffers(ctx context.Context, id uuid.UUID) (*types.Seller, error)
  List(ctx context.Context) ([]*types.Seller, error)
  Delete(ctx context.Context, id uuid.UUID) error
}

type sellerService struct {
  db         *gorm.DB
  log        *logger.Logger
  sellerRepo repos.SellerRepo
}

func NewSellerService(db *gorm.DB, baseLog *logger.Logger, sellerRepo repos.SellerRepo) SellerService {
  return &sellerService{
    db:         db,
    log:        baseLog.With("service", "SellerService"),
    sellerRepo: sellerRepo,
  }
}

func (s *sellerService) Register(ctx context.Context, input RegisterSellerInput) (*types.Seller, error) {
  email := strings.ToLower(strings.TrimSpace(input.Email))
  existing, err := s.sellerRepo.GetByEmail(ctx, nil, email)
  if err != nil {
    s.log.Error("Register seller: email check failed", "error", err)
    return nil, err
  }
  if existing != nil {
    return nil, apierr.InvalidInput(fmt.Errorf("email %s is already registered", email))
  }

  hashed, err := utils.HashPassword(input.Password)
  if err != nil {
    return nil, apierr.InvalidInput(err)
  }

  seller := &types.Seller{
    ID:       uuid.New(),
    Name:     strings.TrimSpace(input.Name),
    Email:    email,
    Phone:    strings.TrimSpace(input.Phone),
    Password: hashed,
    RG:       strings.TrimSpace(input.RG),
    CEP:      strings.TrimSpace(input.CEP),
    PixKey:   strings.TrimSpace(input.PixKey),
  }
  if _, err := s.sellerRepo.Create(ctx, nil, []*types.Seller{seller}); err != nil {
    s.log.Error("Register seller: create failed", "error", err)
    return nil, err
  }
  return seller, nil
}

func (s *sellerService) GetByID(ctx context.Context, id uuid.UUID) (*types.Seller, error) {
  seller, err := s.sellerRepo.GetByID(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if seller == nil {
    return nil, apierr.NotFound("seller", id)
  }
  return seller, nil
}

func (s *sellerService) GetWithOffers(ctx context.Context, id uuid.UUID) (*types.Seller, error) {
  seller, err := s.sellerRepo.GetByIDWithOffers(ctx, nil, id)
  if err != nil {
    return nil, err
  }
  if seller == nil {
    return nil, apierr.NotFound("seller", id)
  }
  return seller, nil
}

func (s *sellerService) List(ctx context.Context) ([]*types.Seller, error) {
  return s.sellerRepo.List(ctx, nil)
}

func (s *sellerService) Delete(ctx context.Context, id uuid.UUID) error {
  if _, err := s.GetByID(ctx, id); err != nil {
    return err
  }
  return s.sellerRepo.Delete(ctx, nil, id)
}
