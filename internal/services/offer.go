package services

import (
  "context"
  "fmt"
  "strings"

  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/dto"
  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/repos"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

type OfferProductInput struct {
  Name          string          `json:"name" binding:"required"`
  CategoryName  string          `json:"category_name" binding:"required"`
  Unit          types.Measure   `json:"unit" binding:"required"`
  MeasureAmount decimal.Decimal `json:"measure_amount"`
  Price         decimal.Decimal `json:"price"`
  StockQuantity int             `json:"stock_quantity"`
}

type CreateOfferInput struct {
  SellerID    uuid.UUID
  Title       string
  Description string
  Products    []OfferProductInput
}

type OfferService interface {
  // CreateWithProducts builds the offer aggregate in a single step: the
  // product list, availability=true and the summed total stock are all set
  // before the one creating transaction commits.
  CreateWithProducts(ctx context.Context, input CreateOfferInput) (*dto.OfferWithProducts, error)
  AddProduct(ctx context.Context, offerID uuid.UUID, input OfferProductInput) (*dto.OfferWithProducts, error)
  RemoveProduct(ctx context.Context, offerID, productID uuid.UUID) (*dto.OfferWithProducts, error)
  List(ctx context.Context) ([]dto.OfferSummary, error)
  ListWithProducts(ctx context.Context) ([]dto.OfferWithProducts, error)
  GetByID(ctx context.Context, id uuid.UUID) (*dto.OfferSummary, error)
  GetWithProducts(ctx context.Context, id uuid.UUID) (*dto.OfferWithProducts, error)
  Delete(ctx context.Context, id uuid.UUID) error
}

type offerService struct {
  db           *gorm.DB
  log          *logger.Logger
  offerRepo    repos.OfferRepo
  productRepo  repos.ProductRepo
  sellerRepo   repos.SellerRepo
  categoryRepo repos.CategoryRepo
}

func NewOfferService(
  db *gorm.DB,
  baseLog *logger.Logger,
  offerRepo repos.OfferRepo,
  productRepo repos.ProductRepo,
  sellerRepo repos.SellerRepo,
  categoryRepo repos.CategoryRepo,
) OfferService {
  return &offerService{
    db:           db,
    log:          baseLog.With("service", "OfferService"),
    offerRepo:    offerRepo,
    productRepo:  productRepo,
    sellerRepo:   sellerRepo,
    categoryRepo: categoryRepo,
  }
}

func validateProductInput(input *OfferProductInput) error {
  if strings.TrimSpace(input.Name) == "" {
    return fmt.Errorf("product name is required")
  }
  if !input.Unit.Valid() {
    return fmt.Errorf("unknown unit of measure %q", input.Unit)
  }
  if input.MeasureAmount.IsNegative() {
    return fmt.Errorf("measure amount must not be negative")
  }
  if input.Price.IsNegative() {
    return fmt.Errorf("price must not be negative")
  }
  if input.StockQuantity < 0 {
    return fmt.Errorf("stock quantity must not be negative")
  }
  return nil
}

func (s *offerService) CreateWithProducts(ctx context.Context, input CreateOfferInput) (*dto.OfferWithProducts, error) {
  if strings.TrimSpace(input.Title) == "" {
    return nil, apierr.InvalidInput(fmt.Errorf("offer title is required"))
  }
  for i := range input.Products {
    if err := validateProductInput(&input.Products[i]); err != nil {
      return nil, apierr.InvalidInput(err)
    }
  }

  seller, err := s.sellerRepo.GetByID(ctx, nil, input.SellerID)
  if err != nil {
    s.log.Error("CreateWithProducts: seller lookup failed", "error", err, "seller_id", input.SellerID)
    return nil, err
  }
  if seller == nil {
    return nil, apierr.NotFound("seller", input.SellerID)
  }

  offer := &types.Offer{
    ID:          uuid.New(),
    Title:       strings.TrimSpace(input.Title),
    Description: strings.TrimSpace(input.Description),
    Available:   true,
    SellerID:    seller.ID,
    Seller:      seller,
  }

  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    for i := range input.Products {
      category, catErr := s.categoryRepo.GetOrCreateByName(ctx, tx, input.Products[i].CategoryName)
      if catErr != nil {
        return fmt.Errorf("resolve category %q: %w", input.Products[i].CategoryName, catErr)
      }
      product := types.Product{
        ID:            uuid.New(),
        Name:          strings.TrimSpace(input.Products[i].Name),
        Unit:          input.Products[i].Unit,
        MeasureAmount: input.Products[i].MeasureAmount,
        Price:         input.Products[i].Price,
        StockQuantity: input.Products[i].StockQuantity,
        CategoryID:    category.ID,
        Category:      category,
      }
      offer.AddProduct(&product)
    }
    if _, createErr := s.offerRepo.Create(ctx, tx, offer); createErr != nil {
      return createErr
    }
    return nil
  }); err != nil {
    s.log.Error("CreateWithProducts failed", "error", err, "seller_id", input.SellerID)
    return nil, err
  }

  result := dto.BuildOfferWithProducts(offer)
  return &result, nil
}

func (s *offerService) AddProduct(ctx context.Context, offerID uuid.UUID, input OfferProductInput) (*dto.OfferWithProducts, error) {
  if err := validateProductInput(&input); err != nil {
    return nil, apierr.InvalidInput(err)
  }

  offer, err := s.offerRepo.GetByIDWithProducts(ctx, nil, offerID)
  if err != nil {
    s.log.Error("AddProduct: offer lookup failed", "error", err, "offer_id", offerID)
    return nil, err
  }
  if offer == nil {
    return nil, apierr.NotFound("offer", offerID)
  }

  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    category, catErr := s.categoryRepo.GetOrCreateByName(ctx, tx, input.CategoryName)
    if catErr != nil {
      return fmt.Errorf("resolve category %q: %w", input.CategoryName, catErr)
    }
    product := types.Product{
      ID:            uuid.New(),
      Name:          strings.TrimSpace(input.Name),
      Unit:          input.Unit,
      MeasureAmount: input.MeasureAmount,
      Price:         input.Price,
      StockQuantity: input.StockQuantity,
      CategoryID:    category.ID,
      Category:      category,
    }
    offer.AddProduct(&product)
    if _, createErr := s.productRepo.Create(ctx, tx, []*types.Product{&offer.Products[len(offer.Products)-1]}); createErr != nil {
      return createErr
    }
    return s.offerRepo.UpdateTotalStock(ctx, tx, offer.ID, offer.TotalStockQuantity)
  }); err != nil {
    s.log.Error("AddProduct failed", "error", err, "offer_id", offerID)
    return nil, err
  }

  result := dto.BuildOfferWithProducts(offer)
  return &result, nil
}

func (s *offerService) RemoveProduct(ctx context.Context, offerID, productID uuid.UUID) (*dto.OfferWithProducts, error) {
  offer, err := s.offerRepo.GetByIDWithProducts(ctx, nil, offerID)
  if err != nil {
    s.log.Error("RemoveProduct: offer lookup failed", "error", err, "offer_id", offerID)
    return nil, err
  }
  if offer == nil {
    return nil, apierr.NotFound("offer", offerID)
  }
  if !offer.RemoveProduct(productID) {
    return nil, apierr.ProductNotInOffer(productID)
  }

  // Detaching from the owned list deletes the product row.
  if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    if delErr := s.productRepo.Delete(ctx, tx, productID); delErr != nil {
      return delErr
    }
    return s.offerRepo.UpdateTotalStock(ctx, tx, offer.ID, offer.TotalStockQuantity)
  }); err != nil {
    s.log.Error("RemoveProduct failed", "error", err, "offer_id", offerID, "product_id", productID)
    return nil, err
  }

  result := dto.BuildOfferWithProducts(offer)
  return &result, nil
}

func (s *offerService) List(ctx context.Context) ([]dto.OfferSummary, error) {
  offers, err := s.offerRepo.List(ctx, nil)
  if err != nil {
    s.log.Error("List offers failed", "error", err)
    return nil, err
  }
  results := make([]dto.OfferSummary, 0, len(offers))
  for _, offer := range offers {
    results = append(results, dto.BuildOfferSummary(offer))
  }
  return results, nil
}

func (s *offerService) ListWithProducts(ctx context.Context) ([]dto.OfferWithProducts, error) {
  offers, err := s.offerRepo.ListWithProducts(ctx, nil)
  if err != nil {
    s.log.Error("ListWithProducts offers failed", "error", err)
    return nil, err
  }
  results := make([]dto.OfferWithProducts, 0, len(offers))
  for _, offer := range offers {
    results = append(results, dto.BuildOfferWithProducts(offer))
  }
  return results, nil
}

func (s *offerService) GetByID(ctx context.Context, id uuid.UUID) (*dto.OfferSummary, error) {
  offer, err := s.offerRepo.GetByID(ctx, nil, id)
  if err != nil {
    s.log.Error("GetByID offer failed", "error", err, "offer_id", id)
    return nil, err
  }
  if offer == nil {
    return nil, apierr.NotFound("offer", id)
  }
  result := dto.BuildOfferSummary(offer)
  return &result, nil
}

func (s *offerService) GetWithProducts(ctx context.Context, id uuid.UUID) (*dto.OfferWithProducts, error) {
  offer, err := s.offerRepo.GetByIDWithProducts(ctx, nil, id)
  if err != nil {
    s.log.Error("GetWithProducts offer failed", "error", err, "offer_id", id)
    return nil, err
  }
  if offer == nil {
    return nil, apierr.NotFound("offer", id)
  }
  result := dto.BuildOfferWithProducts(offer)
  return &result, nil
}

func (s *offerService) Delete(ctx context.Context, id uuid.UUID) error {
  offer, err := s.offerRepo.GetByID(ctx, nil, id)
  if err != nil {
    return err
  }
  if offer == nil {
    return apierr.NotFound("offer", id)
  }
  if err := s.offerRepo.Delete(ctx, nil, id); err != nil {
    s.log.Error("Delete offer failed", "error", err, "offer_id", id)
    return err
  }
  return nil
}
