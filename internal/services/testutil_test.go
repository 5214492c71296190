package services

import (
  "context"
  "fmt"
  "strings"
  "testing"
  "time"

  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  gormlogger "gorm.io/gorm/logger"

  "github.com/feiracoletiva/feira-backend/internal/logger"
  "github.com/feiracoletiva/feira-backend/internal/repos"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

// openTestDB opens a per-test in-memory database with the same error
// translation the production config uses, so unique-index violations
// surface as gorm.ErrDuplicatedKey here too.
func openTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
  db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
    TranslateError: true,
    Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
  })
  if err != nil {
    t.Fatalf("open test db: %v", err)
  }
  sqlDB, err := db.DB()
  if err != nil {
    t.Fatalf("unwrap test db: %v", err)
  }
  sqlDB.SetMaxOpenConns(1)
  if err := db.AutoMigrate(
    &types.Category{},
    &types.Client{},
    &types.Seller{},
    &types.PickupLocation{},
    &types.Offer{},
    &types.Product{},
    &types.Publication{},
    &types.Participant{},
    &types.Order{},
  ); err != nil {
    t.Fatalf("migrate test db: %v", err)
  }
  return db
}

func newTestLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("development")
  if err != nil {
    t.Fatalf("init test logger: %v", err)
  }
  return log
}

// testEnv bundles the repos and services the workflow tests exercise,
// wired the same way cmd/main.go wires them, minus redis and tracing.
type testEnv struct {
  db                   *gorm.DB
  clientRepo           repos.ClientRepo
  offerRepo            repos.OfferRepo
  participantRepo      repos.ParticipantRepo
  publicationRepo      repos.PublicationRepo
  offerService         OfferService
  publicationService   PublicationService
  participationService ParticipationService
}

func newTestEnv(t *testing.T) *testEnv {
  t.Helper()
  db := openTestDB(t)
  log := newTestLogger(t)

  categoryRepo := repos.NewCategoryRepo(db, log)
  clientRepo := repos.NewClientRepo(db, log)
  sellerRepo := repos.NewSellerRepo(db, log)
  pickupRepo := repos.NewPickupLocationRepo(db, log)
  offerRepo := repos.NewOfferRepo(db, log)
  productRepo := repos.NewProductRepo(db, log)
  publicationRepo := repos.NewPublicationRepo(db, log)
  participantRepo := repos.NewParticipantRepo(db, log)

  return &testEnv{
    db:                   db,
    clientRepo:           clientRepo,
    offerRepo:            offerRepo,
    participantRepo:      participantRepo,
    publicationRepo:      publicationRepo,
    offerService:         NewOfferService(db, log, offerRepo, productRepo, sellerRepo, categoryRepo),
    publicationService:   NewPublicationService(db, log, publicationRepo, offerRepo, pickupRepo, participantRepo, nil),
    participationService: NewParticipationService(db, log, clientRepo, publicationRepo, participantRepo, nil),
  }
}

func (e *testEnv) seedSeller(t *testing.T) *types.Seller {
  t.Helper()
  seller := &types.Seller{
    ID:       uuid.New(),
    Name:     "Maria",
    Email:    fmt.Sprintf("maria-%s@feira.dev", uuid.NewString()[:8]),
    Phone:    "11999990000",
    Password: "hashed",
    PixKey:   "maria@pix",
  }
  if err := e.db.Create(seller).Error; err != nil {
    t.Fatalf("seed seller: %v", err)
  }
  return seller
}

func (e *testEnv) seedClient(t *testing.T, name string) *types.Client {
  t.Helper()
  client := &types.Client{
    ID:       uuid.New(),
    Name:     name,
    Email:    fmt.Sprintf("%s-%s@feira.dev", strings.ToLower(name), uuid.NewString()[:8]),
    Phone:    "11888880000",
    Password: "hashed",
  }
  if err := e.db.Create(client).Error; err != nil {
    t.Fatalf("seed client: %v", err)
  }
  return client
}

func (e *testEnv) seedPickup(t *testing.T) *types.PickupLocation {
  t.Helper()
  pickup := &types.PickupLocation{
    ID:   uuid.New(),
    Name: "Praça Central",
    CEP:  "13083-000",
  }
  if err := e.db.Create(pickup).Error; err != nil {
    t.Fatalf("seed pickup location: %v", err)
  }
  return pickup
}

type productSpec struct {
  name  string
  price string
  stock int
}

// seedOffer creates an offer with the given products through the service
// so total stock and availability come out the way production writes them.
func (e *testEnv) seedOffer(t *testing.T, seller *types.Seller, products []productSpec) *types.Offer {
  t.Helper()
  inputs := make([]OfferProductInput, 0, len(products))
  for _, p := range products {
    inputs = append(inputs, OfferProductInput{
      Name:          p.name,
      CategoryName:  "Hortifruti",
      Unit:          types.MeasureKG,
      MeasureAmount: decimal.NewFromInt(1),
      Price:         decimal.RequireFromString(p.price),
      StockQuantity: p.stock,
    })
  }
  created, err := e.offerService.CreateWithProducts(context.Background(), CreateOfferInput{
    SellerID: seller.ID,
    Title:    "Cesta da semana",
    Products: inputs,
  })
  if err != nil {
    t.Fatalf("seed offer: %v", err)
  }
  offer, err := e.offerRepo.GetByIDWithProducts(context.Background(), nil, created.ID)
  if err != nil {
    t.Fatalf("reload seeded offer: %v", err)
  }
  return offer
}

// seedPublication publishes the offer through the service so the
// availability flip happens exactly as in production.
func (e *testEnv) seedPublication(t *testing.T, offer *types.Offer, pickup *types.PickupLocation) *types.Publication {
  t.Helper()
  summary, err := e.publicationService.Create(context.Background(), CreatePublicationInput{
    OfferID:          offer.ID,
    PickupLocationID: pickup.ID,
    ExposureEndDate:  time.Now().UTC().Add(72 * time.Hour),
    PaymentEndDate:   time.Now().UTC().Add(120 * time.Hour),
  })
  if err != nil {
    t.Fatalf("seed publication: %v", err)
  }
  publication, err := e.publicationRepo.GetByID(context.Background(), nil, summary.ID)
  if err != nil {
    t.Fatalf("reload seeded publication: %v", err)
  }
  return publication
}

func (e *testEnv) productByName(t *testing.T, offer *types.Offer, name string) *types.Product {
  t.Helper()
  for i := range offer.Products {
    if offer.Products[i].Name == name {
      return &offer.Products[i]
    }
  }
  t.Fatalf("product %q not found in offer %s", name, offer.ID)
  return nil
}
