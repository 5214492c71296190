package services

import (
  "context"
  "testing"

  "github.com/google/uuid"
  "github.com/shopspring/decimal"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

func TestCreateOfferWithProducts(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()
  seller := env.seedSeller(t)

  created, err := env.offerService.CreateWithProducts(ctx, CreateOfferInput{
    SellerID:    seller.ID,
    Title:       "Feira de sábado",
    Description: "colheita da semana",
    Products: []OfferProductInput{
      {Name: "Cenoura", CategoryName: "Hortifruti", Unit: types.MeasureKG, MeasureAmount: decimal.NewFromInt(1), Price: decimal.RequireFromString("5.00"), StockQuantity: 12},
      {Name: "Mel", CategoryName: "Mercearia", Unit: types.MeasureUnit, MeasureAmount: decimal.NewFromInt(1), Price: decimal.RequireFromString("22.00"), StockQuantity: 3},
    },
  })
  if err != nil {
    t.Fatalf("CreateWithProducts: %v", err)
  }

  if created.TotalStockQuantity != 15 {
    t.Errorf("total stock = %d, want 15", created.TotalStockQuantity)
  }
  if !created.Available {
    t.Error("new offer must start available")
  }
  if len(created.Products) != 2 {
    t.Fatalf("products = %d, want 2", len(created.Products))
  }
  if created.Seller.PixKey != seller.PixKey {
    t.Errorf("seller pix key = %q, want %q", created.Seller.PixKey, seller.PixKey)
  }

  reloaded, err := env.offerService.GetWithProducts(ctx, created.ID)
  if err != nil {
    t.Fatalf("GetWithProducts: %v", err)
  }
  if reloaded.TotalStockQuantity != 15 {
    t.Errorf("persisted total stock = %d, want 15", reloaded.TotalStockQuantity)
  }
  for _, p := range reloaded.Products {
    if p.CategoryName == "" {
      t.Errorf("product %q lost its category", p.Name)
    }
  }
}

func TestOfferProductMutationsKeepTotalStock(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()
  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{
    {name: "Batata", price: "4.00", stock: 10},
    {name: "Cebola", price: "3.00", stock: 5},
  })

  withAdded, err := env.offerService.AddProduct(ctx, offer.ID, OfferProductInput{
    Name:          "Alho",
    CategoryName:  "Hortifruti",
    Unit:          types.MeasureKG,
    MeasureAmount: decimal.RequireFromString("0.2"),
    Price:         decimal.RequireFromString("6.00"),
    StockQuantity: 4,
  })
  if err != nil {
    t.Fatalf("AddProduct: %v", err)
  }
  if withAdded.TotalStockQuantity != 19 {
    t.Errorf("total stock after add = %d, want 19", withAdded.TotalStockQuantity)
  }

  onion := env.productByName(t, mustReloadOffer(t, env, offer.ID), "Cebola")
  withRemoved, err := env.offerService.RemoveProduct(ctx, offer.ID, onion.ID)
  if err != nil {
    t.Fatalf("RemoveProduct: %v", err)
  }
  if withRemoved.TotalStockQuantity != 14 {
    t.Errorf("total stock after remove = %d, want 14", withRemoved.TotalStockQuantity)
  }

  persisted, err := env.offerService.GetWithProducts(ctx, offer.ID)
  if err != nil {
    t.Fatalf("GetWithProducts: %v", err)
  }
  if persisted.TotalStockQuantity != 14 {
    t.Errorf("persisted total stock = %d, want 14", persisted.TotalStockQuantity)
  }
  if len(persisted.Products) != 2 {
    t.Fatalf("products after mutations = %d, want 2", len(persisted.Products))
  }

  if _, err := env.offerService.RemoveProduct(ctx, offer.ID, onion.ID); !apierr.Is(err, apierr.CodeProductNotInOffer) {
    t.Fatalf("second remove err = %v, want %s", err, apierr.CodeProductNotInOffer)
  }
}

func TestCreateOfferValidation(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()
  seller := env.seedSeller(t)

  tests := []struct {
    name  string
    input CreateOfferInput
    code  string
  }{
    {
      name:  "missing title",
      input: CreateOfferInput{SellerID: seller.ID, Title: "   "},
      code:  apierr.CodeInvalidInput,
    },
    {
      name: "unknown seller",
      input: CreateOfferInput{
        SellerID: uuid.New(),
        Title:    "Cesta",
      },
      code: apierr.CodeNotFound,
    },
    {
      name: "bad unit",
      input: CreateOfferInput{
        SellerID: seller.ID,
        Title:    "Cesta",
        Products: []OfferProductInput{{Name: "Uva", CategoryName: "Hortifruti", Unit: "CAIXA", Price: decimal.NewFromInt(10)}},
      },
      code: apierr.CodeInvalidInput,
    },
    {
      name: "negative price",
      input: CreateOfferInput{
        SellerID: seller.ID,
        Title:    "Cesta",
        Products: []OfferProductInput{{Name: "Uva", CategoryName: "Hortifruti", Unit: types.MeasureKG, Price: decimal.NewFromInt(-1)}},
      },
      code: apierr.CodeInvalidInput,
    },
  }
  for _, tc := range tests {
    t.Run(tc.name, func(t *testing.T) {
      _, err := env.offerService.CreateWithProducts(ctx, tc.input)
      if !apierr.Is(err, tc.code) {
        t.Fatalf("err = %v, want %s", err, tc.code)
      }
    })
  }
}

func mustReloadOffer(t *testing.T, env *testEnv, id uuid.UUID) *types.Offer {
  t.Helper()
  offer, err := env.offerRepo.GetByIDWithProducts(context.Background(), nil, id)
  if err != nil {
    t.Fatalf("reload offer: %v", err)
  }
  return offer
}
