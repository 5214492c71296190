package dto

import (
  "testing"
  "time"

  "github.com/google/uuid"
  "github.com/shopspring/decimal"

  "github.com/feiracoletiva/feira-backend/internal/types"
)

func TestBuildParticipationResult(t *testing.T) {
  category := &types.Category{ID: uuid.New(), Name: "Hortifruti"}
  product := types.Product{
    ID:            uuid.New(),
    Name:          "Mel",
    Unit:          types.MeasureUnit,
    MeasureAmount: decimal.NewFromInt(1),
    Price:         decimal.RequireFromString("10.00"),
    Category:      category,
  }
  client := &types.Client{ID: uuid.New(), Name: "Ana", Email: "ana@feira.dev", Phone: "119"}
  publication := &types.Publication{
    ID:              uuid.New(),
    ExposureEndDate: time.Now().UTC(),
    Stage:           types.StageExposure,
    Offer:           &types.Offer{ID: uuid.New(), Title: "Cesta da semana"},
    PickupLocation:  &types.PickupLocation{ID: uuid.New(), Name: "Praça Central"},
  }
  participant := &types.Participant{
    ID:         uuid.New(),
    TotalValue: decimal.Zero,
    Client:     client,
    ClientID:   client.ID,
  }
  order := types.NewOrder(&product, 2)
  order.Product = &product
  participant.AppendOrder(order)

  result := BuildParticipationResult(participant, publication)

  if result.Client.Name != "Ana" {
    t.Errorf("client name = %q, want Ana", result.Client.Name)
  }
  if result.Publication.OfferTitle != "Cesta da semana" {
    t.Errorf("offer title = %q", result.Publication.OfferTitle)
  }
  if result.Publication.PickupLocationName != "Praça Central" {
    t.Errorf("pickup name = %q", result.Publication.PickupLocationName)
  }
  if len(result.Orders) != 1 {
    t.Fatalf("orders = %d, want 1", len(result.Orders))
  }
  if result.Orders[0].Product.CategoryName != "Hortifruti" {
    t.Errorf("category name = %q", result.Orders[0].Product.CategoryName)
  }
  if !result.TotalValue.Equal(decimal.RequireFromString("20.00")) {
    t.Errorf("total = %s, want 20.00", result.TotalValue)
  }
}

func TestBuildPublicationBriefToleratesMissingAssociations(t *testing.T) {
  brief := BuildPublicationBrief(&types.Publication{ID: uuid.New(), Stage: types.StageExposure})
  if brief.OfferTitle != "" || brief.PickupLocationName != "" {
    t.Errorf("bare publication produced %+v", brief)
  }
}
