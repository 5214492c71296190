package types

import (
  "testing"

  "github.com/google/uuid"
  "github.com/shopspring/decimal"
)

func testProduct(name string, price string, stock int) Product {
  return Product{
    ID:            uuid.New(),
    Name:          name,
    Unit:          MeasureKG,
    MeasureAmount: decimal.NewFromInt(1),
    Price:         decimal.RequireFromString(price),
    StockQuantity: stock,
  }
}

func TestOfferAggregateMaintainsTotalStock(t *testing.T) {
  offer := &Offer{ID: uuid.New(), Title: "Cesta", Available: true}

  carrot := testProduct("Cenoura", "5.00", 12)
  honey := testProduct("Mel", "22.00", 3)
  offer.AddProduct(&carrot)
  offer.AddProduct(&honey)

  if offer.TotalStockQuantity != 15 {
    t.Errorf("total stock = %d, want 15", offer.TotalStockQuantity)
  }
  for i := range offer.Products {
    if offer.Products[i].OfferID != offer.ID {
      t.Errorf("product %q not bound to offer", offer.Products[i].Name)
    }
  }

  if got := offer.ProductByID(honey.ID); got == nil || got.Name != "Mel" {
    t.Fatalf("ProductByID(honey) = %v", got)
  }
  if got := offer.ProductByID(uuid.New()); got != nil {
    t.Fatalf("ProductByID(unknown) = %v, want nil", got)
  }

  if !offer.RemoveProduct(carrot.ID) {
    t.Fatal("RemoveProduct(carrot) = false")
  }
  if offer.TotalStockQuantity != 3 {
    t.Errorf("total stock after remove = %d, want 3", offer.TotalStockQuantity)
  }
  if offer.RemoveProduct(carrot.ID) {
    t.Error("removing the same product twice must fail")
  }
}

func TestNewOrderFreezesPrice(t *testing.T) {
  product := testProduct("Queijo", "2.50", 8)
  order := NewOrder(&product, 2)

  if !order.UnitPrice.Equal(decimal.RequireFromString("2.50")) {
    t.Errorf("unit price = %s, want 2.50", order.UnitPrice)
  }
  if !order.ItemTotal.Equal(decimal.RequireFromString("5.00")) {
    t.Errorf("item total = %s, want 5.00", order.ItemTotal)
  }

  product.Price = decimal.RequireFromString("9.99")
  if !order.UnitPrice.Equal(decimal.RequireFromString("2.50")) {
    t.Error("order price followed a later product reprice")
  }
}

func TestParticipantAppendOrderAccumulatesTotals(t *testing.T) {
  participant := &Participant{ID: uuid.New(), TotalValue: decimal.Zero}

  honey := testProduct("Mel", "10.00", 5)
  cheese := testProduct("Queijo", "2.50", 8)
  participant.AppendOrder(NewOrder(&honey, 1))
  participant.AppendOrder(NewOrder(&cheese, 2))

  if !participant.TotalValue.Equal(decimal.RequireFromString("15.00")) {
    t.Errorf("total value = %s, want 15.00", participant.TotalValue)
  }
  if participant.TotalProductCount != 3 {
    t.Errorf("total product count = %d, want 3", participant.TotalProductCount)
  }
  for i := range participant.Orders {
    if participant.Orders[i].ParticipantID != participant.ID {
      t.Errorf("order %d not bound to participant", i)
    }
  }
}

func TestMeasureValid(t *testing.T) {
  tests := []struct {
    measure Measure
    want    bool
  }{
    {MeasureKG, true},
    {MeasureUnit, true},
    {MeasureLiter, true},
    {Measure("CAIXA"), false},
    {Measure(""), false},
  }
  for _, tc := range tests {
    if got := tc.measure.Valid(); got != tc.want {
      t.Errorf("Measure(%q).Valid() = %v, want %v", tc.measure, got, tc.want)
    }
  }
}
