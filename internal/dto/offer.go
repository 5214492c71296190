package dto

import (
  "github.com/google/uuid"
  "github.com/shopspring/decimal"

  "github.com/feiracoletiva/feira-backend/internal/types"
)

// OfferSummary is the offer read model without the product list.
type OfferSummary struct {
  ID                 uuid.UUID   `json:"id"`
  Title              string      `json:"title"`
  Description        string      `json:"description"`
  TotalStockQuantity int         `json:"total_stock_quantity"`
  Available          bool        `json:"available"`
  Seller             SellerBrief `json:"seller"`
}

// OfferProductView is one product row inside an offer-with-products model.
type OfferProductView struct {
  ID            uuid.UUID       `json:"id"`
  Name          string          `json:"name"`
  CategoryName  string          `json:"category_name"`
  Unit          types.Measure   `json:"unit"`
  MeasureAmount decimal.Decimal `json:"measure_amount"`
  Price         decimal.Decimal `json:"price"`
  StockQuantity int             `json:"stock_quantity"`
}

// OfferWithProducts is the detailed offer read model.
type OfferWithProducts struct {
  OfferSummary
  Products []OfferProductView `json:"products"`
}

func BuildOfferSummary(o *types.Offer) OfferSummary {
  return OfferSummary{
    ID:                 o.ID,
    Title:              o.Title,
    Description:        o.Description,
    TotalStockQuantity: o.TotalStockQuantity,
    Available:          o.Available,
    Seller:             BuildSellerBrief(o.Seller),
  }
}

func BuildOfferWithProducts(o *types.Offer) OfferWithProducts {
  out := OfferWithProducts{
    OfferSummary: BuildOfferSummary(o),
    Products:     make([]OfferProductView, 0, len(o.Products)),
  }
  for i := range o.Products {
    p := &o.Products[i]
    categoryName := ""
    if p.Category != nil {
      categoryName = p.Category.Name
    }
    out.Products = append(out.Products, OfferProductView{
      ID:            p.ID,
      Name:          p.Name,
      CategoryName:  categoryName,
      Unit:          p.Unit,
      MeasureAmount: p.MeasureAmount,
      Price:         p.Price,
      StockQuantity: p.StockQuantity,
    })
  }
  return out
}
