package dto

import (
  "time"

  "github.com/google/uuid"
  "github.com/shopspring/decimal"

  "github.com/feiracoletiva/feira-backend/internal/types"
)

// ProductSnapshot is the catalog slice frozen onto each order row of a
// participation result.
type ProductSnapshot struct {
  ID            uuid.UUID       `json:"id"`
  Name          string          `json:"name"`
  CategoryName  string          `json:"category_name"`
  Unit          types.Measure   `json:"unit"`
  MeasureAmount decimal.Decimal `json:"measure_amount"`
}

type OrderView struct {
  ID        uuid.UUID       `json:"id"`
  Product   ProductSnapshot `json:"product"`
  Quantity  int             `json:"quantity"`
  UnitPrice decimal.Decimal `json:"unit_price"`
  ItemTotal decimal.Decimal `json:"item_total"`
}

// PublicationBrief titles the publication by its offer title, the way a
// participant sees it.
type PublicationBrief struct {
  ID                 uuid.UUID `json:"id"`
  OfferTitle         string    `json:"offer_title"`
  ExposureEndDate    time.Time `json:"exposure_end_date"`
  PickupLocationName string    `json:"pickup_location_name"`
  Stage              types.Stage `json:"stage"`
}

// ParticipationResult is the read model returned by the participation
// workflow and by the participation listing endpoints.
type ParticipationResult struct {
  ID                uuid.UUID        `json:"id"`
  TotalValue        decimal.Decimal  `json:"total_value"`
  TotalProductCount int              `json:"total_product_count"`
  Paid              bool             `json:"paid"`
  ParticipatedAt    time.Time        `json:"participated_at"`
  Client            ClientSummary    `json:"client"`
  Publication       PublicationBrief `json:"publication"`
  Orders            []OrderView      `json:"orders"`
}

func BuildOrderView(o *types.Order) OrderView {
  view := OrderView{
    ID:        o.ID,
    Quantity:  o.Quantity,
    UnitPrice: o.UnitPrice,
    ItemTotal: o.ItemTotal,
  }
  if o.Product != nil {
    categoryName := ""
    if o.Product.Category != nil {
      categoryName = o.Product.Category.Name
    }
    view.Product = ProductSnapshot{
      ID:            o.Product.ID,
      Name:          o.Product.Name,
      CategoryName:  categoryName,
      Unit:          o.Product.Unit,
      MeasureAmount: o.Product.MeasureAmount,
    }
  }
  return view
}

func BuildPublicationBrief(p *types.Publication) PublicationBrief {
  brief := PublicationBrief{
    ID:              p.ID,
    ExposureEndDate: p.ExposureEndDate,
    Stage:           p.Stage,
  }
  if p.Offer != nil {
    brief.OfferTitle = p.Offer.Title
  }
  if p.PickupLocation != nil {
    brief.PickupLocationName = p.PickupLocation.Name
  }
  return brief
}

// BuildParticipationResult projects the participant graph. The publication
// must carry its offer and pickup location; the participant must carry its
// client and orders with product snapshots.
func BuildParticipationResult(participant *types.Participant, publication *types.Publication) ParticipationResult {
  result := ParticipationResult{
    ID:                participant.ID,
    TotalValue:        participant.TotalValue,
    TotalProductCount: participant.TotalProductCount,
    Paid:              participant.Paid,
    ParticipatedAt:    participant.ParticipatedAt,
    Publication:       BuildPublicationBrief(publication),
    Orders:            make([]OrderView, 0, len(participant.Orders)),
  }
  if participant.Client != nil {
    result.Client = BuildClientSummary(participant.Client)
  }
  for i := range participant.Orders {
    result.Orders = append(result.Orders, BuildOrderView(&participant.Orders[i]))
  }
  return result
}
