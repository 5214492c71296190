package dto

import (
  "time"

  "github.com/google/uuid"

  "github.com/feiracoletiva/feira-backend/internal/types"
)

// PublicationSummary is the publication read model without participant
// detail, used by the list and by-seller endpoints.
type PublicationSummary struct {
  ID              uuid.UUID          `json:"id"`
  ExposureEndDate time.Time          `json:"exposure_end_date"`
  PaymentEndDate  time.Time          `json:"payment_end_date"`
  Stage           types.Stage        `json:"stage"`
  PickupLocation  PickupLocationView `json:"pickup_location"`
  Offer           OfferSummary       `json:"offer"`
}

// PublicationDetail adds the offer's products and every participant with
// its orders. This is a read projection only.
type PublicationDetail struct {
  ID              uuid.UUID             `json:"id"`
  ExposureEndDate time.Time             `json:"exposure_end_date"`
  PaymentEndDate  time.Time             `json:"payment_end_date"`
  Stage           types.Stage           `json:"stage"`
  PickupLocation  PickupLocationView    `json:"pickup_location"`
  Offer           OfferWithProducts     `json:"offer"`
  Participants    []ParticipationResult `json:"participants"`
}

func BuildPublicationSummary(p *types.Publication) PublicationSummary {
  summary := PublicationSummary{
    ID:              p.ID,
    ExposureEndDate: p.ExposureEndDate,
    PaymentEndDate:  p.PaymentEndDate,
    Stage:           p.Stage,
    PickupLocation:  BuildPickupLocationView(p.PickupLocation),
  }
  if p.Offer != nil {
    summary.Offer = BuildOfferSummary(p.Offer)
  }
  return summary
}

func BuildPublicationDetail(p *types.Publication, participants []*types.Participant) PublicationDetail {
  detail := PublicationDetail{
    ID:              p.ID,
    ExposureEndDate: p.ExposureEndDate,
    PaymentEndDate:  p.PaymentEndDate,
    Stage:           p.Stage,
    PickupLocation:  BuildPickupLocationView(p.PickupLocation),
    Participants:    make([]ParticipationResult, 0, len(participants)),
  }
  if p.Offer != nil {
    detail.Offer = BuildOfferWithProducts(p.Offer)
  }
  for _, participant := range participants {
    detail.Participants = append(detail.Participants, BuildParticipationResult(participant, p))
  }
  return detail
}
