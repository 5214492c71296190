package types

import (
  "time"

  "github.com/google/uuid"
)

// Publication is a time-boxed exposure of one offer at one pickup location.
// It exclusively owns its participants.
type Publication struct {
  ID               uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  ExposureEndDate  time.Time       `gorm:"column:dt_final_exposicao;not null" json:"exposure_end_date"`
  PaymentEndDate   time.Time       `gorm:"column:dt_final_pagamento;not null" json:"payment_end_date"`
  Stage            Stage           `gorm:"column:etapa;not null" json:"stage"`
  PickupLocationID uuid.UUID       `gorm:"type:uuid;column:id_local_de_retirada;not null" json:"pickup_location_id"`
  PickupLocation   *PickupLocation `gorm:"foreignKey:PickupLocationID;references:ID" json:"pickup_location,omitempty"`
  OfferID          uuid.UUID       `gorm:"type:uuid;column:id_oferta;not null;index" json:"offer_id"`
  Offer            *Offer          `gorm:"foreignKey:OfferID;references:ID" json:"offer,omitempty"`
  Participants     []Participant   `gorm:"foreignKey:PublicationID;references:ID" json:"participants,omitempty"`
  CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt        time.Time       `gorm:"not null" json:"updated_at"`
}

func (Publication) TableName() string {
  return "publicacoes"
}
