package types

import (
  "time"

  "github.com/google/uuid"
)

type PickupLocation struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  Name      string    `gorm:"column:nome;not null" json:"name"`
  CEP       string    `gorm:"column:cep;not null" json:"cep"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (PickupLocation) TableName() string {
  return "locais_de_retirada"
}
