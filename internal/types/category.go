package types

import (
  "time"

  "github.com/google/uuid"
)

type Category struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  Name      string    `gorm:"column:nome;uniqueIndex;not null" json:"name"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Category) TableName() string {
  return "categorias"
}
