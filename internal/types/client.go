package types

import (
  "time"

  "github.com/google/uuid"
)

type Client struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  Name      string    `gorm:"column:nome;not null" json:"name"`
  Email     string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
  Phone     string    `gorm:"column:telefone;not null" json:"phone"`
  Password  string    `gorm:"column:senha;not null" json:"-"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Client) TableName() string {
  return "clientes"
}
