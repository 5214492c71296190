package types

import (
  "time"

  "github.com/google/uuid"
)

type Seller struct {
  ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  Name      string    `gorm:"column:nome;not null" json:"name"`
  Email     string    `gorm:"column:email;uniqueIndex;not null" json:"email"`
  Phone     string    `gorm:"column:telefone;not null" json:"phone"`
  Password  string    `gorm:"column:senha;not null" json:"-"`
  RG        string    `gorm:"column:rg" json:"rg"`
  CEP       string    `gorm:"column:cep" json:"cep"`
  PixKey    string    `gorm:"column:chave_pix" json:"pix_key"`
  Offers    []Offer   `gorm:"foreignKey:SellerID;references:ID" json:"offers,omitempty"`
  CreatedAt time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Seller) TableName() string {
  return "vendedores"
}
