package types

import (
  "time"

  "github.com/google/uuid"
  "github.com/shopspring/decimal"
)

// Product is owned by exactly one offer; the offer side holds the list, the
// product side holds only the parent id. The category is a shared reference.
type Product struct {
  ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  Name          string          `gorm:"column:nome;not null" json:"name"`
  Unit          Measure         `gorm:"column:unidade_medida;not null" json:"unit"`
  MeasureAmount decimal.Decimal `gorm:"column:medida;type:decimal(10,3);not null" json:"measure_amount"`
  Price         decimal.Decimal `gorm:"column:preco;type:decimal(10,2);not null" json:"price"`
  StockQuantity int             `gorm:"column:qtd_estoque;not null" json:"stock_quantity"`
  CategoryID    uuid.UUID       `gorm:"type:uuid;column:id_categoria;not null" json:"category_id"`
  Category      *Category       `gorm:"foreignKey:CategoryID;references:ID" json:"category,omitempty"`
  OfferID       uuid.UUID       `gorm:"type:uuid;column:id_oferta;not null;index" json:"offer_id"`
  CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string {
  return "produtos"
}
