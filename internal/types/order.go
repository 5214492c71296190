package types

import (
  "time"

  "github.com/google/uuid"
  "github.com/shopspring/decimal"
)

// Order is one line item within a participation. UnitPrice is copied from
// the product at creation time and never follows later price changes.
type Order struct {
  ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  ParticipantID uuid.UUID       `gorm:"type:uuid;column:id_participante;not null;index" json:"participant_id"`
  ProductID     uuid.UUID       `gorm:"type:uuid;column:id_produto;not null" json:"product_id"`
  Product       *Product        `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
  Quantity      int             `gorm:"column:qtd_produto;not null" json:"quantity"`
  UnitPrice     decimal.Decimal `gorm:"column:preco_unitario_no_pedido;type:decimal(10,2);not null" json:"unit_price"`
  ItemTotal     decimal.Decimal `gorm:"column:valor_total_item;type:decimal(12,2);not null" json:"item_total"`
  CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`
}

func (Order) TableName() string {
  return "pedidos"
}

// NewOrder freezes the product's current price and computes the line total
// with decimal arithmetic.
func NewOrder(product *Product, quantity int) *Order {
  return &Order{
    ID:        uuid.New(),
    ProductID: product.ID,
    Quantity:  quantity,
    UnitPrice: product.Price,
    ItemTotal: product.Price.Mul(decimal.NewFromInt(int64(quantity))),
  }
}
