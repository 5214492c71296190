package types

import (
  "time"

  "github.com/google/uuid"
  "github.com/shopspring/decimal"
)

// Participant is one client's order placed against a publication. The
// composite unique index makes the storage layer reject a second
// participation for the same (client, publication) pair, which closes the
// check-then-insert race in the creation workflow.
type Participant struct {
  ID                uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
  TotalValue        decimal.Decimal `gorm:"column:valor_total;type:decimal(12,2);not null" json:"total_value"`
  TotalProductCount int             `gorm:"column:qtd_total_produtos;not null" json:"total_product_count"`
  Paid              bool            `gorm:"column:status_pago;not null;default:false" json:"paid"`
  ParticipatedAt    time.Time       `gorm:"column:data_participacao;not null" json:"participated_at"`
  ClientID          uuid.UUID       `gorm:"type:uuid;column:id_cliente;not null;uniqueIndex:idx_participante_cliente_publicacao" json:"client_id"`
  Client            *Client         `gorm:"foreignKey:ClientID;references:ID" json:"client,omitempty"`
  PublicationID     uuid.UUID       `gorm:"type:uuid;column:id_publicacao;not null;uniqueIndex:idx_participante_cliente_publicacao" json:"publication_id"`
  Orders            []Order         `gorm:"foreignKey:ParticipantID;references:ID" json:"orders,omitempty"`
  CreatedAt         time.Time       `gorm:"not null" json:"created_at"`
  UpdatedAt         time.Time       `gorm:"not null" json:"updated_at"`
}

func (Participant) TableName() string {
  return "participantes"
}

// AppendOrder attaches the order to the owned list and updates the cached
// totals incrementally. Orders are append-only within a single creation, so
// the delta update keeps the invariant without rescanning.
func (p *Participant) AppendOrder(o *Order) {
  o.ParticipantID = p.ID
  p.Orders = append(p.Orders, *o)
  p.TotalValue = p.TotalValue.Add(o.ItemTotal)
  p.TotalProductCount += o.Quantity
}
