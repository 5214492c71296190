package types

import (
  "time"

  "github.com/google/uuid"
)

// Offer is a seller's bundle of products published for sale. It exclusively
// owns its product list; TotalStockQuantity is a cached aggregate that must
// equal the sum of the owned products' stock after every list mutation.
type Offer struct {
  ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
  Title              string    `gorm:"column:titulo;not null" json:"title"`
  Description        string    `gorm:"column:descricao" json:"description"`
  TotalStockQuantity int       `gorm:"column:qtd_estoque_total;not null;default:0" json:"total_stock_quantity"`
  Available          bool      `gorm:"column:status_disponibilidade;not null;default:true" json:"available"`
  SellerID           uuid.UUID `gorm:"type:uuid;column:id_vendedor;not null;index" json:"seller_id"`
  Seller             *Seller   `gorm:"foreignKey:SellerID;references:ID" json:"seller,omitempty"`
  Products           []Product `gorm:"foreignKey:OfferID;references:ID" json:"products,omitempty"`
  CreatedAt          time.Time `gorm:"not null" json:"created_at"`
  UpdatedAt          time.Time `gorm:"not null" json:"updated_at"`
}

func (Offer) TableName() string {
  return "ofertas"
}

// RecalculateTotalStock re-derives the cached total from the product list.
// Full resum is the one maintenance strategy used for this aggregate.
func (o *Offer) RecalculateTotalStock() int {
  total := 0
  for i := range o.Products {
    total += o.Products[i].StockQuantity
  }
  o.TotalStockQuantity = total
  return total
}

// AddProduct appends the product to the owned list, sets the parent id and
// re-derives the cached total.
func (o *Offer) AddProduct(p *Product) {
  p.OfferID = o.ID
  o.Products = append(o.Products, *p)
  o.RecalculateTotalStock()
}

// RemoveProduct detaches the product with the given id from the owned list
// and re-derives the cached total. Returns false when the id is not owned.
func (o *Offer) RemoveProduct(productID uuid.UUID) bool {
  for i := range o.Products {
    if o.Products[i].ID == productID {
      o.Products = append(o.Products[:i], o.Products[i+1:]...)
      o.RecalculateTotalStock()
      return true
    }
  }
  return false
}

// ProductByID resolves a product inside this offer's owned set only.
func (o *Offer) ProductByID(productID uuid.UUID) *Product {
  for i := range o.Products {
    if o.Products[i].ID == productID {
      return &o.Products[i]
    }
  }
  return nil
}
