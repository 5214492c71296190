package dto

import (
  "github.com/google/uuid"

  "github.com/feiracoletiva/feira-backend/internal/types"
)

// ClientSummary is the client slice exposed inside participation results.
type ClientSummary struct {
  ID    uuid.UUID `json:"id"`
  Name  string    `json:"name"`
  Email string    `json:"email"`
  Phone string    `json:"phone"`
}

// SellerBrief is the seller slice attached to offer read models: enough to
// contact and pay the seller, nothing more.
type SellerBrief struct {
  ID     uuid.UUID `json:"id"`
  Phone  string    `json:"phone"`
  PixKey string    `json:"pix_key"`
}

type PickupLocationView struct {
  ID   uuid.UUID `json:"id"`
  Name string    `json:"name"`
  CEP  string    `json:"cep"`
}

func BuildClientSummary(c *types.Client) ClientSummary {
  return ClientSummary{ID: c.ID, Name: c.Name, Email: c.Email, Phone: c.Phone}
}

func BuildSellerBrief(s *types.Seller) SellerBrief {
  if s == nil {
    return SellerBrief{}
  }
  return SellerBrief{ID: s.ID, Phone: s.Phone, PixKey: s.PixKey}
}

func BuildPickupLocationView(l *types.PickupLocation) PickupLocationView {
  if l == nil {
    return PickupLocationView{}
  }
  return PickupLocationView{ID: l.ID, Name: l.Name, CEP: l.CEP}
}
