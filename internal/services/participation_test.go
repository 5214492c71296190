package services

import (
  "context"
  "errors"
  "testing"
  "time"

  "github.com/google/uuid"
  "github.com/shopspring/decimal"
  "gorm.io/gorm"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

func TestCreateParticipationComputesTotals(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{
    {name: "Mel", price: "10.00", stock: 5},
    {name: "Queijo", price: "2.50", stock: 8},
  })
  publication := env.seedPublication(t, offer, env.seedPickup(t))
  client := env.seedClient(t, "Ana")

  honey := env.productByName(t, offer, "Mel")
  cheese := env.productByName(t, offer, "Queijo")

  result, err := env.participationService.CreateParticipation(ctx, CreateParticipationInput{
    ClientID:      client.ID,
    PublicationID: publication.ID,
    Items: []OrderItemInput{
      {ProductID: honey.ID, Quantity: 1},
      {ProductID: cheese.ID, Quantity: 2},
    },
  })
  if err != nil {
    t.Fatalf("CreateParticipation: %v", err)
  }

  if want := decimal.RequireFromString("15.00"); !result.TotalValue.Equal(want) {
    t.Errorf("total value = %s, want %s", result.TotalValue, want)
  }
  if result.TotalProductCount != 3 {
    t.Errorf("total product count = %d, want 3", result.TotalProductCount)
  }
  if result.Paid {
    t.Error("new participation must not be marked paid")
  }
  if result.ParticipatedAt.IsZero() {
    t.Error("participation timestamp not set")
  }
  if len(result.Orders) != 2 {
    t.Fatalf("orders = %d, want 2", len(result.Orders))
  }
  if !result.Orders[0].UnitPrice.Equal(honey.Price) {
    t.Errorf("first order unit price = %s, want %s", result.Orders[0].UnitPrice, honey.Price)
  }
  if want := decimal.RequireFromString("5.00"); !result.Orders[1].ItemTotal.Equal(want) {
    t.Errorf("second order item total = %s, want %s", result.Orders[1].ItemTotal, want)
  }
  if result.Publication.OfferTitle != offer.Title {
    t.Errorf("publication brief titled %q, want %q", result.Publication.OfferTitle, offer.Title)
  }
  if result.Client.Name != "Ana" {
    t.Errorf("client name = %q, want Ana", result.Client.Name)
  }

  // Stock is a validation ceiling during exposure, not a reservation.
  reloaded, err := env.offerRepo.GetByIDWithProducts(ctx, nil, offer.ID)
  if err != nil {
    t.Fatalf("reload offer: %v", err)
  }
  for i := range reloaded.Products {
    var before int
    switch reloaded.Products[i].ID {
    case honey.ID:
      before = 5
    case cheese.ID:
      before = 8
    default:
      t.Fatalf("unexpected product %s", reloaded.Products[i].ID)
    }
    if reloaded.Products[i].StockQuantity != before {
      t.Errorf("product %s stock = %d, want %d", reloaded.Products[i].Name, reloaded.Products[i].StockQuantity, before)
    }
  }
}

func TestCreateParticipationRejectsSecondForSameClient(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{{name: "Café", price: "18.00", stock: 10}})
  publication := env.seedPublication(t, offer, env.seedPickup(t))
  client := env.seedClient(t, "Bruno")
  coffee := env.productByName(t, offer, "Café")

  input := CreateParticipationInput{
    ClientID:      client.ID,
    PublicationID: publication.ID,
    Items:         []OrderItemInput{{ProductID: coffee.ID, Quantity: 1}},
  }
  if _, err := env.participationService.CreateParticipation(ctx, input); err != nil {
    t.Fatalf("first participation: %v", err)
  }
  _, err := env.participationService.CreateParticipation(ctx, input)
  if !apierr.Is(err, apierr.CodeDuplicateParticipation) {
    t.Fatalf("second participation err = %v, want %s", err, apierr.CodeDuplicateParticipation)
  }
}

func TestParticipantUniqueIndexBackstopsDuplicates(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{{name: "Ovos", price: "12.00", stock: 20}})
  publication := env.seedPublication(t, offer, env.seedPickup(t))
  client := env.seedClient(t, "Carla")
  eggs := env.productByName(t, offer, "Ovos")

  if _, err := env.participationService.CreateParticipation(ctx, CreateParticipationInput{
    ClientID:      client.ID,
    PublicationID: publication.ID,
    Items:         []OrderItemInput{{ProductID: eggs.ID, Quantity: 1}},
  }); err != nil {
    t.Fatalf("first participation: %v", err)
  }

  // Bypass the service pre-check the way a concurrent request would and
  // hit the index directly.
  duplicate := &types.Participant{
    ID:             uuid.New(),
    TotalValue:     decimal.Zero,
    ParticipatedAt: time.Now().UTC(),
    ClientID:       client.ID,
    PublicationID:  publication.ID,
  }
  _, err := env.participantRepo.CreateGraph(ctx, nil, duplicate)
  if !errors.Is(err, gorm.ErrDuplicatedKey) {
    t.Fatalf("direct duplicate insert err = %v, want gorm.ErrDuplicatedKey", err)
  }
}

func TestCreateParticipationRejectsForeignProductAtomically(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{{name: "Pão", price: "8.00", stock: 4}})
  otherOffer := env.seedOffer(t, seller, []productSpec{{name: "Leite", price: "6.00", stock: 9}})
  publication := env.seedPublication(t, offer, env.seedPickup(t))
  client := env.seedClient(t, "Davi")

  bread := env.productByName(t, offer, "Pão")
  milk := env.productByName(t, otherOffer, "Leite")

  _, err := env.participationService.CreateParticipation(ctx, CreateParticipationInput{
    ClientID:      client.ID,
    PublicationID: publication.ID,
    Items: []OrderItemInput{
      {ProductID: bread.ID, Quantity: 1},
      {ProductID: milk.ID, Quantity: 1},
    },
  })
  if !apierr.Is(err, apierr.CodeProductNotInOffer) {
    t.Fatalf("err = %v, want %s", err, apierr.CodeProductNotInOffer)
  }

  assertNoParticipants(t, env, publication.ID)
}

func TestCreateParticipationRejectsExcessQuantityAtomically(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{
    {name: "Alface", price: "3.00", stock: 10},
    {name: "Tomate", price: "7.00", stock: 2},
  })
  publication := env.seedPublication(t, offer, env.seedPickup(t))
  client := env.seedClient(t, "Elisa")

  lettuce := env.productByName(t, offer, "Alface")
  tomato := env.productByName(t, offer, "Tomate")

  // A valid first line must not survive the invalid second one.
  _, err := env.participationService.CreateParticipation(ctx, CreateParticipationInput{
    ClientID:      client.ID,
    PublicationID: publication.ID,
    Items: []OrderItemInput{
      {ProductID: lettuce.ID, Quantity: 2},
      {ProductID: tomato.ID, Quantity: 3},
    },
  })
  if !apierr.Is(err, apierr.CodeInsufficientStock) {
    t.Fatalf("err = %v, want %s", err, apierr.CodeInsufficientStock)
  }

  assertNoParticipants(t, env, publication.ID)
}

func TestCreateParticipationInputValidation(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{{name: "Banana", price: "4.50", stock: 6}})
  publication := env.seedPublication(t, offer, env.seedPickup(t))
  client := env.seedClient(t, "Fabio")
  banana := env.productByName(t, offer, "Banana")

  tests := []struct {
    name  string
    input CreateParticipationInput
    code  string
  }{
    {
      name:  "no items",
      input: CreateParticipationInput{ClientID: client.ID, PublicationID: publication.ID},
      code:  apierr.CodeInvalidInput,
    },
    {
      name: "zero quantity",
      input: CreateParticipationInput{
        ClientID:      client.ID,
        PublicationID: publication.ID,
        Items:         []OrderItemInput{{ProductID: banana.ID, Quantity: 0}},
      },
      code: apierr.CodeInvalidInput,
    },
    {
      name: "unknown client",
      input: CreateParticipationInput{
        ClientID:      uuid.New(),
        PublicationID: publication.ID,
        Items:         []OrderItemInput{{ProductID: banana.ID, Quantity: 1}},
      },
      code: apierr.CodeNotFound,
    },
    {
      name: "unknown publication",
      input: CreateParticipationInput{
        ClientID:      client.ID,
        PublicationID: uuid.New(),
        Items:         []OrderItemInput{{ProductID: banana.ID, Quantity: 1}},
      },
      code: apierr.CodeNotFound,
    },
  }
  for _, tc := range tests {
    t.Run(tc.name, func(t *testing.T) {
      _, err := env.participationService.CreateParticipation(ctx, tc.input)
      if !apierr.Is(err, tc.code) {
        t.Fatalf("err = %v, want %s", err, tc.code)
      }
    })
  }
}

func TestParticipationKeepsFrozenPriceAfterCatalogChange(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{{name: "Abóbora", price: "9.90", stock: 7}})
  publication := env.seedPublication(t, offer, env.seedPickup(t))
  client := env.seedClient(t, "Gilda")
  pumpkin := env.productByName(t, offer, "Abóbora")

  created, err := env.participationService.CreateParticipation(ctx, CreateParticipationInput{
    ClientID:      client.ID,
    PublicationID: publication.ID,
    Items:         []OrderItemInput{{ProductID: pumpkin.ID, Quantity: 2}},
  })
  if err != nil {
    t.Fatalf("CreateParticipation: %v", err)
  }

  if err := env.db.Model(&types.Product{}).
    Where("id = ?", pumpkin.ID).
    Update("preco", decimal.RequireFromString("14.00")).Error; err != nil {
    t.Fatalf("reprice product: %v", err)
  }

  reloaded, err := env.participationService.GetByID(ctx, created.ID)
  if err != nil {
    t.Fatalf("GetByID: %v", err)
  }
  if want := decimal.RequireFromString("9.90"); !reloaded.Orders[0].UnitPrice.Equal(want) {
    t.Errorf("unit price after reprice = %s, want frozen %s", reloaded.Orders[0].UnitPrice, want)
  }
  if want := decimal.RequireFromString("19.80"); !reloaded.TotalValue.Equal(want) {
    t.Errorf("total after reprice = %s, want frozen %s", reloaded.TotalValue, want)
  }
}

func TestListByClientReturnsOnlyOwnParticipations(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{{name: "Couve", price: "2.00", stock: 30}})
  publication := env.seedPublication(t, offer, env.seedPickup(t))
  kale := env.productByName(t, offer, "Couve")

  ana := env.seedClient(t, "Ana")
  bia := env.seedClient(t, "Bia")
  for _, client := range []*types.Client{ana, bia} {
    if _, err := env.participationService.CreateParticipation(ctx, CreateParticipationInput{
      ClientID:      client.ID,
      PublicationID: publication.ID,
      Items:         []OrderItemInput{{ProductID: kale.ID, Quantity: 1}},
    }); err != nil {
      t.Fatalf("participation for %s: %v", client.Name, err)
    }
  }

  mine, err := env.participationService.ListByClient(ctx, ana.ID)
  if err != nil {
    t.Fatalf("ListByClient: %v", err)
  }
  if len(mine) != 1 {
    t.Fatalf("participations = %d, want 1", len(mine))
  }
  if mine[0].Client.ID != ana.ID {
    t.Errorf("participation belongs to %s, want %s", mine[0].Client.ID, ana.ID)
  }

  all, err := env.participationService.List(ctx)
  if err != nil {
    t.Fatalf("List: %v", err)
  }
  if len(all) != 2 {
    t.Fatalf("all participations = %d, want 2", len(all))
  }
}

func assertNoParticipants(t *testing.T, env *testEnv, publicationID uuid.UUID) {
  t.Helper()
  participants, err := env.participantRepo.ListByPublication(context.Background(), nil, publicationID)
  if err != nil {
    t.Fatalf("list participants: %v", err)
  }
  if len(participants) != 0 {
    t.Fatalf("found %d participants, want none", len(participants))
  }
  var orderCount int64
  if err := env.db.Model(&types.Order{}).Count(&orderCount).Error; err != nil {
    t.Fatalf("count orders: %v", err)
  }
  if orderCount != 0 {
    t.Fatalf("found %d orders, want none", orderCount)
  }
}
