package services

import (
  "context"
  "testing"
  "time"

  "github.com/feiracoletiva/feira-backend/internal/apierr"
  "github.com/feiracoletiva/feira-backend/internal/types"
)

func TestCreatePublicationFlipsOfferAvailability(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{{name: "Goiaba", price: "6.00", stock: 8}})
  pickup := env.seedPickup(t)

  summary, err := env.publicationService.Create(ctx, CreatePublicationInput{
    OfferID:          offer.ID,
    PickupLocationID: pickup.ID,
    ExposureEndDate:  time.Now().UTC().Add(48 * time.Hour),
    PaymentEndDate:   time.Now().UTC().Add(96 * time.Hour),
  })
  if err != nil {
    t.Fatalf("Create publication: %v", err)
  }
  if summary.Stage != types.StageExposure {
    t.Errorf("stage = %s, want %s", summary.Stage, types.StageExposure)
  }
  if summary.PickupLocation.Name != pickup.Name {
    t.Errorf("pickup name = %q, want %q", summary.PickupLocation.Name, pickup.Name)
  }

  reloaded, err := env.offerRepo.GetByID(ctx, nil, offer.ID)
  if err != nil {
    t.Fatalf("reload offer: %v", err)
  }
  if reloaded.Available {
    t.Error("published offer must be unavailable")
  }

  // The same offer cannot fuel a second open publication.
  _, err = env.publicationService.Create(ctx, CreatePublicationInput{
    OfferID:          offer.ID,
    PickupLocationID: pickup.ID,
    ExposureEndDate:  time.Now().UTC().Add(48 * time.Hour),
    PaymentEndDate:   time.Now().UTC().Add(96 * time.Hour),
  })
  if !apierr.Is(err, apierr.CodeOfferUnavailable) {
    t.Fatalf("second publication err = %v, want %s", err, apierr.CodeOfferUnavailable)
  }
  all, err := env.publicationService.List(ctx)
  if err != nil {
    t.Fatalf("List: %v", err)
  }
  if len(all) != 1 {
    t.Fatalf("publications = %d, want 1", len(all))
  }
  if again, err := env.offerRepo.GetByID(ctx, nil, offer.ID); err != nil || again.Available {
    t.Fatalf("offer availability after failed publish: available=%v err=%v", again.Available, err)
  }
}

func TestDeletePublicationRestoresOfferAvailability(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{{name: "Milho", price: "2.50", stock: 40}})
  pickup := env.seedPickup(t)
  publication := env.seedPublication(t, offer, pickup)
  client := env.seedClient(t, "Hugo")
  corn := env.productByName(t, offer, "Milho")

  if _, err := env.participationService.CreateParticipation(ctx, CreateParticipationInput{
    ClientID:      client.ID,
    PublicationID: publication.ID,
    Items:         []OrderItemInput{{ProductID: corn.ID, Quantity: 5}},
  }); err != nil {
    t.Fatalf("participation: %v", err)
  }

  if err := env.publicationService.Delete(ctx, publication.ID); err != nil {
    t.Fatalf("Delete publication: %v", err)
  }

  if _, err := env.publicationService.GetByID(ctx, publication.ID); !apierr.Is(err, apierr.CodeNotFound) {
    t.Fatalf("get deleted publication err = %v, want %s", err, apierr.CodeNotFound)
  }
  participants, err := env.participantRepo.ListByPublication(ctx, nil, publication.ID)
  if err != nil {
    t.Fatalf("list participants: %v", err)
  }
  if len(participants) != 0 {
    t.Fatalf("participants after delete = %d, want 0", len(participants))
  }

  reloaded, err := env.offerRepo.GetByID(ctx, nil, offer.ID)
  if err != nil {
    t.Fatalf("reload offer: %v", err)
  }
  if !reloaded.Available {
    t.Error("offer must be available again after its publication is deleted")
  }
}

func TestGetWithParticipantsBuildsSellerView(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  seller := env.seedSeller(t)
  offer := env.seedOffer(t, seller, []productSpec{
    {name: "Feijão", price: "11.00", stock: 25},
    {name: "Arroz", price: "7.00", stock: 25},
  })
  publication := env.seedPublication(t, offer, env.seedPickup(t))
  beans := env.productByName(t, offer, "Feijão")
  rice := env.productByName(t, offer, "Arroz")

  for _, name := range []string{"Iara", "João"} {
    client := env.seedClient(t, name)
    if _, err := env.participationService.CreateParticipation(ctx, CreateParticipationInput{
      ClientID:      client.ID,
      PublicationID: publication.ID,
      Items: []OrderItemInput{
        {ProductID: beans.ID, Quantity: 1},
        {ProductID: rice.ID, Quantity: 2},
      },
    }); err != nil {
      t.Fatalf("participation for %s: %v", name, err)
    }
  }

  detail, err := env.publicationService.GetWithParticipants(ctx, publication.ID)
  if err != nil {
    t.Fatalf("GetWithParticipants: %v", err)
  }
  if len(detail.Participants) != 2 {
    t.Fatalf("participants = %d, want 2", len(detail.Participants))
  }
  if len(detail.Offer.Products) != 2 {
    t.Fatalf("offer products = %d, want 2", len(detail.Offer.Products))
  }
  for _, participant := range detail.Participants {
    if participant.Client.Name == "" {
      t.Error("participant lost its client")
    }
    if len(participant.Orders) != 2 {
      t.Errorf("participant %s orders = %d, want 2", participant.ID, len(participant.Orders))
    }
    for _, order := range participant.Orders {
      if order.Product.Name == "" {
        t.Errorf("order %s lost its product snapshot", order.ID)
      }
    }
  }
}

func TestListBySellerFiltersPublications(t *testing.T) {
  env := newTestEnv(t)
  ctx := context.Background()

  sellerA := env.seedSeller(t)
  sellerB := env.seedSeller(t)
  pickup := env.seedPickup(t)
  offerA := env.seedOffer(t, sellerA, []productSpec{{name: "Manga", price: "5.00", stock: 10}})
  offerB := env.seedOffer(t, sellerB, []productSpec{{name: "Caju", price: "9.00", stock: 10}})
  env.seedPublication(t, offerA, pickup)
  env.seedPublication(t, offerB, pickup)

  publications, err := env.publicationService.ListBySeller(ctx, sellerA.ID)
  if err != nil {
    t.Fatalf("ListBySeller: %v", err)
  }
  if len(publications) != 1 {
    t.Fatalf("publications = %d, want 1", len(publications))
  }
  if publications[0].Offer.ID != offerA.ID {
    t.Errorf("publication offer = %s, want %s", publications[0].Offer.ID, offerA.ID)
  }
}
