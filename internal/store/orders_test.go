package store

import (
	"context"
	"database/sql"
	"testing"

	"github.com/halcyonarts/gallery/internal/db"
	"github.com/halcyonarts/gallery/internal/model"
)

func createTestArtwork(t *testing.T, database *sql.DB, slug string) *model.Artwork {
	t.Helper()
	artwork, err := CreateArtwork(context.Background(), database, testArtwork(slug, slug))
	if err != nil {
		t.Fatalf("creating fixture artwork: %v", err)
	}
	return artwork
}

func TestCreateOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	artwork := createTestArtwork(t, database, "morning-tide")

	order, err := CreateOrder(ctx, database, model.Order{
		ArtworkID:      artwork.ID,
		PaymentMethod:  "card",
		PaymentStatus:  model.PaymentAwaiting,
		ShippingStatus: model.ShippingCreated,
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if order.Reference == "" {
		t.Error("expected a generated order reference")
	}
	if order.PaymentStatus != model.PaymentAwaiting {
		t.Errorf("expected payment status 'awaiting_payment', got %q", order.PaymentStatus)
	}
	if order.UserID != nil {
		t.Errorf("expected nil user id, got %v", *order.UserID)
	}
}

func TestOrderReferencesAreUnique(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	artwork := createTestArtwork(t, database, "morning-tide")

	first, _ := CreateOrder(ctx, database, model.Order{
		ArtworkID: artwork.ID, PaymentMethod: "card",
		PaymentStatus: model.PaymentAwaiting, ShippingStatus: model.ShippingCreated,
	})
	second, _ := CreateOrder(ctx, database, model.Order{
		ArtworkID: artwork.ID, PaymentMethod: "card",
		PaymentStatus: model.PaymentAwaiting, ShippingStatus: model.ShippingCreated,
	})

	if first.Reference == second.Reference {
		t.Errorf("expected distinct references, both %q", first.Reference)
	}
}

func TestListOrdersNewestFirst(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	artwork := createTestArtwork(t, database, "morning-tide")

	first, _ := CreateOrder(ctx, database, model.Order{
		ArtworkID: artwork.ID, PaymentMethod: "card",
		PaymentStatus: model.PaymentAwaiting, ShippingStatus: model.ShippingCreated,
	})
	second, _ := CreateOrder(ctx, database, model.Order{
		ArtworkID: artwork.ID, PaymentMethod: "cashapp",
		PaymentStatus: model.PaymentAwaiting, ShippingStatus: model.ShippingCreated,
	})

	orders, err := ListOrders(ctx, database, 0)
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Errorf("expected newest first, got ids %d, %d", orders[0].ID, orders[1].ID)
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	artwork := createTestArtwork(t, database, "morning-tide")

	order, _ := CreateOrder(ctx, database, model.Order{
		ArtworkID: artwork.ID, PaymentMethod: "card",
		PaymentStatus: model.PaymentAwaiting, ShippingStatus: model.ShippingCreated,
	})

	paid := model.PaymentPaid
	tracking := "TRACK-123"
	updated, err := UpdateOrderStatus(ctx, database, order.ID, OrderStatusUpdate{
		PaymentStatus:  &paid,
		TrackingNumber: &tracking,
	})
	if err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if updated.PaymentStatus != model.PaymentPaid {
		t.Errorf("expected payment status 'paid', got %q", updated.PaymentStatus)
	}
	if updated.TrackingNumber != "TRACK-123" {
		t.Errorf("expected tracking number set, got %q", updated.TrackingNumber)
	}
	if updated.ShippingStatus != model.ShippingCreated {
		t.Errorf("expected shipping status unchanged, got %q", updated.ShippingStatus)
	}

	missing, err := UpdateOrderStatus(ctx, database, 9999, OrderStatusUpdate{PaymentStatus: &paid})
	if err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown order, got %+v", missing)
	}
}

func TestDeleteOrder(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	artwork := createTestArtwork(t, database, "morning-tide")

	order, _ := CreateOrder(ctx, database, model.Order{
		ArtworkID: artwork.ID, PaymentMethod: "card",
		PaymentStatus: model.PaymentAwaiting, ShippingStatus: model.ShippingCreated,
	})

	deleted, err := DeleteOrder(ctx, database, order.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteOrder: deleted=%v err=%v", deleted, err)
	}

	again, _ := DeleteOrder(ctx, database, order.ID)
	if again {
		t.Error("expected false when deleting a missing order")
	}
}
