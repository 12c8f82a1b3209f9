package store

import (
	"context"
	"testing"

	"github.com/halcyonarts/gallery/internal/db"
	"github.com/halcyonarts/gallery/internal/model"
)

func testArtwork(title, slug string) model.Artwork {
	return model.Artwork{
		Title:            title,
		Slug:             slug,
		Images:           []string{"https://cdn.example.com/" + slug + ".jpg"},
		Price:            450,
		Status:           model.ArtworkAvailable,
		Size:             model.SizeMedium,
		Tone:             model.ToneBalanced,
		EditionCount:     1,
		ShowInCollection: true,
	}
}

func TestCreateAndGetArtwork(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, err := CreateArtwork(ctx, database, testArtwork("Morning Tide", "morning-tide"))
	if err != nil {
		t.Fatalf("CreateArtwork: %v", err)
	}
	if created.Title != "Morning Tide" {
		t.Errorf("expected title 'Morning Tide', got %q", created.Title)
	}
	if created.Status != model.ArtworkAvailable {
		t.Errorf("expected status 'Available', got %q", created.Status)
	}
	if len(created.Images) != 1 {
		t.Errorf("expected 1 image, got %d", len(created.Images))
	}

	got, err := GetArtwork(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("GetArtwork: %v", err)
	}
	if got == nil || got.Slug != "morning-tide" {
		t.Errorf("expected slug 'morning-tide', got %+v", got)
	}
}

func TestCreateArtworkDuplicateSlug(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateArtwork(ctx, database, testArtwork("Morning Tide", "morning-tide")); err != nil {
		t.Fatalf("CreateArtwork: %v", err)
	}

	_, err := CreateArtwork(ctx, database, testArtwork("Morning Tide II", "morning-tide"))
	if err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestGetArtworkBySlugOrID(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := CreateArtwork(ctx, database, testArtwork("Morning Tide", "morning-tide"))

	bySlug, err := GetArtworkBySlugOrID(ctx, database, "morning-tide")
	if err != nil || bySlug == nil {
		t.Fatalf("expected match by slug, got %v, %v", bySlug, err)
	}

	byID, err := GetArtworkBySlugOrID(ctx, database, "1")
	if err != nil || byID == nil || byID.ID != created.ID {
		t.Fatalf("expected match by id, got %v, %v", byID, err)
	}

	missing, err := GetArtworkBySlugOrID(ctx, database, "no-such-slug")
	if err != nil {
		t.Fatalf("GetArtworkBySlugOrID: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown slug, got %+v", missing)
	}
}

func TestListArtworksVisibilityDefault(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateArtwork(ctx, database, testArtwork("Visible", "visible"))
	hidden := testArtwork("Hidden", "hidden")
	hidden.ShowInCollection = false
	CreateArtwork(ctx, database, hidden)

	// Default: only visible items.
	visible, err := ListArtworks(ctx, database, ArtworkFilter{})
	if err != nil {
		t.Fatalf("ListArtworks: %v", err)
	}
	if len(visible) != 1 || visible[0].Slug != "visible" {
		t.Errorf("expected only the visible artwork, got %+v", visible)
	}

	// includeHidden lifts the default filter.
	all, err := ListArtworks(ctx, database, ArtworkFilter{IncludeHidden: true})
	if err != nil {
		t.Fatalf("ListArtworks: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("expected 2 artworks with includeHidden, got %d", len(all))
	}

	// An explicit visibility request overrides the default.
	falseVal := false
	hiddenOnly, err := ListArtworks(ctx, database, ArtworkFilter{ShowInCollection: &falseVal})
	if err != nil {
		t.Fatalf("ListArtworks: %v", err)
	}
	if len(hiddenOnly) != 1 || hiddenOnly[0].Slug != "hidden" {
		t.Errorf("expected only the hidden artwork, got %+v", hiddenOnly)
	}
}

func TestListArtworksFilters(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	small := testArtwork("Small Warm", "small-warm")
	small.Size = model.SizeSmall
	small.Tone = model.ToneWarm
	small.Price = 100
	CreateArtwork(ctx, database, small)

	large := testArtwork("Large Cool", "large-cool")
	large.Size = model.SizeLarge
	large.Tone = model.ToneCool
	large.Price = 900
	large.Status = model.ArtworkSold
	CreateArtwork(ctx, database, large)

	bySize, _ := ListArtworks(ctx, database, ArtworkFilter{Size: model.SizeSmall})
	if len(bySize) != 1 || bySize[0].Slug != "small-warm" {
		t.Errorf("size filter: expected small-warm, got %+v", bySize)
	}

	byStatus, _ := ListArtworks(ctx, database, ArtworkFilter{Status: model.ArtworkSold})
	if len(byStatus) != 1 || byStatus[0].Slug != "large-cool" {
		t.Errorf("status filter: expected large-cool, got %+v", byStatus)
	}

	minPrice := 500.0
	byPrice, _ := ListArtworks(ctx, database, ArtworkFilter{MinPrice: &minPrice})
	if len(byPrice) != 1 || byPrice[0].Slug != "large-cool" {
		t.Errorf("price filter: expected large-cool, got %+v", byPrice)
	}

	maxPrice := 100.0
	inclusive, _ := ListArtworks(ctx, database, ArtworkFilter{MaxPrice: &maxPrice})
	if len(inclusive) != 1 || inclusive[0].Slug != "small-warm" {
		t.Errorf("max price is inclusive: expected small-warm, got %+v", inclusive)
	}
}

func TestListArtworksNewestFirstAndLimit(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateArtwork(ctx, database, testArtwork("First", "first"))
	CreateArtwork(ctx, database, testArtwork("Second", "second"))
	CreateArtwork(ctx, database, testArtwork("Third", "third"))

	artworks, err := ListArtworks(ctx, database, ArtworkFilter{})
	if err != nil {
		t.Fatalf("ListArtworks: %v", err)
	}
	if len(artworks) != 3 || artworks[0].Slug != "third" {
		t.Errorf("expected newest first, got %+v", artworks)
	}

	limited, _ := ListArtworks(ctx, database, ArtworkFilter{Limit: 2})
	if len(limited) != 2 {
		t.Errorf("expected limit 2, got %d", len(limited))
	}
}

func TestUpdateArtwork(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := CreateArtwork(ctx, database, testArtwork("Morning Tide", "morning-tide"))

	newStatus := model.ArtworkSold
	newPrice := 600.0
	updated, err := UpdateArtwork(ctx, database, created.ID, ArtworkUpdate{
		Status: &newStatus,
		Price:  &newPrice,
	})
	if err != nil {
		t.Fatalf("UpdateArtwork: %v", err)
	}
	if updated.Status != model.ArtworkSold || updated.Price != 600 {
		t.Errorf("expected Sold/600, got %q/%v", updated.Status, updated.Price)
	}
	// Untouched fields survive.
	if updated.Title != "Morning Tide" {
		t.Errorf("expected title unchanged, got %q", updated.Title)
	}

	missing, err := UpdateArtwork(ctx, database, 9999, ArtworkUpdate{Status: &newStatus})
	if err != nil {
		t.Fatalf("UpdateArtwork: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown artwork, got %+v", missing)
	}
}

func TestUpdateArtworkSlugCollision(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateArtwork(ctx, database, testArtwork("First", "first"))
	second, _ := CreateArtwork(ctx, database, testArtwork("Second", "second"))

	taken := "first"
	_, err := UpdateArtwork(ctx, database, second.ID, ArtworkUpdate{Slug: &taken})
	if err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestDeleteArtwork(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	created, _ := CreateArtwork(ctx, database, testArtwork("Delete Me", "delete-me"))

	deleted, err := DeleteArtwork(ctx, database, created.ID)
	if err != nil || !deleted {
		t.Fatalf("DeleteArtwork: deleted=%v err=%v", deleted, err)
	}

	got, _ := GetArtwork(ctx, database, created.ID)
	if got != nil {
		t.Errorf("expected artwork gone after delete, got %+v", got)
	}

	again, err := DeleteArtwork(ctx, database, created.ID)
	if err != nil {
		t.Fatalf("DeleteArtwork: %v", err)
	}
	if again {
		t.Error("expected false when deleting a missing artwork")
	}
}
