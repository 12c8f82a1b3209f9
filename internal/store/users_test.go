package store

import (
	"context"
	"testing"

	"github.com/halcyonarts/gallery/internal/db"
	"github.com/halcyonarts/gallery/internal/model"
)

func TestCreateUserNormalizesEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, err := CreateUser(ctx, database, "Dana", "  Dana@Example.COM ", "hash", model.RoleCollector)
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if user.Email != "dana@example.com" {
		t.Errorf("expected normalized email, got %q", user.Email)
	}

	got, err := GetUserByEmail(ctx, database, "DANA@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail: %v", err)
	}
	if got == nil || got.ID != user.ID {
		t.Errorf("expected case-insensitive lookup to find user, got %+v", got)
	}
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	if _, err := CreateUser(ctx, database, "Dana", "dana@example.com", "hash", model.RoleCollector); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	_, err := CreateUser(ctx, database, "Other", "DANA@example.com", "hash2", model.RoleCollector)
	if err != ErrDuplicate {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}
}

func TestUpdateUserRole(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "Dana", "dana@example.com", "hash", model.RoleCollector)

	updated, err := UpdateUserRole(ctx, database, user.ID, model.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateUserRole: %v", err)
	}
	if updated.Role != model.RoleAdmin {
		t.Errorf("expected role 'admin', got %q", updated.Role)
	}

	missing, err := UpdateUserRole(ctx, database, 9999, model.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateUserRole: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for unknown user, got %+v", missing)
	}
}

func TestListUsersNewestFirst(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateUser(ctx, database, "First", "first@example.com", "hash", model.RoleCollector)
	second, _ := CreateUser(ctx, database, "Second", "second@example.com", "hash", model.RoleCollector)

	users, err := ListUsers(ctx, database, 0)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].ID != second.ID {
		t.Errorf("expected newest first, got id %d", users[0].ID)
	}
}

func TestUpdateUser(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	user, _ := CreateUser(ctx, database, "Dana", "dana@example.com", "hash", model.RoleCollector)

	if err := UpdateUser(ctx, database, user.ID, "Studio Owner", model.RoleAdmin, "newhash"); err != nil {
		t.Fatalf("UpdateUser: %v", err)
	}

	got, _ := GetUser(ctx, database, user.ID)
	if got.Name != "Studio Owner" || got.Role != model.RoleAdmin || got.PasswordHash != "newhash" {
		t.Errorf("expected rewritten identity, got %+v", got)
	}
}
