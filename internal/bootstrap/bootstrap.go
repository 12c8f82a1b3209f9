// Package bootstrap ensures the configured admin account exists at startup.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/halcyonarts/gallery/internal/model"
	"github.com/halcyonarts/gallery/internal/store"
)

// DefaultAdminName is used when no admin name is configured.
const DefaultAdminName = "Studio Owner"

// EnsureAdmin asserts the configured admin identity: creates the account if
// missing, otherwise forces its role to admin, resyncs the name, and always
// rewrites the password hash from configuration. A missing email or
// password makes it a no-op. Safe to run on every start.
func EnsureAdmin(ctx context.Context, db *sql.DB, email, password, name string) error {
	if email == "" || password == "" {
		return nil
	}
	if name == "" {
		name = DefaultAdminName
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	existing, err := store.GetUserByEmail(ctx, db, email)
	if err != nil {
		return fmt.Errorf("looking up admin account: %w", err)
	}

	if existing == nil {
		if _, err := store.CreateUser(ctx, db, name, email, string(hash), model.RoleAdmin); err != nil {
			return fmt.Errorf("creating admin account: %w", err)
		}
		slog.Info("bootstrap: admin account created", "email", store.NormalizeEmail(email))
		return nil
	}

	if err := store.UpdateUser(ctx, db, existing.ID, name, model.RoleAdmin, string(hash)); err != nil {
		return fmt.Errorf("re-asserting admin account: %w", err)
	}
	slog.Info("bootstrap: admin account re-asserted", "email", existing.Email)
	return nil
}
