package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/techmagnet/seacheck/src/database"
	"github.com/techmagnet/seacheck/src/models"
	"github.com/techmagnet/seacheck/src/repositories"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor used for the admin password hash.
const bcryptCost = 12

// AdminService handles the single admin account
type AdminService struct {
	db   *database.Database
	repo repositories.AdminRepository
}

// NewAdminService creates a new admin service
func NewAdminService(db *database.Database) *AdminService {
	return &AdminService{db: db}
}

// NewAdminServiceWithRepo creates a new admin service with repository (for testing)
func NewAdminServiceWithRepo(repo repositories.AdminRepository) *AdminService {
	return &AdminService{repo: repo}
}

// AdminExists reports whether any admin account has been registered
func (as *AdminService) AdminExists(ctx context.Context) (bool, error) {
	if as.repo != nil {
		admin, err := as.repo.FindAny(ctx)
		if err != nil {
			return false, fmt.Errorf("failed to check admin account: %w", err)
		}
		return admin != nil, nil
	}

	var count int
	err := as.db.QueryRow(ctx, "SELECT COUNT(*) FROM admins").Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check admin account: %w", err)
	}
	return count > 0, nil
}

// RegisterAdmin creates the admin account. At most one account may ever
// exist: a second registration fails with ErrAdminExists. The singleton
// unique index makes the insert race-safe even when two registrations pass
// the existence check concurrently.
func (as *AdminService) RegisterAdmin(ctx context.Context, email, password string) (*models.AdminAccount, error) {
	exists, err := as.AdminExists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAdminExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.AdminAccount{
		Email:        email,
		PasswordHash: string(hash),
		RegisteredAt: time.Now(),
	}

	if as.repo != nil {
		if err := as.repo.Insert(ctx, admin); err != nil {
			return nil, fmt.Errorf("failed to create admin account: %w", err)
		}
		return admin, nil
	}

	_, err = as.db.Exec(ctx,
		`INSERT INTO admins (email, password_hash, registered_at) VALUES ($1, $2, $3)`,
		admin.Email, admin.PasswordHash, admin.RegisteredAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create admin account: %w", err)
	}

	return admin, nil
}

// AuthenticateAdmin verifies email and password. All failure modes collapse
// into ErrInvalidCredentials; nothing distinguishes an unknown email from a
// wrong password.
func (as *AdminService) AuthenticateAdmin(ctx context.Context, email, password string) (*models.AdminAccount, error) {
	var admin *models.AdminAccount

	if as.repo != nil {
		found, err := as.repo.FindByEmail(ctx, email)
		if err != nil || found == nil {
			return nil, ErrInvalidCredentials
		}
		admin = found
	} else {
		admin = &models.AdminAccount{}
		err := as.db.QueryRow(ctx,
			`SELECT email, password_hash, registered_at FROM admins WHERE email = $1`,
			email,
		).Scan(&admin.Email, &admin.PasswordHash, &admin.RegisteredAt)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, ErrInvalidCredentials
			}
			return nil, fmt.Errorf("failed to look up admin account: %w", err)
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}
