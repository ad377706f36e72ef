package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/wordup-api/internal/models"
)

const adminColumns = `admin_id, name, account, password_hash, email, phone, created_at, updated_at`

const insertAdminQuery = `INSERT INTO admins (admin_id, name, account, password_hash, email, phone, created_at, updated_at)
	VALUES (:admin_id, :name, :account, :password_hash, :email, :phone, :created_at, :updated_at)`

// AdminRepository manages persistence for administrators.
type AdminRepository struct {
	db *sqlx.DB
}

// NewAdminRepository constructs an AdminRepository.
func NewAdminRepository(db *sqlx.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// List returns every admin ordered by id.
func (r *AdminRepository) List(ctx context.Context) ([]models.Admin, error) {
	query := fmt.Sprintf("SELECT %s FROM admins ORDER BY admin_id", adminColumns)
	admins := make([]models.Admin, 0)
	if err := r.db.SelectContext(ctx, &admins, query); err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	return admins, nil
}

// FindByID fetches an admin by id.
func (r *AdminRepository) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	query := fmt.Sprintf("SELECT %s FROM admins WHERE admin_id = $1", adminColumns)
	var admin models.Admin
	if err := r.db.GetContext(ctx, &admin, query, id); err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByAccount fetches an admin by login account.
func (r *AdminRepository) FindByAccount(ctx context.Context, account string) (*models.Admin, error) {
	query := fmt.Sprintf("SELECT %s FROM admins WHERE account = $1", adminColumns)
	var admin models.Admin
	if err := r.db.GetContext(ctx, &admin, query, account); err != nil {
		return nil, err
	}
	return &admin, nil
}

// ExistsByAccount checks whether the account is taken.
func (r *AdminRepository) ExistsByAccount(ctx context.Context, account string) (bool, error) {
	var exists int
	if err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM admins WHERE account = $1 LIMIT 1`, account); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check admin account: %w", err)
	}
	return true, nil
}

// Create inserts an admin with a caller supplied id.
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	stampAdmin(admin)
	if _, err := r.db.NamedExecContext(ctx, insertAdminQuery, admin); err != nil {
		return fmt.Errorf("create admin: %w", translateError(err))
	}
	return nil
}

// CreateWithNextID inserts an admin under the next "adminNNN" id.
func (r *AdminRepository) CreateWithNextID(ctx context.Context, admin *models.Admin) error {
	stampAdmin(admin)
	return insertWithSequentialID(ctx, r.db, "admins", "admin_id", models.RoleAdmin.IDPrefix(),
		func(id string) { admin.AdminID = id },
		func(tx *sqlx.Tx) error {
			if _, err := tx.NamedExecContext(ctx, insertAdminQuery, admin); err != nil {
				return fmt.Errorf("create admin: %w", translateError(err))
			}
			return nil
		})
}

// Update overwrites the mutable columns of an admin and bumps updated_at.
func (r *AdminRepository) Update(ctx context.Context, admin *models.Admin) error {
	admin.UpdatedAt = time.Now().UTC()
	const query = `UPDATE admins SET name = :name, password_hash = :password_hash, email = :email, phone = :phone, updated_at = :updated_at WHERE admin_id = :admin_id`
	if _, err := r.db.NamedExecContext(ctx, query, admin); err != nil {
		return fmt.Errorf("update admin: %w", translateError(err))
	}
	return nil
}

// Delete removes an admin.
func (r *AdminRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM admins WHERE admin_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete admin: %w", translateError(err))
	}
	return expectAffected(res)
}

func stampAdmin(admin *models.Admin) {
	now := time.Now().UTC()
	if admin.CreatedAt.IsZero() {
		admin.CreatedAt = now
	}
	admin.UpdatedAt = now
}
