// Package repository implements the persistence collaborator on top of bun.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/uptrace/bun"

	nina "github.com/ninaapp/nina-api"
)

// Users is the bun-backed user store.
type Users struct {
	db *bun.DB
}

var _ nina.Repository = (*Users)(nil)

// NewUsers returns a user store bound to db.
func NewUsers(db *bun.DB) *Users {
	return &Users{db: db}
}

// CreateSchema bootstraps the users table. Safe to call on every startup.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*nina.User)(nil)).
		IfNotExists().
		Exec(ctx)
	return err
}

// GetPage returns one window of users ordered by ID, with the total count
// for pagination metadata.
func (r *Users) GetPage(ctx context.Context, page, pageSize int) (*nina.PagedList[*nina.User], error) {
	count, err := r.db.NewSelect().
		Model((*nina.User)(nil)).
		Count(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]*nina.User, 0, pageSize)
	err = r.db.NewSelect().
		Model(&users).
		Order("id ASC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Scan(ctx)
	if err != nil {
		return nil, err
	}

	return nina.NewPagedList(users, page, pageSize, count), nil
}

// GetByID returns the user with the given ID, or nil when absent.
func (r *Users) GetByID(ctx context.Context, id int64) (*nina.User, error) {
	if id <= 0 {
		return nil, nil
	}

	user := new(nina.User)
	err := r.db.NewSelect().
		Model(user).
		Where("?TableAlias.id = ?", id).
		Limit(1).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// GetByEmail returns the user with the given email, or nil when absent.
func (r *Users) GetByEmail(ctx context.Context, email string) (*nina.User, error) {
	user := new(nina.User)
	err := r.db.NewSelect().
		Model(user).
		Where("?TableAlias.email = ?", email).
		Limit(1).
		Scan(ctx)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

// EmailInUse reports whether any user already holds the email.
func (r *Users) EmailInUse(ctx context.Context, email string) (bool, error) {
	return r.db.NewSelect().
		Model((*nina.User)(nil)).
		Where("?TableAlias.email = ?", email).
		Exists(ctx)
}

// Create inserts the user and returns it with the store-assigned ID, or nil
// when the insert wrote nothing.
func (r *Users) Create(ctx context.Context, user *nina.User) (*nina.User, error) {
	if user == nil {
		return nil, nil
	}

	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	res, err := r.db.NewInsert().
		Model(user).
		Exec(ctx)
	if err != nil {
		return nil, err
	}

	if rows, err := res.RowsAffected(); err == nil && rows == 0 {
		return nil, nil
	}

	return user, nil
}

// Update rewrites the user's mutable columns. Reports false when no row
// matched, which the management flow surfaces as a concurrency loss.
func (r *Users) Update(ctx context.Context, user *nina.User) (bool, error) {
	if user == nil || user.ID <= 0 {
		return false, nil
	}

	user.UpdatedAt = time.Now()

	res, err := r.db.NewUpdate().
		Model(user).
		Column("name", "email", "password_hash", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}

// Delete removes the user with the given ID; false when nothing matched.
func (r *Users) Delete(ctx context.Context, id int64) (bool, error) {
	if id <= 0 {
		return false, nil
	}

	res, err := r.db.NewDelete().
		Model((*nina.User)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	return rows > 0, nil
}
