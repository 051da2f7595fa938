package repository

import (
	"context"
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/usecase"
	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	db DB
}

func NewUserRepository(dbtx DB) usecase.UserRepository {
	return &UserRepository{db: dbtx}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	const query = `
		INSERT INTO users (id, name, email, password_hash, role, is_active)
		VALUES (@id, @name, @email, @password_hash, @role, @is_active)
		RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, pgx.NamedArgs{
		"id":            u.ID(),
		"name":          u.Name(),
		"email":         u.Email().Value(),
		"password_hash": u.PasswordHash(),
		"role":          u.Role().String(),
		"is_active":     u.IsActive(),
	}).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	const query = `
		SELECT id, name, email, password_hash, role, is_active, last_login, created_at
		FROM users
		WHERE lower(email) = lower(@email)`

	var (
		rm        readmodel.AuthorizedUserRM
		hash      string
		lastLogin *time.Time
	)
	err := r.db.QueryRow(ctx, query, pgx.NamedArgs{"email": email.Value()}).
		Scan(&rm.ID, &rm.Name, &rm.Email, &hash, &rm.Role, &rm.IsActive, &lastLogin, &rm.CreatedAt)
	if err != nil {
		return nil, "", wrapErr("failed to find user by email", err)
	}
	rm.LastLogin = lastLogin
	return &rm, hash, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	const query = `
		SELECT id, name, email, role, is_active, last_login, created_at
		FROM users
		WHERE id = @id`

	var (
		rm        readmodel.AuthorizedUserRM
		lastLogin *time.Time
	)
	err := r.db.QueryRow(ctx, query, pgx.NamedArgs{"id": id}).
		Scan(&rm.ID, &rm.Name, &rm.Email, &rm.Role, &rm.IsActive, &lastLogin, &rm.CreatedAt)
	if err != nil {
		return nil, wrapErr("failed to find user by id", err)
	}
	rm.LastLogin = lastLogin
	return &rm, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const query = `UPDATE users SET last_login = now() WHERE id = @id`

	if _, err := r.db.Exec(ctx, query, pgx.NamedArgs{"id": userID}); err != nil {
		return wrapErr("failed to update last login", err)
	}
	return nil
}
