//go:build unit || e2e

package builder

import (
	"time"

	"stayhub/internal/domain/user"
	"stayhub/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name         string
	Email        string
	PasswordHash string
	Role         string
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Test Guest",
		Email:        "guest@example.com",
		PasswordHash: "hashed_password",
		Role:         "guest",
	}
}

func (b *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(b)
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.Email = email
	return b
}

func (b *UserBuilder) WithRole(role string) *UserBuilder {
	b.Role = role
	return b
}

func (b *UserBuilder) BuildDomain() (*user.User, error) {
	email, err := user.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	role, err := user.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	return user.NewUser(b.Name, email, b.PasswordHash, role)
}

func (b *UserBuilder) BuildReadModel() *readmodel.AuthorizedUserRM {
	return &readmodel.AuthorizedUserRM{
		ID:        uuid.New(),
		Name:      b.Name,
		Email:     b.Email,
		Role:      b.Role,
		IsActive:  true,
		CreatedAt: time.Date(2024, 1, 1, 9, 30, 0, 0, time.UTC),
	}
}
