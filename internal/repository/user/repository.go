package user

import (
	"context"

	"quickbite/internal/domain"
)

type CreateUserInput struct {
	Name         string
	Email        string
	Phone        string
	Role         string
	PasswordHash string
	VehicleType  string
}

type Repository interface {
	Create(ctx context.Context, in CreateUserInput) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
