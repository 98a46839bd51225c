package service

import (
	"context"

	"github.com/contacthub/contacthub/models"
)

type UserService interface {
	Register(ctx context.Context, request models.RegisterRequest) (models.UserResponse, error)
	Login(ctx context.Context, request models.LoginRequest) (models.UserResponse, error)
	Authenticate(ctx context.Context, token string) (models.User, error)
	Current(ctx context.Context, user models.User) models.UserResponse
	Update(ctx context.Context, user models.User, request models.UpdateUserRequest) (models.UserResponse, error)
	Logout(ctx context.Context, user models.User) error
}

type ContactService interface {
	Create(ctx context.Context, user models.User, request models.CreateContactRequest) (models.ContactResponse, error)
	Get(ctx context.Context, user models.User, contactID int64) (models.ContactResponse, error)
	Update(ctx context.Context, user models.User, request models.UpdateContactRequest) (models.ContactResponse, error)
}
