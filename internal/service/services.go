package service

import (
	"github.com/contacthub/contacthub/internal/config"
	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/internal/store"
	"github.com/contacthub/contacthub/internal/validators"
)

type Services struct {
	UserService    UserService
	ContactService ContactService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, validator validators.Validator, logger *logger.Logger) *Services {
	return &Services{
		UserService:    NewUserService(repositories.UserRepository, cfg.App, validator, logger),
		ContactService: NewContactService(repositories.ContactRepository, validator, logger),
	}
}
