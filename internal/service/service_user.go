package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/contacthub/contacthub/internal/config"
	"github.com/contacthub/contacthub/internal/logger"
	"github.com/contacthub/contacthub/internal/store"
	"github.com/contacthub/contacthub/internal/utils"
	"github.com/contacthub/contacthub/internal/validators"
	"github.com/contacthub/contacthub/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService.
// It handles account registration, credential verification, session token
// lifecycle and profile updates, using a UserRepository for persistence and
// bcrypt for password hashing.
type userService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// validator enforces the request field constraints before any business
	// logic runs.
	validator validators.Validator

	// tokens issues fresh opaque session tokens on every successful login.
	tokens *utils.TokenGenerator

	// bcryptCost is the work factor applied when hashing passwords.
	bcryptCost int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewUserService constructs a new UserService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, cfg config.App, validator validators.Validator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validator,
		tokens:         utils.NewTokenGenerator(),
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates the request, rejects a username that is already taken, hashes
// the plain-text password with bcrypt and delegates persistence to the
// UserRepository.
//
// Returns the public projection of the persisted user (never the token) or:
//   - a validators error if the request shape is invalid.
//   - store.ErrUsernameTaken if an account with the same username exists.
//   - A wrapped storage error if the repository call fails.
func (s *userService) Register(ctx context.Context, request models.RegisterRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", request.Username).Msg("register request failed validation")
		return models.UserResponse{}, err
	}

	total, err := s.userRepository.CountByUsername(ctx, request.Username)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("username availability check failed")
		return models.UserResponse{}, fmt.Errorf("username availability check failed: %w", err)
	}
	if total > 0 {
		log.Error().Str("username", request.Username).Msg("username already taken")
		return models.UserResponse{}, store.ErrUsernameTaken
	}

	hash, err := s.hashPassword(request.Password)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("password hashing failed")
		return models.UserResponse{}, err
	}

	// the availability check above races with concurrent registrations; the
	// unique constraint is the authority and surfaces as the same error
	createdUser, err := s.userRepository.CreateUser(ctx, models.User{
		Username: request.Username,
		Password: hash,
		Name:     request.Name,
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.UserResponse{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return models.ToUserResponse(createdUser), nil
}

// Login authenticates an existing user.
//
// It validates the request, looks up the account by username and compares the
// supplied password against the stored bcrypt hash. On success a fresh opaque
// token is generated and persisted, replacing whatever token the previous
// session held.
//
// Returns the public projection including the new token or:
//   - a validators error if the request shape is invalid.
//   - ErrBadCredentials if the username is unknown or the password is wrong;
//     the two cases are not distinguishable by the caller.
//   - A wrapped storage error if a repository call fails.
func (s *userService) Login(ctx context.Context, request models.LoginRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", request.Username).Msg("login request failed validation")
		return models.UserResponse{}, err
	}

	foundUser, err := s.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("username", request.Username).Msg("login attempt for unknown username")
			return models.UserResponse{}, ErrBadCredentials
		}
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.UserResponse{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(request.Password)); err != nil {
		log.Error().Str("username", request.Username).Msg("wrong password")
		return models.UserResponse{}, ErrBadCredentials
	}

	token := s.tokens.Generate()
	updatedUser, err := s.userRepository.UpdateToken(ctx, foundUser.Username, token)
	if err != nil {
		log.Err(err).Str("username", foundUser.Username).Msg("token update failed")
		return models.UserResponse{}, fmt.Errorf("token update failed: %w", err)
	}

	response := models.ToUserResponse(updatedUser)
	response.Token = token

	return response, nil
}

// Authenticate resolves the account owning the given opaque session token.
// Tokens are matched by plain equality and carry no expiry.
//
// Returns the full user record or:
//   - ErrUnauthorized if the token is empty or matches no account.
//   - A wrapped storage error if the repository lookup fails.
func (s *userService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	foundUser, err := s.userRepository.FindUserByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Msg("no account matches the presented token")
			return models.User{}, ErrUnauthorized
		}
		log.Err(err).Msg("user search by token failed")
		return models.User{}, fmt.Errorf("user search by token failed: %w", err)
	}

	return foundUser, nil
}

// Current projects the already-authenticated user. The auth middleware has
// resolved the account from its token, so no repository call is needed.
func (s *userService) Current(_ context.Context, user models.User) models.UserResponse {
	return models.ToUserResponse(user)
}

// Update applies a partial profile update to the authenticated user.
//
// Supplied fields replace the stored values; a supplied password is re-hashed
// before persisting. An update that carries no fields at all is rejected.
//
// Returns the refreshed projection or:
//   - validators.ErrNoFieldsToUpdate if the request body is empty.
//   - a validators error if a supplied field violates its constraints.
//   - A wrapped storage error if the repository call fails.
func (s *userService) Update(ctx context.Context, user models.User, request models.UpdateUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if request.IsEmpty() {
		log.Error().Str("username", user.Username).Msg("empty profile update")
		return models.UserResponse{}, validators.ErrNoFieldsToUpdate
	}
	if err := s.validator.Validate(ctx, request); err != nil {
		log.Err(err).Str("username", user.Username).Msg("profile update failed validation")
		return models.UserResponse{}, err
	}

	password := request.Password
	if password != nil {
		hashed, err := s.hashPassword(*password)
		if err != nil {
			log.Err(err).Str("username", user.Username).Msg("password hashing failed")
			return models.UserResponse{}, err
		}
		password = &hashed
	}

	updatedUser, err := s.userRepository.UpdateUser(ctx, user.Username, request.Name, password)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("profile update ended with error")
		return models.UserResponse{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return models.ToUserResponse(updatedUser), nil
}

// hashPassword hashes a plain-text password with the configured work factor.
// bcrypt consumes at most 72 bytes of input; a longer password is reported as
// a validation failure rather than a hashing error.
func (s *userService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: field 'password' must be at most 72 bytes", validators.ErrValidation)
		}
		return "", fmt.Errorf("password hashing failed: %w", err)
	}

	return string(hash), nil
}

// Logout invalidates the authenticated user's session by clearing the stored
// token. Requests carrying the old token stop authenticating immediately.
func (s *userService) Logout(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	if err := s.userRepository.ClearToken(ctx, user.Username); err != nil {
		log.Err(err).Str("username", user.Username).Msg("token clearing failed")
		return fmt.Errorf("token clearing failed: %w", err)
	}

	return nil
}
