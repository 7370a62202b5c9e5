// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"

	deliverycontext "recipebook/internal/delivery/context"
	"recipebook/internal/domain/entity"
	domainerrors "recipebook/internal/domain/errors"
	"recipebook/internal/domain/repository"
	"recipebook/internal/domain/service"
	"recipebook/internal/errors"
	"recipebook/internal/usecase"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	avatars      service.AvatarProvider
	validator    usecase.Validator
	publisher    service.EventPublisher
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Avatars      service.AvatarProvider
	Validator    usecase.Validator
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		avatars:      params.Avatars,
		validator:    params.Validator,
		publisher:    params.Publisher,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// normalizeEmail makes the login key case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates the account and returns a token for it.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	normalized := usecase.RegisterInput{
		Name:     strings.TrimSpace(input.Name),
		Email:    normalizeEmail(input.Email),
		Password: input.Password,
	}
	if err := srv.validator.Validate(&normalized); err != nil {
		return nil, err
	}

	_, err := srv.userRepo.FindByEmail(ctx, normalized.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	hash, err := srv.hasher.Hash(normalized.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:         normalized.Name,
		Email:        normalized.Email,
		PasswordHash: hash,
		Avatar:       srv.avatars.AvatarURL(normalized.Email),
		CreatedAt:    time.Now().UTC(),
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		// The unique index catches registrations racing past the lookup above.
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.Hex()))
	publishEvent(ctx, srv.publisher, srv.log(ctx), newEvent(ctx, service.EventAccountRegistered, user.ID))

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login verifies the credentials and returns a fresh token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	normalized := usecase.LoginInput{
		Email:    normalizeEmail(input.Email),
		Password: input.Password,
	}
	if err := srv.validator.Validate(&normalized); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, normalized.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		// Spend one bcrypt comparison so unknown emails cost the same as wrong passwords.
		srv.hasher.CheckDummy(normalized.Password)

		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Check(normalized.Password, user.PasswordHash) {
		srv.log(ctx).Debug("Login rejected", slog.String("userID", user.ID.Hex()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue token")
	}

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// GetCurrentUser loads the caller. A verified token whose user is gone is a server error.
func (srv *userService) GetCurrentUser(ctx context.Context, userID primitive.ObjectID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Token references a missing user", slog.String("userID", userID.Hex()))

		return nil, errors.Wrap(domainerrors.ErrInternalError, "token user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}
