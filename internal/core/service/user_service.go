package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/newsdesk/news-api/internal/core/domain"
	"github.com/newsdesk/news-api/internal/core/ports"
)

const (
	availabilityKindUsername = "username"
	availabilityKindEmail    = "email"
)

// UserService implements account use cases on top of the user repository.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	cache  ports.AvailabilityCache // optional, advisory only
	log    zerolog.Logger
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, cache ports.AvailabilityCache, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, cache: cache, log: log}
}

func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.FindByUsername(ctx, username)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *UserService) GetByRole(ctx context.Context, role string) ([]*domain.User, error) {
	return s.repo.FindByRole(ctx, role)
}

func (s *UserService) Search(ctx context.Context, term string) ([]*domain.User, error) {
	return s.repo.Search(ctx, term)
}

// Create registers a new account. The availability pre-checks mirror the
// API's historical behaviour and give callers a descriptive conflict
// message; the unique indexes on username and email remain the actual
// guarantee, so a losing racer still gets the same conflict error from
// Insert.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	if available, err := s.IsUsernameAvailable(ctx, input.Username); err != nil {
		return nil, err
	} else if !available {
		return nil, domain.ErrUsernameTaken
	}
	if available, err := s.IsEmailAvailable(ctx, input.Email); err != nil {
		return nil, err
	} else if !available {
		return nil, domain.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:        input.Username,
		Email:           input.Email,
		PasswordHash:    hash,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Role:            role,
		IsActive:        true,
		ProfileImageURL: input.ProfileImageURL,
		Bio:             input.Bio,
		DateOfBirth:     input.DateOfBirth,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.markTaken(ctx, created.Username, created.Email)
	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user created")
	return created, nil
}

// Update applies a partial update. Only supplied, non-empty fields overwrite
// stored values; updatedAt is always advanced by the repository.
func (s *UserService) Update(ctx context.Context, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if input.Role != "" && !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}

	if input.Username != "" {
		existing, err := s.repo.FindByUsername(ctx, input.Username)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrUsernameTaken
		}
	}
	if input.Email != "" {
		existing, err := s.repo.FindByEmail(ctx, input.Email)
		if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, domain.ErrEmailTaken
		}
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

// Authenticate verifies credentials against either natural key. Missing
// users, deactivated accounts and wrong passwords all collapse into
// ErrInvalidCredentials so the response does not reveal which check failed.
func (s *UserService) Authenticate(ctx context.Context, usernameOrEmail, password string) (*domain.User, error) {
	user, err := s.repo.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrInvalidCredentials
	}
	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to stamp last login")
	} else {
		user.LastLoginAt = &now
	}

	return user, nil
}

func (s *UserService) IsUsernameAvailable(ctx context.Context, username string) (bool, error) {
	if s.cache != nil {
		if available, found := s.cache.Get(ctx, availabilityKindUsername, username); found {
			return available, nil
		}
	}

	_, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		s.cacheAvailability(ctx, availabilityKindUsername, username, true)
		return true, nil
	case err != nil:
		return false, err
	default:
		s.cacheAvailability(ctx, availabilityKindUsername, username, false)
		return false, nil
	}
}

func (s *UserService) IsEmailAvailable(ctx context.Context, email string) (bool, error) {
	if s.cache != nil {
		if available, found := s.cache.Get(ctx, availabilityKindEmail, email); found {
			return available, nil
		}
	}

	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		s.cacheAvailability(ctx, availabilityKindEmail, email, true)
		return true, nil
	case err != nil:
		return false, err
	default:
		s.cacheAvailability(ctx, availabilityKindEmail, email, false)
		return false, nil
	}
}

func (s *UserService) cacheAvailability(ctx context.Context, kind, value string, available bool) {
	if s.cache != nil {
		s.cache.Set(ctx, kind, value, available)
	}
}

// markTaken invalidates cached "available" answers after a registration.
func (s *UserService) markTaken(ctx context.Context, username, email string) {
	if s.cache != nil {
		s.cache.Set(ctx, availabilityKindUsername, username, false)
		s.cache.Set(ctx, availabilityKindEmail, email, false)
	}
}
