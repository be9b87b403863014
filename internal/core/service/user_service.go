package service

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/coreledger/banking-api/internal/core/domain"
	"github.com/coreledger/banking-api/internal/core/ports"
)

// UserService implements user record operations.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

// Create registers a new user. The plaintext password is hashed before it
// ever reaches the repository.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  string(hash),
		Role:      input.Role,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		s.log.Error().Err(err).Str("email", input.Email).Msg("failed to create user")
		return nil, err
	}

	s.log.Info().Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

// Update applies merge-non-empty semantics: first and last name always
// overwrite, email, password and role only when the incoming value is
// non-empty, and the accounts association is replaced in full. An incoming
// password is re-hashed; the hash of the previous password never survives a
// password change.
func (s *UserService) Update(ctx context.Context, id int64, input ports.UpdateUserInput) error {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	user.FirstName = input.FirstName
	user.LastName = input.LastName
	if input.Email != "" {
		user.Email = input.Email
	}
	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user.Password = string(hash)
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	user.AccountIDs = input.AccountIDs

	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}

	s.log.Info().Int64("user_id", id).Msg("user updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	// Existence check first so the error echoes the id, matching Get.
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	return nil
}
