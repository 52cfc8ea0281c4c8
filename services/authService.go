package services

import (
	"CarePortal/models"
	"CarePortal/repositories"
	"CarePortal/utils"
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

var (
	dummyHashOnce sync.Once
	dummyHash     string

	// checkPassword is swapped in tests to observe which hash a login compared against.
	checkPassword = utils.CheckPassword
)

// timingHash is compared against when the email is unknown so both login failures cost one bcrypt check.
func timingHash() string {
	dummyHashOnce.Do(func() {
		h, err := utils.HashPassword("careportal-timing-parity")
		if err != nil {
			log.Error().Err(err).Msg("failed to build timing hash")
			return
		}
		dummyHash = h
	})
	return dummyHash
}

type AuthService struct {
	users    repositories.UserRepository
	accounts accountCreator
}

func NewAuthService(users repositories.UserRepository) *AuthService {
	return &AuthService{users: users, accounts: accountCreator{users: users}}
}

// Register opens a Patient account with its profile.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	user, _, err := s.accounts.createPatient(ctx, req)
	if err != nil {
		return nil, err
	}
	log.Info().Str("email", user.Email).Str("user_id", user.ID).Msg("patient registered")
	return user, nil
}

// Login checks the credentials. Unknown email and wrong password both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (*models.User, error) {
	req.Email = normalizeEmail(req.Email)
	if err := asValidationError(utils.ValidateLogin(&req)); err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		checkPassword(timingHash(), req.Password)
		log.Info().Str("email", req.Email).Msg("login failed")
		return nil, ErrInvalidCredentials
	}
	if !checkPassword(user.Password, req.Password) {
		log.Info().Str("email", req.Email).Msg("login failed")
		return nil, ErrInvalidCredentials
	}

	log.Info().Str("email", user.Email).Str("role", string(user.Role)).Msg("login succeeded")
	return user, nil
}

// CurrentRole returns the role stored for the user, or "" when the user no longer exists.
func (s *AuthService) CurrentRole(ctx context.Context, userID string) (models.Role, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", nil
	}
	return user.Role, nil
}
