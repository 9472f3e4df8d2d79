package services

import (
	"context"
	"errors"
	"strings"

	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/repository"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// dummyHash is compared against when the email is unknown so both login
// failures cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("vasthra-dummy-password"), bcryptCost)

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(identity models.Identity) (string, error)
}

type AuthService struct {
	users   repository.UserRepository
	tokens  TokenIssuer
	compare func(hash, password []byte) error
}

func NewAuthService(users repository.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens, compare: bcrypt.CompareHashAndPassword}
}

// Register creates a buyer or seller account.
func (s *AuthService) Register(ctx context.Context, data models.RegisterData) (*models.User, error) {
	name := strings.TrimSpace(data.Name)
	email := strings.ToLower(strings.TrimSpace(data.Email))
	phone := strings.TrimSpace(data.Phone)
	if name == "" || email == "" || data.Password == "" || phone == "" || strings.TrimSpace(data.Role) == "" {
		return nil, ErrMissingFields
	}

	role, err := models.ParseRole(data.Role)
	if err != nil || !role.CanSelfRegister() {
		return nil, ErrInvalidRole
	}

	if err := ValidatePasswordStrength(data.Password); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcryptCost)
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Phone:        phone,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateEmail
		}
		return nil, ErrStorage.Wrap(err)
	}
	return user, nil
}

// Login checks credentials and issues a session token. An unknown email and a
// wrong password produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if repository.IsNotFound(err) {
			_ = s.compare(dummyHash, []byte(password))
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, ErrStorage.Wrap(err)
	}

	if err := s.compare([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(models.Identity{UserID: user.ID, Role: user.Role})
	if err != nil {
		return "", nil, ErrStorage.Wrap(err)
	}
	return token, user, nil
}
