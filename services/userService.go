package services

import (
	"context"
	"strings"

	"github.com/vasthra/vasthra-api/models"
	"github.com/vasthra/vasthra-api/repository"
	"golang.org/x/crypto/bcrypt"
)

// UserInfo is the public view of an account.
type UserInfo struct {
	ID    uint        `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Phone string      `json:"phone"`
	Role  models.Role `json:"role"`
}

type Profile struct {
	UserInfo  UserInfo         `json:"userInfo"`
	Addresses []models.Address `json:"addresses"`
}

type UserService struct {
	users     repository.UserRepository
	addresses repository.AddressRepository
}

func NewUserService(users repository.UserRepository, addresses repository.AddressRepository) *UserService {
	return &UserService{users: users, addresses: addresses}
}

func (s *UserService) Profile(ctx context.Context, userID uint) (*Profile, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrNotFound.WithMessage("User not found")
		}
		return nil, ErrStorage.Wrap(err)
	}

	addresses, err := s.addresses.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}

	return &Profile{
		UserInfo: UserInfo{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Phone: user.Phone,
			Role:  user.Role,
		},
		Addresses: addresses,
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID uint, data models.ProfileData) error {
	name := strings.TrimSpace(data.Name)
	phone := strings.TrimSpace(data.Phone)
	if name == "" || phone == "" {
		return ErrMissingFields
	}
	if err := s.users.UpdateProfile(ctx, userID, name, phone); err != nil {
		return ErrStorage.Wrap(err)
	}
	return nil
}

// UpdatePassword replaces the password after verifying the current one.
func (s *UserService) UpdatePassword(ctx context.Context, userID uint, data models.PasswordChangeData) error {
	if data.CurrentPassword == "" || data.NewPassword == "" {
		return ErrMissingFields
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if repository.IsNotFound(err) {
			return ErrNotFound.WithMessage("User not found")
		}
		return ErrStorage.Wrap(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(data.CurrentPassword)); err != nil {
		return ErrInvalidCredentials.WithMessage("Current password is incorrect")
	}
	if err := ValidatePasswordStrength(data.NewPassword); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.NewPassword), bcryptCost)
	if err != nil {
		return ErrStorage.Wrap(err)
	}
	if err := s.users.UpdatePasswordHash(ctx, userID, string(hash)); err != nil {
		return ErrStorage.Wrap(err)
	}
	return nil
}

func (s *UserService) ListAddresses(ctx context.Context, userID uint) ([]models.Address, error) {
	addresses, err := s.addresses.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return addresses, nil
}

func (s *UserService) AddAddress(ctx context.Context, userID uint, data models.AddressData) (*models.Address, error) {
	address, err := addressFromData(userID, data)
	if err != nil {
		return nil, err
	}
	if err := s.addresses.Create(ctx, address); err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return address, nil
}

// UpdateAddress rewrites an address owned by the caller.
func (s *UserService) UpdateAddress(ctx context.Context, userID, addressID uint, data models.AddressData) (*models.Address, error) {
	if _, err := s.addresses.FindByIDAndUser(ctx, addressID, userID); err != nil {
		if repository.IsNotFound(err) {
			return nil, ErrAddressNotFound
		}
		return nil, ErrStorage.Wrap(err)
	}

	address, err := addressFromData(userID, data)
	if err != nil {
		return nil, err
	}
	address.ID = addressID
	if err := s.addresses.Update(ctx, address); err != nil {
		return nil, ErrStorage.Wrap(err)
	}
	return address, nil
}

func (s *UserService) DeleteAddress(ctx context.Context, userID, addressID uint) error {
	deleted, err := s.addresses.Delete(ctx, addressID, userID)
	if err != nil {
		return ErrStorage.Wrap(err)
	}
	if !deleted {
		return ErrAddressNotFound
	}
	return nil
}

func addressFromData(userID uint, data models.AddressData) (*models.Address, error) {
	address := &models.Address{
		UserID:     userID,
		Street:     strings.TrimSpace(data.Street),
		City:       strings.TrimSpace(data.City),
		State:      strings.TrimSpace(data.State),
		Country:    strings.TrimSpace(data.Country),
		PostalCode: strings.TrimSpace(data.PostalCode),
		Landmark:   strings.TrimSpace(data.Landmark),
	}
	if address.Street == "" || address.City == "" || address.State == "" ||
		address.Country == "" || address.PostalCode == "" {
		return nil, ErrMissingFields
	}
	return address, nil
}
