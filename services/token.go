package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vasthra/vasthra-api/models"
)

const sessionTTL = time.Hour

// SessionClaims is the payload of a session token.
type SessionClaims struct {
	UserID uint        `json:"userId"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret), ttl: sessionTTL, now: time.Now}
}

// TTL is how long an issued token stays valid.
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// Issue signs an HS256 token for the given identity with an absolute expiry.
func (s *TokenService) Issue(identity models.Identity) (string, error) {
	now := s.now()
	claims := SessionClaims{
		UserID: identity.UserID,
		Role:   identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature, algorithm and expiry. Every failure is reported as
// ErrForbidden.
func (s *TokenService) Verify(tokenStr string) (models.Identity, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return models.Identity{}, ErrForbidden.Wrap(err)
	}
	if !token.Valid || claims.UserID == 0 {
		return models.Identity{}, ErrForbidden.Wrap(errors.New("invalid token claims"))
	}

	role, err := models.ParseRole(string(claims.Role))
	if err != nil {
		return models.Identity{}, ErrForbidden.Wrap(err)
	}
	return models.Identity{UserID: claims.UserID, Role: role}, nil
}
