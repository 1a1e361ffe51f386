package usecase

import (
	"errors"
	"time"

	"hr-payroll/internal/apperror"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = apperror.New(apperror.ErrCodeUnauthorized, "Invalid username or password", nil)

// AuthUsecase guards the single HR operator account. The session is a signed
// token carried in a cookie, so the server keeps no session state.
type AuthUsecase struct {
	username     string
	passwordHash []byte
	secret       []byte
	ttl          time.Duration
}

func NewAuthUsecase(username, password, secret string, ttl time.Duration) (*AuthUsecase, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &AuthUsecase{
		username:     username,
		passwordHash: hashed,
		secret:       []byte(secret),
		ttl:          ttl,
	}, nil
}

func (u *AuthUsecase) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", apperror.Validation("Username and password are required")
	}
	if username != u.username {
		return "", errInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(u.passwordHash, []byte(password)); err != nil {
		return "", errInvalidCredentials
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       u.username,
		"logged_in": true,
		"iat":       now.Unix(),
		"exp":       now.Add(u.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.secret)
}

// Verify checks a session token issued by Login.
func (u *AuthUsecase) Verify(tokenString string) error {
	if tokenString == "" {
		return errors.New("empty session token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return u.secret, nil
	})
	if err != nil || !token.Valid {
		return errors.New("invalid session token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["logged_in"] != true || claims["sub"] != u.username {
		return errors.New("invalid session claims")
	}
	return nil
}

func (u *AuthUsecase) TTL() time.Duration {
	return u.ttl
}
