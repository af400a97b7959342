package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"project_manager/internal/models"
	"project_manager/internal/repository"
)

const (
	minUsernameLen = 3
	maxUsernameLen = 50
	minPasswordLen = 6

	defaultTokenTTL = 60 * time.Minute
)

// TokenConfig carries the JWT signing contract. Zero TTL falls back to the
// 60-minute default.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
	TTL      time.Duration
}

// AuthService handles registration, credential checks and token issuance.
type AuthService struct {
	authRepo repository.Authorization
	tokens   TokenConfig
}

func NewAuthService(repo repository.Authorization, tokens TokenConfig) *AuthService {
	if tokens.TTL <= 0 {
		tokens.TTL = defaultTokenTTL
	}
	return &AuthService{authRepo: repo, tokens: tokens}
}

// Claims defines the JWT claim set: subject is the user id, plus username
// and email, issuer/audience/expiry from TokenConfig.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SignUp validates the credentials, stores a bcrypt hash and returns a
// signed token together with the created user.
func (s *AuthService) SignUp(username, email, password string) (string, models.User, error) {
	username = strings.TrimSpace(username)
	if len(username) < minUsernameLen || len(username) > maxUsernameLen {
		return "", models.User{}, invalidInput(fmt.Sprintf("username must be %d-%d chars", minUsernameLen, maxUsernameLen))
	}
	if len(password) < minPasswordLen {
		return "", models.User{}, invalidInput(fmt.Sprintf("password must be at least %d chars", minPasswordLen))
	}

	taken, err := s.authRepo.UsernameExists(username)
	if err != nil {
		return "", models.User{}, err
	}
	if taken {
		return "", models.User{}, ErrConflict
	}

	hash, err := hashPassword(password)
	if err != nil {
		return "", models.User{}, err
	}

	id, err := s.authRepo.Create(username, email, hash)
	if err != nil {
		return "", models.User{}, err
	}

	u := models.User{ID: id, Username: username, Email: email}
	token, err := s.issueToken(u)
	if err != nil {
		return "", models.User{}, err
	}
	return token, u, nil
}

// SignIn looks the user up by username or email and verifies the password.
// Failures collapse into ErrInvalidCredentials so callers cannot tell an
// unknown user from a wrong password.
func (s *AuthService) SignIn(usernameOrEmail, password string) (string, models.User, error) {
	u, err := s.authRepo.GetByLogin(usernameOrEmail)
	if err != nil {
		return "", models.User{}, err
	}
	if u == nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	token, err := s.issueToken(*u)
	if err != nil {
		return "", models.User{}, err
	}
	return token, *u, nil
}

// ParseToken verifies signature, issuer, audience and expiry, and returns
// the user id from the subject claim.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{},
		func(token *jwt.Token) (interface{}, error) {
			return []byte(s.tokens.Secret), nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.tokens.Issuer),
		jwt.WithAudience(s.tokens.Audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return userID, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(u models.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.Itoa(u.ID),
			Issuer:    s.tokens.Issuer,
			Audience:  jwt.ClaimStrings{s.tokens.Audience},
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokens.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Username: u.Username,
		Email:    u.Email,
	})
	return token.SignedString([]byte(s.tokens.Secret))
}
