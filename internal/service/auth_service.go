//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"safelink/backend/internal/model"
	"safelink/backend/internal/repository"
	"safelink/backend/pkg/logger"
)

const (
	keyUserUsername     = "user.username"
	keyUserNickname     = "user.nickname"
	keyUserEmail        = "user.email"
	keyUserPasswordHash = "user.password_hash"
	keyUserJWTSecret    = "user.jwt_secret"

	minPasswordLength = 6
	tokenTTL          = 7 * 24 * time.Hour
	tokenIssuer       = "safelink"
)

var (
	ErrUsernameRequired        = errors.New("username is required")
	ErrInvalidUsername         = errors.New("username must start with a letter and contain only letters, digits or underscores")
	ErrEmailRequired           = errors.New("email is required")
	ErrPasswordRequired        = errors.New("password is required")
	ErrPasswordTooShort        = errors.New("password must be at least 6 characters")
	ErrUserExists              = errors.New("manager account already exists")
	ErrUserNotFound            = errors.New("manager account not found")
	ErrInvalidPassword         = errors.New("invalid username or password")
	ErrCurrentPasswordRequired = errors.New("current password is required")
	ErrSamePassword            = errors.New("new password must differ from the current one")
	ErrInvalidToken            = errors.New("invalid token")
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,31}$`)

type User struct {
	Username string
	Nickname string
	Email    string
}

type AuthResponse struct {
	Token string
	User  *User
}

type UpdateProfileResponse struct {
	User *User
	// Token is set only when the password changed.
	Token *string
}

// Claims carried by manager tokens.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	CheckUserExists(ctx context.Context) (bool, error)
	Register(ctx context.Context, username, nickname, email, password string) (*AuthResponse, error)
	Login(ctx context.Context, identifier, password string) (*AuthResponse, error)
	GetCurrentUser(ctx context.Context) (*User, error)
	UpdateProfile(ctx context.Context, nickname, email, currentPassword, newPassword string) (*UpdateProfileResponse, error)
	ValidateToken(token string) (bool, error)
}

type authService struct {
	settings repository.SettingsRepository
	now      func() time.Time
}

func NewAuthService(settings repository.SettingsRepository) AuthService {
	return &authService{settings: settings, now: time.Now}
}

func (s *authService) CheckUserExists(ctx context.Context) (bool, error) {
	username, err := s.get(ctx, keyUserUsername)
	if err != nil {
		return false, err
	}
	return username != "", nil
}

func (s *authService) Register(ctx context.Context, username, nickname, email, password string) (*AuthResponse, error) {
	username = strings.TrimSpace(username)
	nickname = strings.TrimSpace(nickname)
	email = strings.ToLower(strings.TrimSpace(email))

	switch {
	case username == "":
		return nil, ErrUsernameRequired
	case !usernamePattern.MatchString(username):
		return nil, ErrInvalidUsername
	case email == "":
		return nil, ErrEmailRequired
	case password == "":
		return nil, ErrPasswordRequired
	case len(password) < minPasswordLength:
		return nil, ErrPasswordTooShort
	}

	exists, err := s.CheckUserExists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}
	if nickname == "" {
		nickname = username
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	secret, err := newSecret()
	if err != nil {
		return nil, err
	}

	for _, kv := range [][2]string{
		{keyUserUsername, username},
		{keyUserNickname, nickname},
		{keyUserEmail, email},
		{keyUserPasswordHash, string(hash)},
		{keyUserJWTSecret, secret},
	} {
		if err := s.settings.Set(ctx, kv[0], kv[1]); err != nil {
			return nil, fmt.Errorf("save %s: %w", kv[0], err)
		}
	}

	token, err := s.sign(username, secret)
	if err != nil {
		return nil, err
	}
	logger.Info("manager registered", "module", "service", "action", "create", "resource", "auth", "result", "ok", "username", username)
	return &AuthResponse{Token: token, User: &User{Username: username, Nickname: nickname, Email: email}}, nil
}

func (s *authService) Login(ctx context.Context, identifier, password string) (*AuthResponse, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, ErrUsernameRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	user, err := s.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if identifier != user.Username && !strings.EqualFold(identifier, user.Email) {
		logger.Warn("manager login rejected", "module", "service", "action", "login", "resource", "auth", "result", "failed")
		return nil, ErrInvalidPassword
	}

	if err := s.checkPassword(ctx, password); err != nil {
		logger.Warn("manager login rejected", "module", "service", "action", "login", "resource", "auth", "result", "failed")
		return nil, err
	}

	secret, err := s.secret(ctx)
	if err != nil {
		return nil, err
	}
	token, err := s.sign(user.Username, secret)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{Token: token, User: user}, nil
}

func (s *authService) GetCurrentUser(ctx context.Context) (*User, error) {
	username, err := s.get(ctx, keyUserUsername)
	if err != nil {
		return nil, err
	}
	if username == "" {
		return nil, ErrUserNotFound
	}
	nickname, err := s.get(ctx, keyUserNickname)
	if err != nil {
		return nil, err
	}
	email, err := s.get(ctx, keyUserEmail)
	if err != nil {
		return nil, err
	}
	if nickname == "" {
		nickname = username
	}
	return &User{Username: username, Nickname: nickname, Email: email}, nil
}

func (s *authService) UpdateProfile(ctx context.Context, nickname, email, currentPassword, newPassword string) (*UpdateProfileResponse, error) {
	user, err := s.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}

	if nickname = strings.TrimSpace(nickname); nickname != "" {
		if err := s.settings.Set(ctx, keyUserNickname, nickname); err != nil {
			return nil, fmt.Errorf("save nickname: %w", err)
		}
		user.Nickname = nickname
	}
	if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
		if err := s.settings.Set(ctx, keyUserEmail, email); err != nil {
			return nil, fmt.Errorf("save email: %w", err)
		}
		user.Email = email
	}

	resp := &UpdateProfileResponse{User: user}
	if newPassword == "" {
		return resp, nil
	}

	if currentPassword == "" {
		return nil, ErrCurrentPasswordRequired
	}
	if err := s.checkPassword(ctx, currentPassword); err != nil {
		return nil, err
	}
	if len(newPassword) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if newPassword == currentPassword {
		return nil, ErrSamePassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if err := s.settings.Set(ctx, keyUserPasswordHash, string(hash)); err != nil {
		return nil, fmt.Errorf("save password: %w", err)
	}

	// 旧 token 全部失效
	secret, err := newSecret()
	if err != nil {
		return nil, err
	}
	if err := s.settings.Set(ctx, keyUserJWTSecret, secret); err != nil {
		return nil, fmt.Errorf("save jwt secret: %w", err)
	}
	token, err := s.sign(user.Username, secret)
	if err != nil {
		return nil, err
	}
	resp.Token = &token

	logger.Info("manager password changed", "module", "service", "action", "update", "resource", "auth", "result", "ok")
	return resp, nil
}

func (s *authService) ValidateToken(tokenString string) (bool, error) {
	secret, err := s.get(context.Background(), keyUserJWTSecret)
	if err != nil || secret == "" {
		return false, ErrInvalidToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithTimeFunc(s.now))
	if err != nil || !token.Valid {
		return false, ErrInvalidToken
	}
	if claims.Role != model.RoleManager {
		return false, ErrInvalidToken
	}
	return true, nil
}

func (s *authService) checkPassword(ctx context.Context, password string) error {
	hash, err := s.get(ctx, keyUserPasswordHash)
	if err != nil {
		return err
	}
	if hash == "" {
		return ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return ErrInvalidPassword
	}
	return nil
}

// secret returns the signing secret, creating one for accounts that
// predate it.
func (s *authService) secret(ctx context.Context) (string, error) {
	secret, err := s.get(ctx, keyUserJWTSecret)
	if err != nil {
		return "", err
	}
	if secret != "" {
		return secret, nil
	}
	secret, err = newSecret()
	if err != nil {
		return "", err
	}
	if err := s.settings.Set(ctx, keyUserJWTSecret, secret); err != nil {
		return "", fmt.Errorf("save jwt secret: %w", err)
	}
	return secret, nil
}

func (s *authService) sign(username, secret string) (string, error) {
	now := s.now()
	claims := Claims{
		Role: model.RoleManager,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func (s *authService) get(ctx context.Context, key string) (string, error) {
	setting, err := s.settings.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	if setting == nil {
		return "", nil
	}
	return setting.Value, nil
}

func newSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
