package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/disasterconnect/disaster_coordination_system/internal/config"
	"github.com/disasterconnect/disaster_coordination_system/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// UserRepository определяет контракт для работы с коллекцией пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, username string, at time.Time) error
}

// AuthService определяет контракт регистрации и входа пользователей
type AuthService interface {
	Register(ctx context.Context, username, password, email string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}

type authService struct {
	repo   UserRepository
	logger *logrus.Logger
	cfg    *config.Config
}

func NewAuthService(repo UserRepository, logger *logrus.Logger, cfg *config.Config) AuthService {
	return &authService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// Register создает пользователя с bcrypt-хешем пароля.
// Занятое имя пользователя отклоняется с ErrUserExists.
func (s *authService) Register(ctx context.Context, username, password, email string) (*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Register",
		"username": username,
	})
	log.Info("Attempting to register a new user")

	existing, err := s.repo.GetByUsername(ctx, username)
	if err != nil && !errors.Is(err, ErrNotFound) {
		log.WithError(err).Error("Failed to check username uniqueness")
		return nil, fmt.Errorf("service: could not check username: %w", err)
	}
	if existing != nil {
		log.Warn("Username already taken")
		return nil, fmt.Errorf("service: user %q: %w", username, ErrUserExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, fmt.Errorf("service: could not hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
		Role:         models.RoleUser,
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, fmt.Errorf("service: could not create user: %w", err)
	}

	log.WithField("user_id", user.ID.Hex()).Info("User registered successfully")
	return user, nil
}

// Login проверяет пароль, фиксирует last_login и выдает JWT
func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "auth",
		"method":   "Login",
		"username": username,
	})
	log.Info("Attempting user login")

	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("Login attempt for unknown user")
			return "", nil, ErrInvalidCredentials
		}
		log.WithError(err).Error("Failed to get user from repository")
		return "", nil, fmt.Errorf("service: could not get user: %w", err)
	}

	if !user.IsActive {
		log.Warn("Login attempt for inactive user")
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Invalid password")
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.repo.UpdateLastLogin(ctx, username, now); err != nil {
		// Не критично для входа, только логируем
		log.WithError(err).Warn("Failed to update last login timestamp")
	}
	user.LastLogin = &now

	token, err := GenerateToken(user, s.cfg.JWTSecret, s.cfg.JWTTTL)
	if err != nil {
		log.WithError(err).Error("Failed to sign JWT")
		return "", nil, fmt.Errorf("service: could not sign token: %w", err)
	}

	log.Info("User logged in successfully")
	return token, user, nil
}

// GenerateToken выдает HS256 JWT с user_id и username в claims
func GenerateToken(user *models.User, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID.Hex(),
		"username": user.Username,
		"exp":      time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken проверяет подпись и срок действия токена, возвращая claims
func ParseToken(tokenString, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("unexpected token claims")
	}
	return claims, nil
}
