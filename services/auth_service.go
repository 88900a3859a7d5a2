package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/narbehner/Movie-Watchlist/models"
)

const sessionTokenTTL = 24 * time.Hour

type AuthService struct {
	userRepo  UserStore
	jwtSecret string
	log       logrus.FieldLogger
}

func NewAuthService(userRepo UserStore, jwtSecret string, log logrus.FieldLogger) *AuthService {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
		log:       log,
	}
}

// NewEntityID generates the opaque identifier used for both users and
// movies: a UUID rendered as a 32-char hex string.
func NewEntityID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Register creates a new user. It does not log the user in; the caller
// is expected to send them to the login flow.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("looking up email: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := models.NewUser(NewEntityID(), req.Email, string(hashed))
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID}).Info("user registered")
	return user, nil
}

// Login verifies credentials and issues a session token. An unknown
// email and a wrong password produce the same error so the response
// cannot be used to probe which emails are registered.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, fmt.Errorf("looking up email: %w", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.userRepo.TouchLastLogin(ctx, user.ID, now); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("failed to update last login")
	}
	user.LastLogin = now

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     now.Add(sessionTokenTTL).Unix(),
	})

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", nil, fmt.Errorf("signing session token: %w", err)
	}

	return tokenString, user, nil
}
