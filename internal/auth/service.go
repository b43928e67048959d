package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Mahidhar1516/GNI/internal/profile"
	"github.com/Mahidhar1516/GNI/internal/session"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrEmailExists         = errors.New("email already exists")
	ErrInvalidRefreshToken = errors.New("invalid or expired refresh token")
)

// TokenStore persists refresh tokens. *Repository is the database-backed
// implementation; tests substitute an in-memory fake.
type TokenStore interface {
	CreateRefreshToken(ctx context.Context, studentID string, token string, expiresAt time.Time) error
	GetRefreshToken(ctx context.Context, token string) (*RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, token string) error
	DeleteAllStudentTokens(ctx context.Context, studentID string) error
}

// ActivityProducer publishes student-activity events (Kafka in production).
type ActivityProducer interface {
	Publish(ctx context.Context, key string, value interface{}) error
}

type Service struct {
	tm       *TokenManager
	tokens   TokenStore
	profiles profile.Repository
	sessions *session.Provider
	producer ActivityProducer
	logger   *slog.Logger
}

func NewService(tm *TokenManager, tokens TokenStore, profiles profile.Repository, sessions *session.Provider, producer ActivityProducer, logger *slog.Logger) *Service {
	return &Service{
		tm:       tm,
		tokens:   tokens,
		profiles: profiles,
		sessions: sessions,
		producer: producer,
		logger:   logger,
	}
}

// Register creates a new student account
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	existing, _ := s.profiles.GetByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	newProfile := &profile.Profile{
		ID:         uuid.NewString(),
		Email:      req.Email,
		Password:   string(hashedPassword),
		FullName:   req.FullName,
		StudentID:  req.StudentID,
		Department: req.Department,
		Semester:   req.Semester,
	}

	created, err := s.profiles.Create(ctx, newProfile)
	if err != nil {
		return nil, err
	}

	if s.producer != nil {
		event := RegisteredEvent{StudentID: created.ID, Email: created.Email, FullName: created.FullName}
		if err := s.producer.Publish(ctx, created.ID, event); err != nil {
			s.logger.WarnContext(ctx, "failed to publish registration event", "error", err)
		}
	}

	return s.openSession(ctx, created)
}

// Login authenticates a student and returns tokens
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	p, err := s.profiles.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(p.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.openSession(ctx, p)
}

// RefreshAccessToken generates a new access token using refresh token
func (s *Service) RefreshAccessToken(ctx context.Context, refreshTokenString string) (*AuthResponse, error) {
	refreshToken, err := s.tokens.GetRefreshToken(ctx, refreshTokenString)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	p, err := s.profiles.GetByID(ctx, refreshToken.StudentID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	return s.openSession(ctx, p)
}

// Logout invalidates the refresh token and broadcasts the sign-out so every
// dependent view resets.
func (s *Service) Logout(ctx context.Context, refreshTokenString string) error {
	if refreshTokenString != "" {
		if err := s.tokens.DeleteRefreshToken(ctx, refreshTokenString); err != nil {
			return err
		}
	}
	s.sessions.SignOut()
	return nil
}

// LogoutAll invalidates all refresh tokens for a student
func (s *Service) LogoutAll(ctx context.Context, studentID string) error {
	if err := s.tokens.DeleteAllStudentTokens(ctx, studentID); err != nil {
		return err
	}
	s.sessions.SignOut()
	return nil
}

// openSession creates the token pair and announces the sign-in.
func (s *Service) openSession(ctx context.Context, p *profile.Profile) (*AuthResponse, error) {
	accessToken, err := s.tm.GenerateAccessToken(p.ID, p.Email)
	if err != nil {
		return nil, err
	}

	refreshToken, err := GenerateRefreshToken()
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(s.tm.RefreshTTL())
	if err := s.tokens.CreateRefreshToken(ctx, p.ID, refreshToken, expiresAt); err != nil {
		return nil, err
	}

	s.sessions.SignIn(session.Identity{ID: p.ID, Email: p.Email})

	return &AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Student:      p,
	}, nil
}
