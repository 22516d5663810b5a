// Package auth signs users in against the demo user list and issues JWTs.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/session"
)

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", domain.ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", domain.ErrUnauthorized)
)

type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

type SignInResult struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

type SignUpInput struct {
	Name      string
	Email     string
	Password  string
	Role      string
	Specialty string
}

// ProfilePatch carries the fields a user may change on themselves.
type ProfilePatch struct {
	Name           *string
	Specialty      *string
	ProfilePicture *string
}

type Service struct {
	secret   []byte
	ttl      time.Duration
	sessions session.Storage
	now      func() time.Time
	cost     int

	mu      sync.RWMutex
	users   map[string]models.User
	byEmail map[string]string
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithHashCost lowers the bcrypt cost; tests use bcrypt.MinCost.
func WithHashCost(cost int) Option {
	return func(s *Service) { s.cost = cost }
}

func NewService(secret string, ttl time.Duration, sessions session.Storage, opts ...Option) (*Service, error) {
	s := &Service{
		secret:   []byte(secret),
		ttl:      ttl,
		sessions: sessions,
		now:      time.Now,
		cost:     bcrypt.DefaultCost,
		users:    make(map[string]models.User),
		byEmail:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, seed := range demoUsers() {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.password), s.cost)
		if err != nil {
			return nil, fmt.Errorf("hash demo password: %w", err)
		}
		u := seed.user
		u.PasswordHash = string(hash)
		s.put(u)
	}

	return s, nil
}

func (s *Service) put(u models.User) {
	s.users[u.ID] = u
	s.byEmail[u.Email] = u.ID
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// --------------------------------------------------
// Sign in / out
// --------------------------------------------------

func (s *Service) SignIn(ctx context.Context, email, password string, remember bool) (SignInResult, error) {
	s.mu.RLock()
	id, ok := s.byEmail[normalizeEmail(email)]
	u := s.users[id]
	s.mu.RUnlock()

	if !ok || bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return SignInResult{}, ErrInvalidCredentials
	}

	token, err := s.issue(u)
	if err != nil {
		return SignInResult{}, err
	}

	if remember {
		if err := s.remember(ctx, u); err != nil {
			return SignInResult{}, err
		}
	}

	return SignInResult{Token: token, User: u}, nil
}

func (s *Service) SignOut(ctx context.Context, userID string) error {
	return s.sessions.Delete(ctx, session.UserKey(userID))
}

// Remembered returns the profile stored by a "remember me" sign-in.
func (s *Service) Remembered(ctx context.Context, userID string) (models.User, bool, error) {
	raw, ok, err := s.sessions.Get(ctx, session.UserKey(userID))
	if err != nil || !ok {
		return models.User{}, false, err
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		_ = s.sessions.Delete(ctx, session.UserKey(userID))
		return models.User{}, false, nil
	}
	return u, true, nil
}

func (s *Service) remember(ctx context.Context, u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.sessions.Set(ctx, session.UserKey(u.ID), raw)
}

// --------------------------------------------------
// Sign up / profile
// --------------------------------------------------

func (s *Service) SignUp(in SignUpInput) (models.User, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Name == "" {
		return models.User{}, domain.NewValidationError("email", "name and email are required")
	}
	if len(in.Password) < 6 {
		return models.User{}, domain.NewValidationError("password", "must have at least 6 characters")
	}

	role := Role(in.Role)
	if role == "" {
		role = RolePatient
	}
	if !role.Valid() {
		return models.User{}, domain.NewValidationError("role", fmt.Sprintf("unknown role %q", in.Role))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[email]; exists {
		return models.User{}, fmt.Errorf("user with this email: %w", domain.ErrAlreadyExists)
	}

	u := models.User{
		ID:             strconv.Itoa(len(s.users) + 1),
		Name:           in.Name,
		Email:          email,
		PasswordHash:   string(hash),
		Role:           string(role),
		Specialty:      in.Specialty,
		ProfilePicture: DefaultProfilePicture,
	}
	s.put(u)
	return u, nil
}

func (s *Service) User(id string) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok
}

// UpdateProfile merges p and refreshes the remembered copy when there is one.
func (s *Service) UpdateProfile(ctx context.Context, userID string, p ProfilePatch) (models.User, error) {
	s.mu.Lock()
	u, ok := s.users[userID]
	if !ok {
		s.mu.Unlock()
		return models.User{}, fmt.Errorf("user %s: %w", userID, domain.ErrNotFound)
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Specialty != nil {
		u.Specialty = *p.Specialty
	}
	if p.ProfilePicture != nil {
		u.ProfilePicture = *p.ProfilePicture
	}
	s.users[userID] = u
	s.mu.Unlock()

	_, remembered, err := s.sessions.Get(ctx, session.UserKey(userID))
	if err != nil {
		return models.User{}, err
	}
	if remembered {
		if err := s.remember(ctx, u); err != nil {
			return models.User{}, err
		}
	}
	return u, nil
}

// --------------------------------------------------
// JWT
// --------------------------------------------------

func (s *Service) issue(u models.User) (string, error) {
	now := s.now()
	claims := Claims{
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Service) ParseToken(raw string) (Claims, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid || claims.Subject == "" {
		return Claims{}, errors.Join(ErrInvalidToken, err)
	}
	return claims, nil
}
