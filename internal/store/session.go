package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/actuallystonmai/stylesense-service/internal/domain"
)

var hashCost = bcrypt.DefaultCost

// Session is the signed-in state of one client. It is loaded per request
// and passed explicitly to whatever needs the current user.
type Session struct {
	ns   *Namespace
	user *domain.User
}

func LoadSession(ctx context.Context, ns *Namespace) (*Session, error) {
	var u domain.User
	found, err := ns.getJSON(ctx, keyCurrentUser, &u)
	if err != nil {
		return nil, fmt.Errorf("load current user: %w", err)
	}
	s := &Session{ns: ns}
	if found {
		s.user = &u
	}
	return s, nil
}

// User returns nil when nobody is signed in.
func (s *Session) User() *domain.User {
	return s.user
}

// Gender of the signed-in user, or empty.
func (s *Session) Gender() domain.Gender {
	if s == nil || s.user == nil {
		return ""
	}
	return s.user.Gender
}

type SignupInput struct {
	Name        string        `json:"name"`
	Email       string        `json:"email"`
	Password    string        `json:"password"`
	Gender      domain.Gender `json:"gender"`
	Preferences []string      `json:"preferences"`
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (in SignupInput) validate() error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return domain.NewValidationError("Name is required")
	case !strings.Contains(in.Email, "@"):
		return domain.NewValidationError("A valid email is required")
	case in.Password == "":
		return domain.NewValidationError("Password is required")
	case len(in.Password) > 72:
		return domain.NewValidationError("Password must be at most 72 bytes")
	case !in.Gender.Valid():
		return domain.NewValidationError("Gender must be male, female or other")
	}
	return nil
}

// Signup registers a user and signs them in. It fails with
// domain.ErrEmailTaken when the email is already registered.
func (s *Session) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	email := normalizeEmail(in.Email)

	var users []domain.Registration
	if _, err := s.ns.getJSON(ctx, keyUsers, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		if u.Email == email {
			return nil, domain.ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), hashCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	prefs := in.Preferences
	if prefs == nil {
		prefs = []string{}
	}
	reg := domain.Registration{
		User: domain.User{
			ID:          uuid.NewString(),
			Name:        strings.TrimSpace(in.Name),
			Email:       email,
			Gender:      in.Gender,
			Preferences: prefs,
			JoinedAt:    time.Now().UTC(),
		},
		PasswordHash: string(hash),
	}

	users = append(users, reg)
	if err := s.ns.putJSON(ctx, keyUsers, users); err != nil {
		return nil, fmt.Errorf("save users: %w", err)
	}
	if err := s.signIn(ctx, reg.User); err != nil {
		return nil, err
	}
	return s.user, nil
}

// Login fails with domain.ErrInvalidCredentials on an unknown email or a
// wrong password.
func (s *Session) Login(ctx context.Context, email, password string) (*domain.User, error) {
	var users []domain.Registration
	if _, err := s.ns.getJSON(ctx, keyUsers, &users); err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}

	email = normalizeEmail(email)
	for _, u := range users {
		if u.Email != email {
			continue
		}
		err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		if err != nil {
			return nil, fmt.Errorf("compare password: %w", err)
		}
		if err := s.signIn(ctx, u.User); err != nil {
			return nil, err
		}
		return s.user, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *Session) Logout(ctx context.Context) error {
	if err := s.ns.delete(ctx, keyCurrentUser); err != nil {
		return fmt.Errorf("clear current user: %w", err)
	}
	s.user = nil
	return nil
}

func (s *Session) signIn(ctx context.Context, u domain.User) error {
	if err := s.ns.putJSON(ctx, keyCurrentUser, u); err != nil {
		return fmt.Errorf("save current user: %w", err)
	}
	s.user = &u
	return nil
}
