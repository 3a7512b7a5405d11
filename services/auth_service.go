package services

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"prompt-judge/auth"
	"prompt-judge/dto"
	"prompt-judge/models"
)

type userStore interface {
	Insert(ctx context.Context, u *models.User) (primitive.ObjectID, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

type tokenSigner interface {
	Sign(userID string) (string, error)
}

// AuthService handles signup, login and profile lookup.
type AuthService struct {
	users  userStore
	tokens tokenSigner
}

func NewAuthService(users userStore, tokens tokenSigner) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Signup registers a new account and returns a signed token. A duplicate
// email is rejected by the unique index and surfaces as ErrEmailTaken.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*dto.AuthResponse, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" || len(password) < 6 {
		return nil, ErrValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{Name: name, Email: email, Password: hash}
	id, err := s.users.Insert(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	user.ID = id

	token, err := s.tokens.Sign(id.Hex())
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: dto.NewUserDTO(*user)}, nil
}

// Login verifies the credentials. Unknown email and wrong password both
// return ErrInvalidLogin so callers cannot probe which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidLogin
		}
		return nil, err
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidLogin
	}

	token, err := s.tokens.Sign(user.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: dto.NewUserDTO(*user)}, nil
}

// Profile returns the account behind a verified token subject.
func (s *AuthService) Profile(ctx context.Context, userID primitive.ObjectID) (*dto.UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	out := dto.NewUserDTO(*user)
	return &out, nil
}
