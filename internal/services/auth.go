// Package services contains the business logic of the classifieds core:
// authentication, listings, and admin operations. Services take primitive
// inputs plus a session token, return plain values or sentinel errors
// from internal/common, and never log or render anything themselves;
// presentation belongs entirely to the view layer.
package services

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/fleamarket/internal/common"
	"github.com/dmitrijs2005/fleamarket/internal/models"
	"github.com/dmitrijs2005/fleamarket/internal/session"
	"github.com/dmitrijs2005/fleamarket/internal/store"
)

// dummyCredential is compared against when the email is unknown, so a
// failed login costs roughly the same whether the email or the secret was
// wrong.
var dummyCredential = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("fleamarket-dummy-secret"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

// Auth handles registration, login, logout, and session resolution.
type Auth struct {
	store    *store.Store
	sessions *session.Registry
}

func NewAuth(s *store.Store, r *session.Registry) *Auth {
	return &Auth{store: s, sessions: r}
}

// Register creates a new user. The email must not already be taken
// (exact, case-sensitive match); the secret is stored as a bcrypt hash.
// On a duplicate email the store is left untouched.
func (a *Auth) Register(ctx context.Context, email, secret, displayName, contactInfo string) (*models.User, error) {
	credential, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var created models.User
	_, err = a.store.Users.Update(ctx, func(users []models.User) ([]models.User, error) {
		for _, u := range users {
			if u.Email == email {
				return nil, common.ErrEmailAlreadyRegistered
			}
		}
		created = models.User{
			ID:          store.NextID(users),
			Email:       email,
			Credential:  string(credential),
			DisplayName: displayName,
			ContactInfo: contactInfo,
			Role:        models.RoleUser,
			CreatedAt:   time.Now(),
		}
		return append(users, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Login verifies the credentials and issues a session token. An unknown
// email and a wrong secret both fail with ErrInvalidCredentials.
func (a *Auth) Login(ctx context.Context, email, secret string) (string, *models.User, error) {
	users, err := a.store.Users.GetAll(ctx)
	if err != nil {
		return "", nil, err
	}

	var user *models.User
	for i := range users {
		if users[i].Email == email {
			user = &users[i]
			break
		}
	}

	credential := dummyCredential
	if user != nil {
		credential = []byte(user.Credential)
	}
	if err := bcrypt.CompareHashAndPassword(credential, []byte(secret)); err != nil || user == nil {
		return "", nil, common.ErrInvalidCredentials
	}

	token := a.sessions.Create(user.ID)
	return token, user, nil
}

// Logout destroys the session. Destroying an unknown token is a no-op.
func (a *Auth) Logout(ctx context.Context, token string) {
	a.sessions.Destroy(token)
}

// ResolveSession maps a token back to its user, re-reading the user from
// the store on every call so role changes and deletions become visible
// immediately. An unknown token, or a session whose user record has been
// deleted, resolves to (nil, nil); the error path is reserved for
// storage failures.
func (a *Auth) ResolveSession(ctx context.Context, token string) (*models.User, error) {
	userID, ok := a.sessions.Resolve(token)
	if !ok {
		return nil, nil
	}

	users, err := a.store.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == userID {
			return &users[i], nil
		}
	}
	return nil, nil
}
