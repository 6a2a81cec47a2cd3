package services

import (
	"context"

	"github.com/dmitrijs2005/fleamarket/internal/common"
	"github.com/dmitrijs2005/fleamarket/internal/models"
	"github.com/dmitrijs2005/fleamarket/internal/store"
)

// Admin handles the privilege-gated operations: listing and deleting
// users and items, and role promotion.
type Admin struct {
	store *store.Store
	auth  *Auth
}

func NewAdmin(s *store.Store, a *Auth) *Admin {
	return &Admin{store: s, auth: a}
}

// requireAdmin resolves the session and checks the ADMIN role. An unknown
// session and a session of a non-admin user are rejected with the same
// error kind.
func (s *Admin) requireAdmin(ctx context.Context, token string) (*models.User, error) {
	user, err := s.auth.ResolveSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsAdmin() {
		return nil, common.ErrNotAuthorized
	}
	return user, nil
}

// ListUsers returns every user record.
func (s *Admin) ListUsers(ctx context.Context, token string) ([]models.User, error) {
	if _, err := s.requireAdmin(ctx, token); err != nil {
		return nil, err
	}
	return s.store.Users.GetAll(ctx)
}

// ListItems returns every item record.
func (s *Admin) ListItems(ctx context.Context, token string) ([]models.Item, error) {
	if _, err := s.requireAdmin(ctx, token); err != nil {
		return nil, err
	}
	return s.store.Items.GetAll(ctx)
}

// DeleteUser removes the user with targetID. The user's items,
// interaction history, and live sessions are left in place; a stale
// session stops resolving once the record is gone. Returns false when no
// such user exists, which is not an error. An admin cannot delete their
// own account.
func (s *Admin) DeleteUser(ctx context.Context, token string, targetID int64) (bool, error) {
	admin, err := s.requireAdmin(ctx, token)
	if err != nil {
		return false, err
	}
	if admin.ID == targetID {
		return false, common.ErrSelfDeletion
	}

	removed := false
	_, err = s.store.Users.Update(ctx, func(users []models.User) ([]models.User, error) {
		kept := make([]models.User, 0, len(users))
		for _, u := range users {
			if u.ID == targetID {
				removed = true
				continue
			}
			kept = append(kept, u)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// DeleteItem removes the item with targetID regardless of who listed it.
// Returns false when no such item exists.
func (s *Admin) DeleteItem(ctx context.Context, token string, targetID int64) (bool, error) {
	if _, err := s.requireAdmin(ctx, token); err != nil {
		return false, err
	}

	removed := false
	_, err := s.store.Items.Update(ctx, func(items []models.Item) ([]models.Item, error) {
		kept := make([]models.Item, 0, len(items))
		for _, i := range items {
			if i.ID == targetID {
				removed = true
				continue
			}
			kept = append(kept, i)
		}
		return kept, nil
	})
	if err != nil {
		return false, err
	}
	return removed, nil
}

// PromoteUser raises the target user's role to ADMIN. Promoting someone
// who is already an admin succeeds without change. Returns false when the
// target id does not exist.
func (s *Admin) PromoteUser(ctx context.Context, token string, targetID int64) (bool, error) {
	if _, err := s.requireAdmin(ctx, token); err != nil {
		return false, err
	}

	found := false
	_, err := s.store.Users.Update(ctx, func(users []models.User) ([]models.User, error) {
		for i := range users {
			if users[i].ID == targetID {
				users[i].Role = models.RoleAdmin
				found = true
				break
			}
		}
		return users, nil
	})
	if err != nil {
		return false, err
	}
	return found, nil
}
