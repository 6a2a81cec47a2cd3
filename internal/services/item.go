package services

import (
	"context"
	"strings"
	"time"

	"github.com/dmitrijs2005/fleamarket/internal/common"
	"github.com/dmitrijs2005/fleamarket/internal/models"
	"github.com/dmitrijs2005/fleamarket/internal/store"
)

// Items handles publishing, browsing, and the express-interest flow.
type Items struct {
	store *store.Store
	auth  *Auth
}

func NewItems(s *store.Store, a *Auth) *Items {
	return &Items{store: s, auth: a}
}

// Publish creates a listing owned by the session's user. The seller id
// always comes from the resolved session, never from the caller. Title,
// description, and price are stored as given: input validation is the
// view layer's concern, not this one's.
func (s *Items) Publish(ctx context.Context, token, title, description string, price float64, imagePaths []string) (*models.Item, error) {
	seller, err := s.auth.ResolveSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, common.ErrNotAuthenticated
	}

	if imagePaths == nil {
		imagePaths = []string{}
	}

	var created models.Item
	_, err = s.store.Items.Update(ctx, func(items []models.Item) ([]models.Item, error) {
		created = models.Item{
			ID:          store.NextID(items),
			SellerID:    seller.ID,
			Title:       title,
			Description: description,
			Price:       price,
			Status:      models.ItemStatusAvailable,
			ImagePaths:  imagePaths,
			CreatedAt:   time.Now(),
		}
		return append(items, created), nil
	})
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListAll returns every listing in store order.
func (s *Items) ListAll(ctx context.Context) ([]models.Item, error) {
	return s.store.Items.GetAll(ctx)
}

// Search returns the items whose title or description contains keyword,
// case-insensitively, in store order. A keyword that is empty after
// trimming matches everything.
func (s *Items) Search(ctx context.Context, keyword string) ([]models.Item, error) {
	items, err := s.store.Items.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return items, nil
	}

	matched := make([]models.Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), keyword) ||
			strings.Contains(strings.ToLower(item.Description), keyword) {
			matched = append(matched, item)
		}
	}
	return matched, nil
}

// ExpressInterest records the buyer's interest in an item and returns the
// seller's contact info. Every successful call appends a fresh
// interaction record; repeated calls for the same item and buyer are not
// deduplicated.
func (s *Items) ExpressInterest(ctx context.Context, token string, itemID int64) (string, error) {
	buyer, err := s.auth.ResolveSession(ctx, token)
	if err != nil {
		return "", err
	}
	if buyer == nil {
		return "", common.ErrNotAuthenticated
	}

	items, err := s.store.Items.GetAll(ctx)
	if err != nil {
		return "", err
	}
	var item *models.Item
	for i := range items {
		if items[i].ID == itemID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		return "", common.ErrItemNotFound
	}

	if item.SellerID == buyer.ID {
		return "", common.ErrSelfInterest
	}

	// Seller references are not cascade-protected: the seller may have
	// been deleted after the item was published.
	users, err := s.store.Users.GetAll(ctx)
	if err != nil {
		return "", err
	}
	var seller *models.User
	for i := range users {
		if users[i].ID == item.SellerID {
			seller = &users[i]
			break
		}
	}
	if seller == nil {
		return "", common.ErrSellerNotFound
	}

	_, err = s.store.Interactions.Update(ctx, func(interactions []models.InterestInteraction) ([]models.InterestInteraction, error) {
		record := models.InterestInteraction{
			ID:              store.NextID(interactions),
			ItemID:          item.ID,
			BuyerID:         buyer.ID,
			InteractionTime: time.Now(),
		}
		return append(interactions, record), nil
	})
	if err != nil {
		return "", err
	}

	return seller.ContactInfo, nil
}
