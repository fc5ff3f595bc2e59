package application

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/domain"
)

const DefaultRecommendationLimit = 5

// RecommendationService ranks products by co-purchase frequency: how often a
// candidate shows up in the baskets of other users who bought something the
// target user also bought.
type RecommendationService struct {
	history domain.PurchaseHistoryRepository
	limit   int
}

func NewRecommendationService(history domain.PurchaseHistoryRepository, limit int) *RecommendationService {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	return &RecommendationService{history: history, limit: limit}
}

// RecordPurchase appends to the user's history. Duplicates are allowed;
// a repeat purchase is a real signal, not an error.
func (s *RecommendationService) RecordPurchase(ctx context.Context, userID, productName string) error {
	if err := s.history.Append(ctx, userID, productName); err != nil {
		return fmt.Errorf("append purchase for user %s: %w", userID, err)
	}
	return nil
}

// GetRecommendations returns up to the configured limit of product names,
// ordered by co-purchase frequency descending and name ascending on ties.
// A user with no history gets an empty slice, not an error.
//
// The counters are shared across the whole scan: duplicates in the user's
// own history re-run the co-purchaser scan once per occurrence, and a
// product the user already bought can be recommended back when another
// co-purchaser's basket carries it past the q != p check. Both behaviors
// are intentional and pinned by tests.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID string) ([]string, error) {
	own, err := s.history.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load history for user %s: %w", userID, err)
	}
	if len(own) == 0 {
		return []string{}, nil
	}

	all, err := s.history.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load purchase history: %w", err)
	}

	frequency := make(map[string]int)
	for _, bought := range own {
		for otherID, basket := range all {
			if otherID == userID || !slices.Contains(basket, bought) {
				continue
			}
			for _, candidate := range basket {
				if candidate != bought {
					frequency[candidate]++
				}
			}
		}
	}

	ranked := make([]string, 0, len(frequency))
	for name := range frequency {
		ranked = append(ranked, name)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if frequency[ranked[i]] != frequency[ranked[j]] {
			return frequency[ranked[i]] > frequency[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	if len(ranked) > s.limit {
		ranked = ranked[:s.limit]
	}
	return ranked, nil
}
