package memory

import (
	"context"

	"github.com/RodolfoDevApp/eventshop-checkout-go/internal/domain"
)

// MemPurchaseHistoryRepository holds per-user purchase history for the
// lifetime of the process. Append-only; nothing is ever pruned.
type MemPurchaseHistoryRepository struct {
	byUser domain.PurchaseHistory
}

func NewMemPurchaseHistoryRepository() *MemPurchaseHistoryRepository {
	return &MemPurchaseHistoryRepository{
		byUser: make(domain.PurchaseHistory),
	}
}

func (r *MemPurchaseHistoryRepository) Append(ctx context.Context, userID, productName string) error {
	r.byUser[userID] = append(r.byUser[userID], productName)
	return nil
}

func (r *MemPurchaseHistoryRepository) GetByUser(ctx context.Context, userID string) ([]string, error) {
	history := r.byUser[userID]
	out := make([]string, len(history))
	copy(out, history)
	return out, nil
}

func (r *MemPurchaseHistoryRepository) All(ctx context.Context) (domain.PurchaseHistory, error) {
	out := make(domain.PurchaseHistory, len(r.byUser))
	for userID, history := range r.byUser {
		cp := make([]string, len(history))
		copy(cp, history)
		out[userID] = cp
	}
	return out, nil
}
