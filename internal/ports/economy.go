package ports

import "context"

// WalletUpdate is a single cash change for a user. Negative amounts debit.
type WalletUpdate struct {
	UserID   string
	Amount   int64
	Metadata map[string]interface{}
}

// EconomyPort manages the cash currency used for table stakes.
type EconomyPort interface {
	// GetBalance retrieves the current cash balance for a user.
	GetBalance(ctx context.Context, userID string) (int64, error)

	// UpdateBalances applies multiple wallet changes in one call. Used to
	// collect stakes at game start and pay the pot to the winner.
	UpdateBalances(ctx context.Context, updates []WalletUpdate) error
}
