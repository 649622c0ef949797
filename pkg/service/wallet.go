package service

import "context"

// WalletService defines the interface for wallet-related operations
type WalletService interface {
	GetBalance(ctx context.Context) (int64, error)
	DeductBalance(ctx context.Context, amount int64, reason string) (int64, error)
	AddBalance(ctx context.Context, amount int64, reason string) (int64, error)
}

// SavingsService adds the savings pot to the wallet operations
type SavingsService interface {
	WalletService
	GetSavings(ctx context.Context) (int64, error)
	MoveToSavings(ctx context.Context, amount int64) error
	MoveFromSavings(ctx context.Context, amount int64) error
	CreditSavings(ctx context.Context, amount int64) error
}
