package domain

import "errors"

var (
	ErrUnknownItem       = errors.New("unknown item")
	ErrAlreadyOwned      = errors.New("item already owned")
	ErrNothingToLeverage = errors.New("no money to leverage for work")
)
