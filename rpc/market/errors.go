package market

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/antfarm-contract/common"
	"github.com/nspcc-dev/antfarm-contract/contracts/market/marketconst"
)

// DefaultBuybackAmount is the GAS amount paid for a sold ant if the market
// was deployed with zero buyback amount.
const DefaultBuybackAmount = marketconst.DefaultBuybackAmount

// Errors thrown by the market contract. Use ParseError or ErrorFromException
// to match contract failures against them.
var (
	ErrNotAuthorized         = errors.New(common.ErrNotAuthorized)
	ErrPriceNotSet           = errors.New(marketconst.ErrPriceNotSet)
	ErrInsufficientPayment   = errors.New(marketconst.ErrInsufficientPayment)
	ErrQuantityMismatch      = errors.New(marketconst.ErrQuantityMismatch)
	ErrNoResourceHeld        = errors.New(marketconst.ErrNoResourceHeld)
	ErrDuplicateAsset        = errors.New(marketconst.ErrDuplicateAsset)
	ErrPaymentTransferFailed = errors.New(marketconst.ErrPaymentTransferFailed)
	ErrReentrantCall         = errors.New(marketconst.ErrReentrantCall)
	ErrOnlyGAS               = errors.New(marketconst.ErrOnlyGAS)
)

var knownErrors = []error{
	ErrNotAuthorized,
	ErrPriceNotSet,
	ErrInsufficientPayment,
	ErrQuantityMismatch,
	ErrNoResourceHeld,
	ErrDuplicateAsset,
	ErrPaymentTransferFailed,
	ErrReentrantCall,
	ErrOnlyGAS,
}

// ErrorFromException returns the market error the FAULT exception was thrown
// with or nil if the exception is unknown.
func ErrorFromException(exception string) error {
	for _, err := range knownErrors {
		if strings.Contains(exception, err.Error()) {
			return err
		}
	}
	return nil
}

// ParseError wraps err with the market error it carries, so it can be checked
// with errors.Is. Unknown errors are returned unchanged.
func ParseError(err error) error {
	if err == nil {
		return nil
	}
	if known := ErrorFromException(err.Error()); known != nil {
		return fmt.Errorf("%w: %w", known, err)
	}
	return err
}
