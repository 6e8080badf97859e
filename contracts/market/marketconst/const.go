package marketconst

const (
	// DefaultBuybackAmount is the GAS amount (in Fixed8) paid for a sold ant
	// if no other amount is set at deploy: 0.0005 GAS.
	DefaultBuybackAmount = 5_0000

	// ErrPriceNotSet is thrown when eggs are bought while the price is not
	// positive.
	ErrPriceNotSet = "price not set"
	// ErrInsufficientPayment is thrown when payment is less than the price of
	// a single egg.
	ErrInsufficientPayment = "insufficient payment"
	// ErrQuantityMismatch is thrown when the requested amount of eggs exceeds
	// the amount the payment covers.
	ErrQuantityMismatch = "quantity mismatch"
	// ErrNoResourceHeld is thrown when an ant is created by the account
	// without eggs.
	ErrNoResourceHeld = "no eggs held"
	// ErrDuplicateAsset is thrown when the next ant ID is already allocated.
	ErrDuplicateAsset = "ant already exists"
	// ErrPaymentTransferFailed is thrown when GAS can't be transferred.
	ErrPaymentTransferFailed = "payment transfer failed"
	// ErrReentrantCall is thrown when the market is re-entered while it waits
	// for an external call to complete.
	ErrReentrantCall = "reentrant call"
	// ErrOnlyGAS is thrown when the market receives NEP-17 tokens other
	// than GAS.
	ErrOnlyGAS = "only GAS is accepted"
)
