package governance

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nspcc-dev/antfarm-contract/common"
	"github.com/nspcc-dev/antfarm-contract/contracts/governance/governanceconst"
)

// DefaultVotingDuration is the voting window in milliseconds used if the
// governance contract was deployed with zero duration.
const DefaultVotingDuration = governanceconst.DefaultVotingDuration

// Proposal statuses returned by ProposalStatus.
const (
	StatusVoting   = governanceconst.StatusVoting
	StatusClosed   = governanceconst.StatusClosed
	StatusExecuted = governanceconst.StatusExecuted
)

// Errors thrown by the governance contract. Use ParseError or
// ErrorFromException to match contract failures against them.
var (
	ErrNotAuthorized           = errors.New(common.ErrNotAuthorized)
	ErrWrongPrice              = errors.New(governanceconst.ErrWrongPrice)
	ErrInvalidProposalID       = errors.New(governanceconst.ErrInvalidProposalID)
	ErrProposalAlreadyExecuted = errors.New(governanceconst.ErrProposalAlreadyExecuted)
	ErrAlreadyVoted            = errors.New(governanceconst.ErrAlreadyVoted)
	ErrVotingPeriodEnded       = errors.New(governanceconst.ErrVotingPeriodEnded)
	ErrVotingPeriodNotEnded    = errors.New(governanceconst.ErrVotingPeriodNotEnded)
	ErrNotEligibleVoter        = errors.New(governanceconst.ErrNotEligibleVoter)
	ErrPriceUpdateFailed       = errors.New(governanceconst.ErrPriceUpdateFailed)
)

var knownErrors = []error{
	ErrNotAuthorized,
	ErrWrongPrice,
	ErrInvalidProposalID,
	ErrProposalAlreadyExecuted,
	ErrAlreadyVoted,
	ErrVotingPeriodEnded,
	ErrVotingPeriodNotEnded,
	ErrNotEligibleVoter,
	ErrPriceUpdateFailed,
}

// ErrorFromException returns the governance error the FAULT exception was
// thrown with or nil if the exception is unknown.
func ErrorFromException(exception string) error {
	for _, err := range knownErrors {
		if strings.Contains(exception, err.Error()) {
			return err
		}
	}
	return nil
}

// ParseError wraps err with the governance error it carries, so it can be
// checked with errors.Is. Unknown errors are returned unchanged.
func ParseError(err error) error {
	if err == nil {
		return nil
	}
	if known := ErrorFromException(err.Error()); known != nil {
		return fmt.Errorf("%w: %w", known, err)
	}
	return err
}
