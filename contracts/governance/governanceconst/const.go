package governanceconst

const (
	// DefaultVotingDuration is the voting window in milliseconds used if
	// no other duration is set at deploy: 7 days.
	DefaultVotingDuration = 7 * 24 * 60 * 60 * 1000

	// ErrWrongPrice is thrown when a proposal has non-positive price.
	ErrWrongPrice = "wrong price"
	// ErrInvalidProposalID is thrown when a proposal does not exist.
	ErrInvalidProposalID = "invalid proposal id"
	// ErrProposalAlreadyExecuted is thrown on vote or execution of the
	// executed proposal.
	ErrProposalAlreadyExecuted = "proposal already executed"
	// ErrAlreadyVoted is thrown on the second vote of the same account.
	ErrAlreadyVoted = "already voted"
	// ErrVotingPeriodEnded is thrown on a vote after the voting window.
	ErrVotingPeriodEnded = "voting period ended"
	// ErrVotingPeriodNotEnded is thrown on execution within the voting window.
	ErrVotingPeriodNotEnded = "voting period not ended"
	// ErrNotEligibleVoter is thrown on a vote of the account without eggs.
	ErrNotEligibleVoter = "not eligible voter"
	// ErrPriceUpdateFailed is thrown when the market rejects the new price.
	ErrPriceUpdateFailed = "price update failed"
)

// Proposal statuses returned by proposalStatus method.
const (
	// StatusVoting means the voting window is open.
	StatusVoting = iota
	// StatusClosed means the voting window is over and the proposal has not
	// been executed. Execution may still succeed if votes form a majority.
	StatusClosed
	// StatusExecuted means the new price has been applied. It is final.
	StatusExecuted
)
