package governance

import (
	"github.com/nspcc-dev/antfarm-contract/common"
	"github.com/nspcc-dev/antfarm-contract/contracts/governance/governanceconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/convert"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Proposal is a request to change egg price.
type Proposal struct {
	ID        int
	Price     int
	CreatedAt int
	Executed  bool
	// VoterCount is the number of cast votes. Voters are stored separately
	// and listed by Voters method.
	VoterCount int
	// Favor is the number of positive votes.
	Favor int
}

const (
	marketKey   = 'm'
	eggsKey     = 'e'
	governorKey = 'g'
	durationKey = 'd'
	countKey    = 'c'

	proposalPrefix = 'p'
	votePrefix     = 'v'
	voterPrefix    = 'V'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	marketAddr := args[0].(interop.Hash160)
	eggsAddr := args[1].(interop.Hash160)
	governor := args[2].(interop.Hash160)
	duration := args[3].(int)

	if len(marketAddr) != interop.Hash160Len {
		panic("incorrect length of market contract address")
	}
	if len(eggsAddr) != interop.Hash160Len {
		panic("incorrect length of eggs contract address")
	}
	if len(governor) != interop.Hash160Len {
		panic("incorrect length of governor address")
	}
	if duration < 0 {
		panic("negative voting duration")
	}
	if duration == 0 {
		duration = governanceconst.DefaultVotingDuration
	}

	ctx := storage.GetContext()
	storage.Put(ctx, []byte{marketKey}, marketAddr)
	storage.Put(ctx, []byte{eggsKey}, eggsAddr)
	storage.Put(ctx, []byte{governorKey}, governor)
	storage.Put(ctx, []byte{durationKey}, duration)
	storage.Put(ctx, []byte{countKey}, 0)

	runtime.Log("governance contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("governance contract updated")
}

// CreateProposal opens a vote for the new egg price. It must be witnessed by
// the governor. Returns ID of the new proposal.
func CreateProposal(price int) int {
	ctx := storage.GetContext()
	common.CheckWitness(getHash(ctx, governorKey))

	if price <= 0 {
		panic(governanceconst.ErrWrongPrice)
	}

	id := storage.Get(ctx, []byte{countKey}).(int)
	p := Proposal{
		ID:         id,
		Price:      price,
		CreatedAt:  runtime.GetTime(),
		Executed:   false,
		VoterCount: 0,
		Favor:      0,
	}

	putProposal(ctx, p)
	storage.Put(ctx, []byte{countKey}, id+1)

	runtime.Notify("ProposalCreated", id, price, p.CreatedAt)
	return id
}

// Vote casts a vote of the account holding eggs. Every account has a single
// vote per proposal regardless of its egg balance. It must be witnessed by the
// voter.
func Vote(voter interop.Hash160, id int, choice bool) {
	common.CheckWitness(voter)

	ctx := storage.GetContext()
	p := getProposal(ctx, id)

	eggs := contract.Call(getHash(ctx, eggsKey), "balanceOf", contract.ReadOnly, voter).(int)
	if eggs == 0 {
		panic(governanceconst.ErrNotEligibleVoter)
	}

	if p.Executed {
		panic(governanceconst.ErrProposalAlreadyExecuted)
	}

	if runtime.GetTime() >= p.CreatedAt+getDuration(ctx) {
		panic(governanceconst.ErrVotingPeriodEnded)
	}

	key := voteKey(id, voter)
	if storage.Get(ctx, key) != nil {
		panic(governanceconst.ErrAlreadyVoted)
	}

	common.SetSerialized(ctx, key, choice)
	storage.Put(ctx, voterKey(id, p.VoterCount), voter)

	p.VoterCount++
	if choice {
		p.Favor++
	}
	putProposal(ctx, p)

	runtime.Notify("VoteCast", id, voter, choice)
}

// ExecuteProposal applies the proposed price if the majority of cast votes
// is positive. It must be witnessed by the governor and can be called only
// after the voting window. Returns false and changes nothing if there is no
// majority, so the call may be repeated.
func ExecuteProposal(id int) bool {
	ctx := storage.GetContext()
	common.CheckWitness(getHash(ctx, governorKey))

	p := getProposal(ctx, id)
	if p.Executed {
		panic(governanceconst.ErrProposalAlreadyExecuted)
	}

	if runtime.GetTime() < p.CreatedAt+getDuration(ctx) {
		panic(governanceconst.ErrVotingPeriodNotEnded)
	}

	if p.Favor <= p.VoterCount/2 {
		runtime.Log("governance: proposal has not reached majority")
		return false
	}

	p.Executed = true
	putProposal(ctx, p)

	ok := contract.Call(getHash(ctx, marketKey), "setEggPrice", contract.All, p.Price).(bool)
	if !ok {
		panic(governanceconst.ErrPriceUpdateFailed)
	}

	runtime.Notify("ProposalExecuted", id, p.Price)
	return true
}

// SetGovernor changes the account allowed to create and execute proposals.
// It can be invoked only by committee.
func SetGovernor(governor interop.Hash160) {
	if len(governor) != interop.Hash160Len {
		panic("incorrect length of governor address")
	}
	if !common.HasUpdateAccess() {
		panic(common.ErrNotAuthorized)
	}

	storage.Put(storage.GetContext(), []byte{governorKey}, governor)
	runtime.Log("governance: governor changed")
}

// GetProposal returns the proposal with the specified ID.
func GetProposal(id int) Proposal {
	return getProposal(storage.GetReadOnlyContext(), id)
}

// ProposalCount returns the number of created proposals.
func ProposalCount() int {
	return storage.Get(storage.GetReadOnlyContext(), []byte{countKey}).(int)
}

// ProposalStatus returns one of governanceconst.Status* values for the
// proposal with the specified ID.
func ProposalStatus(id int) int {
	ctx := storage.GetReadOnlyContext()
	p := getProposal(ctx, id)

	switch {
	case p.Executed:
		return governanceconst.StatusExecuted
	case runtime.GetTime() < p.CreatedAt+getDuration(ctx):
		return governanceconst.StatusVoting
	default:
		return governanceconst.StatusClosed
	}
}

// Voters returns iterator over accounts voted for the proposal in the order
// of votes.
func Voters(id int) iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	getProposal(ctx, id)
	return storage.Find(ctx, append([]byte{voterPrefix}, index(id)...), storage.ValuesOnly)
}

// HasVoted returns true if the account has voted for the proposal.
func HasVoted(id int, voter interop.Hash160) bool {
	if len(voter) != interop.Hash160Len {
		panic("invalid account")
	}
	ctx := storage.GetReadOnlyContext()
	getProposal(ctx, id)
	return storage.Get(ctx, voteKey(id, voter)) != nil
}

// GetVote returns the choice of the account. It panics if the account has not
// voted for the proposal.
func GetVote(id int, voter interop.Hash160) bool {
	if len(voter) != interop.Hash160Len {
		panic("invalid account")
	}
	ctx := storage.GetReadOnlyContext()
	getProposal(ctx, id)

	choice := common.GetSerialized(ctx, voteKey(id, voter))
	if choice == nil {
		panic("vote not found")
	}
	return choice.(bool)
}

// VotingDuration returns the voting window in milliseconds.
func VotingDuration() int {
	return getDuration(storage.GetReadOnlyContext())
}

// Governor returns the account allowed to create and execute proposals.
func Governor() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), governorKey)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getProposal(ctx storage.Context, id int) Proposal {
	if id < 0 {
		panic(governanceconst.ErrInvalidProposalID)
	}
	p := common.GetSerialized(ctx, proposalKey(id))
	if p == nil {
		panic(governanceconst.ErrInvalidProposalID)
	}
	return p.(Proposal)
}

func putProposal(ctx storage.Context, p Proposal) {
	common.SetSerialized(ctx, proposalKey(p.ID), p)
}

func proposalKey(id int) []byte {
	return append([]byte{proposalPrefix}, convert.ToBytes(id)...)
}

// voteKey returns the key of the vote. Voter goes first since it has fixed
// length.
func voteKey(id int, voter interop.Hash160) []byte {
	return append(append([]byte{votePrefix}, voter...), convert.ToBytes(id)...)
}

// voterKey returns the key of the seq-th voter of the proposal.
func voterKey(id, seq int) []byte {
	return append(append([]byte{voterPrefix}, index(id)...), index(seq)...)
}

// index returns fixed-width big-endian representation of n, so that keys
// sharing a prefix are iterated in numeric order.
func index(n int) []byte {
	b := make([]byte, 4)
	for i := 3; i >= 0; i-- {
		b[i] = byte(n % 256)
		n = n / 256
	}
	return b
}

func getDuration(ctx storage.Context) int {
	return storage.Get(ctx, []byte{durationKey}).(int)
}

func getHash(ctx storage.Context, key byte) interop.Hash160 {
	return storage.Get(ctx, []byte{key}).(interop.Hash160)
}
