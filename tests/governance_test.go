package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/antfarm-contract/common"
	"github.com/nspcc-dev/antfarm-contract/contracts/governance/governanceconst"
	"github.com/nspcc-dev/antfarm-contract/rpc/governance"
	"github.com/nspcc-dev/antfarm-contract/rpc/market"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/encoding/bigint"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// newVoter returns an account holding a single egg.
func (f *farm) newVoter(t *testing.T) neotest.Signer {
	acc := f.NewAccount(t)
	f.buyEggs(t, acc, 1, eggPrice)
	return acc
}

// createProposal creates a proposal and returns its creation time.
func (f *farm) createProposal(t *testing.T, price, expectedID int64) uint64 {
	f.governanceInvoker(f.governor).Invoke(t, expectedID, "createProposal", price)
	return f.proposal(t, expectedID).CreatedAt.Uint64()
}

func (f *farm) vote(t *testing.T, voter neotest.Signer, id int64, choice bool) util.Uint256 {
	return f.governanceInvoker(voter).Invoke(t, stackitem.Null{}, "vote", voter.ScriptHash(), id, choice)
}

func (f *farm) voters(t *testing.T, id int64) []util.Uint160 {
	s, err := f.governanceInvoker(f.Committee).TestInvoke(t, "voters", id)
	require.NoError(t, err)

	items := iteratorToArray(s.Pop().Value().(*storage.Iterator))
	res := make([]util.Uint160, 0, len(items))
	for _, item := range items {
		b, err := item.TryBytes()
		require.NoError(t, err)
		u, err := util.Uint160DecodeBytesBE(b)
		require.NoError(t, err)
		res = append(res, u)
	}
	return res
}

// storedProposal returns raw storage value of the proposal.
func (f *farm) storedProposal(t *testing.T, id int64) []byte {
	cs := f.Chain.GetContractState(f.governance)
	require.NotNil(t, cs)

	key := append([]byte{'p'}, bigint.ToBytes(big.NewInt(id))...)
	v := f.Chain.GetStorageItem(cs.ID, key)
	require.NotNil(t, v)
	return v
}

func TestGovernanceDeploy(t *testing.T) {
	f := newFarm(t, farmConfig{price: eggPrice})
	c := f.governanceInvoker(f.Committee)

	c.Invoke(t, votingDuration, "votingDuration")
	c.Invoke(t, f.governor.ScriptHash(), "governor")
	c.Invoke(t, 0, "proposalCount")
	c.Invoke(t, common.Version, "version")

	e := newExecutor(t)
	ctr := neotest.CompileFile(t, e.CommitteeHash, governancePath, path.Join(governancePath, "config.yml"))
	e.DeployContract(t, ctr, []any{util.Uint160{1}, util.Uint160{2}, e.CommitteeHash, 0})
	e.CommitteeInvoker(ctr.Hash).Invoke(t, governanceconst.DefaultVotingDuration, "votingDuration")
}

func TestGovernanceCreateProposal(t *testing.T) {
	f := newFarm(t, farmConfig{price: eggPrice})
	g := f.governanceInvoker(f.governor)

	f.governanceInvoker(f.NewAccount(t)).InvokeFail(t, common.ErrNotAuthorized, "createProposal", eggPrice)
	f.governanceInvoker(f.Committee).InvokeFail(t, common.ErrNotAuthorized, "createProposal", eggPrice)

	g.InvokeFail(t, governanceconst.ErrWrongPrice, "createProposal", 0)
	g.InvokeFail(t, governanceconst.ErrWrongPrice, "createProposal", -5)

	h := g.Invoke(t, 0, "createProposal", 2*eggPrice)
	createdAt := f.TopBlock(t).Timestamp

	events, err := governance.ProposalCreatedEventsFromApplicationLog(f.applicationLog(t, h))
	require.NoError(t, err)
	require.Equal(t, []*governance.ProposalCreatedEvent{{
		ID:        bigInt(0),
		Price:     bigInt(2 * eggPrice),
		CreatedAt: bigInt(int64(createdAt)),
	}}, events)

	g.Invoke(t, 1, "createProposal", 3*eggPrice)
	g.Invoke(t, 2, "proposalCount")

	p := f.proposal(t, 0)
	require.EqualValues(t, 0, p.ID.Int64())
	require.EqualValues(t, 2*eggPrice, p.Price.Int64())
	require.EqualValues(t, createdAt, p.CreatedAt.Uint64())
	require.False(t, p.Executed)
	require.EqualValues(t, 0, p.VoterCount.Int64())
	require.EqualValues(t, 0, p.Favor.Int64())
	require.Empty(t, f.voters(t, 0))

	g.Invoke(t, governanceconst.StatusVoting, "proposalStatus", 1)
	g.InvokeFail(t, governanceconst.ErrInvalidProposalID, "getProposal", 2)
	g.InvokeFail(t, governanceconst.ErrInvalidProposalID, "getProposal", -1)
	g.InvokeFail(t, governanceconst.ErrInvalidProposalID, "proposalStatus", 2)
	g.InvokeFail(t, governanceconst.ErrInvalidProposalID, "voters", 2)
}

func TestGovernanceVote(t *testing.T) {
	f := newFarm(t, farmConfig{price: eggPrice})
	v1, v2, v3, late := f.newVoter(t), f.newVoter(t), f.newVoter(t), f.newVoter(t)
	noEggs := f.NewAccount(t)

	createdAt := f.createProposal(t, 2*eggPrice, 0)
	g := f.governanceInvoker(v1)

	g.InvokeFail(t, governanceconst.ErrInvalidProposalID, "vote", v1.ScriptHash(), 1, true)
	f.governanceInvoker(v2).InvokeFail(t, common.ErrNotAuthorized, "vote", v1.ScriptHash(), 0, true)
	f.governanceInvoker(noEggs).InvokeFail(t, governanceconst.ErrNotEligibleVoter, "vote", noEggs.ScriptHash(), 0, true)

	h := f.vote(t, v1, 0, true)
	events, err := governance.VoteCastEventsFromApplicationLog(f.applicationLog(t, h))
	require.NoError(t, err)
	require.Equal(t, []*governance.VoteCastEvent{{
		ID:     bigInt(0),
		Voter:  v1.ScriptHash(),
		Choice: true,
	}}, events)

	g.InvokeFail(t, governanceconst.ErrAlreadyVoted, "vote", v1.ScriptHash(), 0, false)

	f.vote(t, v2, 0, false)

	g.Invoke(t, true, "hasVoted", 0, v1.ScriptHash())
	g.Invoke(t, false, "hasVoted", 0, noEggs.ScriptHash())
	g.Invoke(t, true, "getVote", 0, v1.ScriptHash())
	g.Invoke(t, false, "getVote", 0, v2.ScriptHash())
	g.InvokeFail(t, "vote not found", "getVote", 0, v3.ScriptHash())

	short, long := v1.ScriptHash().BytesBE()[:19], append(v1.ScriptHash().BytesBE(), 0)
	g.InvokeFail(t, "invalid account", "hasVoted", 0, short)
	g.InvokeFail(t, "invalid account", "hasVoted", 0, long)
	g.InvokeFail(t, "invalid account", "getVote", 0, short)
	g.InvokeFail(t, "invalid account", "getVote", 0, long)

	// The last millisecond of the window.
	setTime(t, f.Executor, createdAt+votingDuration-1)
	f.vote(t, v3, 0, true)

	f.governanceInvoker(late).InvokeFail(t, governanceconst.ErrVotingPeriodEnded, "vote", late.ScriptHash(), 0, true)
	g.Invoke(t, governanceconst.StatusClosed, "proposalStatus", 0)

	p := f.proposal(t, 0)
	require.EqualValues(t, 3, p.VoterCount.Int64())
	require.EqualValues(t, 2, p.Favor.Int64())
	require.Equal(t, []util.Uint160{v1.ScriptHash(), v2.ScriptHash(), v3.ScriptHash()}, f.voters(t, 0))
}

func TestGovernanceProposalSize(t *testing.T) {
	const votes = 6

	f := newFarm(t, farmConfig{price: eggPrice})
	voters := make([]neotest.Signer, votes)
	for i := range voters {
		voters[i] = f.newVoter(t)
	}

	f.createProposal(t, 2*eggPrice, 0)
	f.createProposal(t, 3*eggPrice, 1)

	f.vote(t, voters[0], 0, true)
	size := len(f.storedProposal(t, 0))

	expected := []util.Uint160{voters[0].ScriptHash()}
	for _, v := range voters[1:] {
		f.vote(t, v, 0, true)
		f.vote(t, v, 1, false)
		expected = append(expected, v.ScriptHash())
		require.Len(t, f.storedProposal(t, 0), size)
	}

	p := f.proposal(t, 0)
	require.EqualValues(t, votes, p.VoterCount.Int64())
	require.EqualValues(t, votes, p.Favor.Int64())
	require.Equal(t, expected, f.voters(t, 0))
	require.Equal(t, expected[1:], f.voters(t, 1))
}

func TestGovernanceExecuteProposal(t *testing.T) {
	const newPrice = 2 * eggPrice

	f := newFarm(t, farmConfig{price: eggPrice})
	v1, v2, v3, late := f.newVoter(t), f.newVoter(t), f.newVoter(t), f.newVoter(t)

	createdAt := f.createProposal(t, newPrice, 0)
	f.vote(t, v1, 0, true)
	f.vote(t, v2, 0, true)
	f.vote(t, v3, 0, false)

	g := f.governanceInvoker(f.governor)
	g.InvokeFail(t, governanceconst.ErrVotingPeriodNotEnded, "executeProposal", 0)
	g.InvokeFail(t, governanceconst.ErrInvalidProposalID, "executeProposal", 1)

	setTime(t, f.Executor, createdAt+votingDuration)

	f.governanceInvoker(v1).InvokeFail(t, common.ErrNotAuthorized, "executeProposal", 0)

	h := g.Invoke(t, true, "executeProposal", 0)
	require.EqualValues(t, newPrice, f.eggPrice(t))

	log := f.applicationLog(t, h)
	executed, err := governance.ProposalExecutedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*governance.ProposalExecutedEvent{{ID: bigInt(0), Price: bigInt(newPrice)}}, executed)

	updated, err := market.PriceUpdatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*market.PriceUpdatedEvent{{Price: bigInt(newPrice)}}, updated)

	require.True(t, f.proposal(t, 0).Executed)
	g.Invoke(t, governanceconst.StatusExecuted, "proposalStatus", 0)

	g.InvokeFail(t, governanceconst.ErrProposalAlreadyExecuted, "executeProposal", 0)
	f.governanceInvoker(late).InvokeFail(t, governanceconst.ErrProposalAlreadyExecuted, "vote", late.ScriptHash(), 0, true)
}

func TestGovernanceNoMajority(t *testing.T) {
	f := newFarm(t, farmConfig{price: eggPrice})
	v1, v2 := f.newVoter(t), f.newVoter(t)

	f.createProposal(t, 2*eggPrice, 0)
	createdAt := f.createProposal(t, 3*eggPrice, 1)

	f.vote(t, v1, 0, true)
	f.vote(t, v2, 0, false)

	setTime(t, f.Executor, createdAt+votingDuration)

	g := f.governanceInvoker(f.governor)
	for _, id := range []int64{0, 1} {
		g.Invoke(t, false, "executeProposal", id)
		require.EqualValues(t, eggPrice, f.eggPrice(t))

		// Failed execution is not final.
		g.Invoke(t, governanceconst.StatusClosed, "proposalStatus", id)
		g.Invoke(t, false, "executeProposal", id)
		require.False(t, f.proposal(t, id).Executed)
	}
}

func TestGovernanceTie(t *testing.T) {
	f := newFarm(t, farmConfig{price: eggPrice})
	v1, v2, v3, v4 := f.newVoter(t), f.newVoter(t), f.newVoter(t), f.newVoter(t)

	createdAt := f.createProposal(t, 2*eggPrice, 0)
	f.vote(t, v1, 0, true)
	f.vote(t, v2, 0, true)
	f.vote(t, v3, 0, false)
	f.vote(t, v4, 0, false)

	setTime(t, f.Executor, createdAt+votingDuration)

	g := f.governanceInvoker(f.governor)
	g.Invoke(t, false, "executeProposal", 0)
	require.EqualValues(t, eggPrice, f.eggPrice(t))

	p := f.proposal(t, 0)
	require.False(t, p.Executed)
	require.EqualValues(t, 4, p.VoterCount.Int64())
	require.EqualValues(t, 2, p.Favor.Int64())
	g.Invoke(t, governanceconst.StatusClosed, "proposalStatus", 0)
}

func TestGovernanceRequiresAuthority(t *testing.T) {
	f := newFarm(t, farmConfig{price: eggPrice})
	v := f.newVoter(t)

	createdAt := f.createProposal(t, 2*eggPrice, 0)
	f.vote(t, v, 0, true)

	acc := f.NewAccount(t)
	f.CommitteeInvoker(f.market).Invoke(t, stackitem.Null{}, "setAuthority", acc.ScriptHash())

	setTime(t, f.Executor, createdAt+votingDuration)

	g := f.governanceInvoker(f.governor)
	g.InvokeFail(t, common.ErrNotAuthorized, "executeProposal", 0)
	require.False(t, f.proposal(t, 0).Executed)
	require.EqualValues(t, eggPrice, f.eggPrice(t))

	f.CommitteeInvoker(f.market).Invoke(t, stackitem.Null{}, "setAuthority", f.governance)
	g.Invoke(t, true, "executeProposal", 0)
	require.EqualValues(t, 2*eggPrice, f.eggPrice(t))
}

func TestGovernanceSetGovernor(t *testing.T) {
	f := newFarm(t, farmConfig{price: eggPrice})
	newGovernor := f.NewAccount(t)

	f.governanceInvoker(f.governor).InvokeFail(t, common.ErrNotAuthorized, "setGovernor", newGovernor.ScriptHash())
	f.CommitteeInvoker(f.governance).Invoke(t, stackitem.Null{}, "setGovernor", newGovernor.ScriptHash())

	f.governanceInvoker(f.governor).InvokeFail(t, common.ErrNotAuthorized, "createProposal", eggPrice)
	f.governanceInvoker(newGovernor).Invoke(t, 0, "createProposal", eggPrice)
	f.governanceInvoker(newGovernor).Invoke(t, newGovernor.ScriptHash(), "governor")
}
