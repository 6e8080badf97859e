package governance

import (
	"errors"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/stretchr/testify/require"
)

type testInv struct {
	err error
	res *result.Invoke
}

func (t *testInv) Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}

func (t *testInv) CallAndExpandIterator(contract util.Uint160, operation string, i int, params ...any) (*result.Invoke, error) {
	return t.res, t.err
}
func (t *testInv) TraverseIterator(uuid.UUID, *result.Iterator, int) ([]stackitem.Item, error) {
	return nil, nil
}
func (t *testInv) TerminateSession(uuid.UUID) error {
	return nil
}

func proposalItem(voters, favor int) stackitem.Item {
	return stackitem.NewStruct([]stackitem.Item{
		stackitem.Make(0),
		stackitem.Make(20_0000),
		stackitem.Make(1700000000000),
		stackitem.Make(false),
		stackitem.Make(voters),
		stackitem.Make(favor),
	})
}

func TestGetProposal(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.GetProposal(big.NewInt(0))
	require.Error(t, err)

	ti.err = nil
	ti.res = &result.Invoke{
		State:          "FAULT",
		FaultException: "at instruction 74 (THROW): invalid proposal id",
	}
	_, err = r.GetProposal(big.NewInt(5))
	require.ErrorIs(t, ParseError(err), ErrInvalidProposalID)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{proposalItem(3, 2)},
	}
	p, err := r.GetProposal(big.NewInt(0))
	require.NoError(t, err)
	require.Equal(t, &GovernanceProposal{
		ID:        big.NewInt(0),
		Price:     big.NewInt(20_0000),
		CreatedAt: big.NewInt(1700000000000),
		Executed:   false,
		VoterCount: big.NewInt(3),
		Favor:      big.NewInt(2),
	}, p)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.NewStruct([]stackitem.Item{stackitem.Make(0)})},
	}
	_, err = r.GetProposal(big.NewInt(0))
	require.Error(t, err)
}

func TestProposalFromStackItem(t *testing.T) {
	var p GovernanceProposal

	require.Error(t, p.FromStackItem(stackitem.Make(1)))

	item := proposalItem(0, 0)
	require.NoError(t, p.FromStackItem(item))
	require.EqualValues(t, 0, p.VoterCount.Int64())

	item.Value().([]stackitem.Item)[4] = stackitem.Make([]stackitem.Item{stackitem.Make([]byte{1})})
	require.Error(t, p.FromStackItem(item))
}

func TestVotersExpanded(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.VotersExpanded(big.NewInt(0), 10)
	require.Error(t, err)

	a, b := util.Uint160{0xaa}, util.Uint160{0xbb}
	ti.err = nil
	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.Make([]stackitem.Item{stackitem.Make(a), stackitem.Make(b)}),
		},
	}
	voters, err := r.VotersExpanded(big.NewInt(0), 10)
	require.NoError(t, err)
	require.Len(t, voters, 2)

	raw, err := voters[1].TryBytes()
	require.NoError(t, err)
	require.Equal(t, b.BytesBE(), raw)
}

func TestEventsFromApplicationLog(t *testing.T) {
	voter := util.Uint160{0xcc}
	log := &result.ApplicationLog{
		Container: util.Uint256{1},
		Executions: []state.Execution{{
			Trigger: trigger.Application,
			VMState: vmstate.Halt,
			Events: []state.NotificationEvent{
				{
					Name: "ProposalCreated",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(1), stackitem.Make(15_0000), stackitem.Make(42),
					}),
				},
				{
					Name: "VoteCast",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(1), stackitem.Make(voter), stackitem.Make(true),
					}),
				},
				{
					Name: "ProposalExecuted",
					Item: stackitem.NewArray([]stackitem.Item{
						stackitem.Make(1), stackitem.Make(15_0000),
					}),
				},
			},
		}},
	}

	created, err := ProposalCreatedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*ProposalCreatedEvent{{
		ID:        big.NewInt(1),
		Price:     big.NewInt(15_0000),
		CreatedAt: big.NewInt(42),
	}}, created)

	votes, err := VoteCastEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Equal(t, []*VoteCastEvent{{
		ID:     big.NewInt(1),
		Voter:  voter,
		Choice: true,
	}}, votes)

	executed, err := ProposalExecutedEventsFromApplicationLog(log)
	require.NoError(t, err)
	require.Len(t, executed, 1)
	require.Equal(t, big.NewInt(15_0000), executed[0].Price)

	_, err = VoteCastEventsFromApplicationLog(nil)
	require.Error(t, err)
}
