package ants

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
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

func TestReader(t *testing.T) {
	ti := new(testInv)
	r := NewReader(ti, util.Uint160{1, 2, 3})

	ti.err = errors.New("bad")
	_, err := r.Controller()
	require.Error(t, err)
	_, err = r.BurnedTokensExpanded(10)
	require.Error(t, err)

	ti.err = nil
	market := util.Uint160{4, 5, 6}
	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{stackitem.Make(market)},
	}
	controller, err := r.Controller()
	require.NoError(t, err)
	require.Equal(t, market, controller)

	ti.res = &result.Invoke{
		State: "HALT",
		Stack: []stackitem.Item{
			stackitem.Make([]stackitem.Item{
				stackitem.Make("1"),
				stackitem.Make("3"),
			}),
		},
	}
	burned, err := r.BurnedTokensExpanded(10)
	require.NoError(t, err)
	require.Len(t, burned, 2)

	id, err := burned[1].TryBytes()
	require.NoError(t, err)
	require.Equal(t, []byte("3"), id)
}
