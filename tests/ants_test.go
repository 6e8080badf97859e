package tests

import (
	"testing"

	"github.com/nspcc-dev/antfarm-contract/common"
	"github.com/nspcc-dev/antfarm-contract/contracts/ants"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestAntsGeneric(t *testing.T) {
	f := newFarm(t, farmConfig{price: eggPrice})
	c := f.antsInvoker(f.Committee)

	c.Invoke(t, "ANT", "symbol")
	c.Invoke(t, 0, "decimals")
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, f.market, "controller")
	c.Invoke(t, common.Version, "version")
	c.Invoke(t, stackitem.Null{}, "ownerOf", []byte("42"))
	c.InvokeFail(t, ants.ErrTokenNotFound, "properties", []byte("42"))
}

func TestAntsMintBurnRestricted(t *testing.T) {
	f := newFarm(t, farmConfig{price: eggPrice})
	acc := f.NewAccount(t)
	f.buyEggs(t, acc, 1, eggPrice)
	f.createAnt(t, acc, 1)

	f.antsInvoker(acc).InvokeFail(t, common.ErrNotAuthorized, "mint", acc.ScriptHash(), []byte("2"))
	f.antsInvoker(f.Committee).InvokeFail(t, common.ErrNotAuthorized, "mint", acc.ScriptHash(), []byte("2"))
	f.antsInvoker(acc).InvokeFail(t, common.ErrNotAuthorized, "burn", []byte("1"))

	f.checkOwner(t, "1", acc.ScriptHash())
	f.checkOwner(t, "2", nil)
}

func TestAntsTransfer(t *testing.T) {
	f := newFarm(t, farmConfig{price: eggPrice})
	owner, receiver := f.NewAccount(t), f.NewAccount(t)
	f.buyEggs(t, owner, 2, 2*eggPrice)
	f.createAnt(t, owner, 1)
	f.createAnt(t, owner, 2)

	c := f.antsInvoker(owner)

	expected := stackitem.NewMapWithValue([]stackitem.MapElement{
		{Key: stackitem.Make("name"), Value: stackitem.Make("Ant #1")},
	})
	s, err := c.TestInvoke(t, "properties", []byte("1"))
	require.NoError(t, err)
	require.Equal(t, expected.Value(), s.Top().Item().Value())

	f.antsInvoker(receiver).Invoke(t, false, "transfer", receiver.ScriptHash(), []byte("1"), nil)

	h := c.Invoke(t, true, "transfer", receiver.ScriptHash(), []byte("1"), nil)
	checkTransferEvent(t, f, h, f.ants, owner.ScriptHash(), receiver.ScriptHash(), 1)

	f.checkOwner(t, "1", receiver.ScriptHash())
	c.Invoke(t, 1, "balanceOf", owner.ScriptHash())
	c.Invoke(t, 1, "balanceOf", receiver.ScriptHash())
	c.Invoke(t, 2, "totalSupply")

	s, err = c.TestInvoke(t, "tokensOf", receiver.ScriptHash())
	require.NoError(t, err)
	iter := s.Pop().Value().(*storage.Iterator)
	require.Equal(t, []stackitem.Item{stackitem.NewByteArray([]byte("1"))}, iteratorToArray(iter))

	s, err = c.TestInvoke(t, "tokens")
	require.NoError(t, err)
	iter = s.Pop().Value().(*storage.Iterator)
	require.Len(t, iteratorToArray(iter), 2)

	// The new owner sells the ant.
	f.marketInvoker(owner).InvokeFail(t, common.ErrNotAuthorized, "sellAnt", 1)
	f.marketInvoker(receiver).Invoke(t, true, "sellAnt", 1)
}
