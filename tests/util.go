package tests

import (
	"testing"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

func newExecutor(t *testing.T) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// setTime adds a block so that the next transaction is executed at the given
// time (ms).
func setTime(t *testing.T, e *neotest.Executor, ms uint64) {
	b := e.NewUnsignedBlock(t)
	b.Timestamp = ms - 1 // next block is made with +1 timestamp
	require.NoError(t, e.Chain.AddBlock(e.SignBlock(b)))
}

// invokeWithScope sends a transaction with a single signer having the
// specified scope. Executor signs with Global scope only.
func invokeWithScope(t *testing.T, e *neotest.Executor, acc neotest.Signer, scope transaction.Signer,
	hash util.Uint160, method string, args ...any) util.Uint256 {
	tx := e.NewUnsignedTx(t, hash, method, args...)
	scope.Account = acc.ScriptHash()
	tx.Signers = []transaction.Signer{scope}
	tx.NetworkFee = 1_0000_0000
	tx.SystemFee = 10_0000_0000
	require.NoError(t, acc.SignTx(e.Chain.GetConfig().Magic, tx))

	e.AddNewBlock(t, tx)
	return tx.Hash()
}
