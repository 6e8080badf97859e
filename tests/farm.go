package tests

import (
	"math/big"
	"path"
	"testing"

	"github.com/nspcc-dev/antfarm-contract/rpc/governance"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/trigger"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	eggsPath       = "../contracts/eggs"
	antsPath       = "../contracts/ants"
	marketPath     = "../contracts/market"
	governancePath = "../contracts/governance"
	reentrantPath  = "../internal/testcontracts/reentrant"
)

const (
	// eggPrice is 0.001 GAS.
	eggPrice = 10_0000
	// votingDuration is 10 seconds.
	votingDuration = 10_000
)

// farm is a chain with all ant farm contracts deployed. Market is owned by
// the committee.
type farm struct {
	*neotest.Executor

	eggs, ants, market, governance util.Uint160
	governor                       neotest.Signer
}

type farmConfig struct {
	price   int64
	buyback int64
	// authority is allowed to set egg price, governance contract if empty.
	authority util.Uint160
}

func newFarm(t *testing.T, cfg farmConfig) *farm {
	e := newExecutor(t)
	f := &farm{
		Executor: e,
		governor: e.NewAccount(t),
	}

	eggsCtr := neotest.CompileFile(t, e.CommitteeHash, eggsPath, path.Join(eggsPath, "config.yml"))
	antsCtr := neotest.CompileFile(t, e.CommitteeHash, antsPath, path.Join(antsPath, "config.yml"))
	marketCtr := neotest.CompileFile(t, e.CommitteeHash, marketPath, path.Join(marketPath, "config.yml"))
	govCtr := neotest.CompileFile(t, e.CommitteeHash, governancePath, path.Join(governancePath, "config.yml"))

	f.eggs, f.ants, f.market, f.governance = eggsCtr.Hash, antsCtr.Hash, marketCtr.Hash, govCtr.Hash

	authority := cfg.authority
	if authority.Equals(util.Uint160{}) {
		authority = f.governance
	}

	e.DeployContract(t, eggsCtr, []any{f.market})
	e.DeployContract(t, antsCtr, []any{f.market})
	e.DeployContract(t, marketCtr, []any{e.CommitteeHash, f.eggs, f.ants, authority, cfg.price, cfg.buyback})
	e.DeployContract(t, govCtr, []any{f.market, f.eggs, f.governor.ScriptHash(), int64(votingDuration)})

	return f
}

func (f *farm) marketInvoker(signers ...neotest.Signer) *neotest.ContractInvoker {
	return f.NewInvoker(f.market, signers...)
}

func (f *farm) governanceInvoker(signers ...neotest.Signer) *neotest.ContractInvoker {
	return f.NewInvoker(f.governance, signers...)
}

func (f *farm) eggsInvoker(signers ...neotest.Signer) *neotest.ContractInvoker {
	return f.NewInvoker(f.eggs, signers...)
}

func (f *farm) antsInvoker(signers ...neotest.Signer) *neotest.ContractInvoker {
	return f.NewInvoker(f.ants, signers...)
}

func (f *farm) gasInvoker(t *testing.T, signers ...neotest.Signer) *neotest.ContractInvoker {
	return f.NewInvoker(f.NativeHash(t, nativenames.Gas), signers...)
}

// buyEggs pays for eggs with a GAS transfer to the market.
func (f *farm) buyEggs(t *testing.T, buyer neotest.Signer, amount, payment int64) util.Uint256 {
	return f.gasInvoker(t, buyer).Invoke(t, true, "transfer", buyer.ScriptHash(), f.market, payment, amount)
}

// createAnt spends an egg of the owner and checks the number of the new ant.
func (f *farm) createAnt(t *testing.T, owner neotest.Signer, expectedID int64) util.Uint256 {
	return f.marketInvoker(owner).Invoke(t, expectedID, "createAnt", owner.ScriptHash())
}

func (f *farm) eggsBalance(t *testing.T, acc util.Uint160) int64 {
	s, err := f.eggsInvoker(f.Committee).TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)
	return s.Top().BigInt().Int64()
}

func (f *farm) eggsSupply(t *testing.T) int64 {
	s, err := f.eggsInvoker(f.Committee).TestInvoke(t, "totalSupply")
	require.NoError(t, err)
	return s.Top().BigInt().Int64()
}

func (f *farm) marketBalance(t *testing.T) int64 {
	s, err := f.marketInvoker(f.Committee).TestInvoke(t, "getContractBalance")
	require.NoError(t, err)

	actual := s.Top().BigInt().Int64()
	require.Equal(t, f.Chain.GetUtilityTokenBalance(f.market).Int64(), actual)
	return actual
}

func (f *farm) eggPrice(t *testing.T) int64 {
	s, err := f.marketInvoker(f.Committee).TestInvoke(t, "getEggPrice")
	require.NoError(t, err)
	return s.Top().BigInt().Int64()
}

func (f *farm) checkOwner(t *testing.T, id string, expected any) {
	s, err := f.antsInvoker(f.Committee).TestInvoke(t, "ownerOf", []byte(id))
	require.NoError(t, err)
	if expected == nil {
		require.Equal(t, stackitem.Null{}, s.Top().Item())
		return
	}
	b, err := s.Top().Item().TryBytes()
	require.NoError(t, err)
	require.Equal(t, expected.(util.Uint160).BytesBE(), b)
}

func (f *farm) proposal(t *testing.T, id int64) *governance.GovernanceProposal {
	s, err := f.governanceInvoker(f.Committee).TestInvoke(t, "getProposal", id)
	require.NoError(t, err)

	var p governance.GovernanceProposal
	require.NoError(t, p.FromStackItem(s.Top().Item()))
	return &p
}

func (f *farm) applicationLog(t *testing.T, h util.Uint256) *result.ApplicationLog {
	aer := f.GetTxExecResult(t, h)
	log := result.NewApplicationLog(h, []state.AppExecResult{*aer}, trigger.All)
	return &log
}

func bigInt(v int64) *big.Int {
	return big.NewInt(v)
}
