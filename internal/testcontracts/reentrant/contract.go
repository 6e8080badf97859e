package reentrant

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	marketKey = "market"
	targetKey = "target"
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		return
	}
	storage.Put(storage.GetContext(), marketKey, data.(interop.Hash160))
}

// Buy pays for eggs with GAS held by the contract.
func Buy(amount, payment int) bool {
	return gas.Transfer(runtime.GetExecutingScriptHash(), getMarket(), payment, amount)
}

// Create hatches an ant owned by the contract.
func Create() int {
	return contract.Call(getMarket(), "createAnt", contract.All, runtime.GetExecutingScriptHash()).(int)
}

// Sell sells the ant and tries to sell the target ant from the payout
// callback. Zero target disables the nested call.
func Sell(id, target int) bool {
	storage.Put(storage.GetContext(), targetKey, target)
	return contract.Call(getMarket(), "sellAnt", contract.All, id).(bool)
}

func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if !runtime.GetCallingScriptHash().Equals(interop.Hash160(gas.Hash)) {
		return
	}

	market := getMarket()
	if !from.Equals(market) {
		return
	}

	target := storage.Get(storage.GetReadOnlyContext(), targetKey)
	if target == nil || target.(int) == 0 {
		return
	}
	contract.Call(market, "sellAnt", contract.All, target.(int))
}

func OnNEP11Payment(from interop.Hash160, amount int, tokenID []byte, data any) {
}

func getMarket() interop.Hash160 {
	return storage.Get(storage.GetReadOnlyContext(), marketKey).(interop.Hash160)
}
