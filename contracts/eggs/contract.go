package eggs

import (
	"github.com/nspcc-dev/antfarm-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	symbol   = "EGG"
	decimals = 0

	controllerKey = 'c'
	supplyKey     = 's'
	balancePrefix = 'b'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	controller := args[0].(interop.Hash160)
	if len(controller) != interop.Hash160Len {
		panic("incorrect length of controller address")
	}

	ctx := storage.GetContext()
	storage.Put(ctx, []byte{controllerKey}, controller)
	storage.Put(ctx, []byte{supplyKey}, 0)

	runtime.Log("eggs contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("eggs contract updated")
}

// Symbol is a NEP-17 standard method that returns EGG token symbol.
func Symbol() string {
	return symbol
}

// Decimals is a NEP-17 standard method. Eggs are indivisible.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method that returns the number of eggs
// minted and not yet consumed.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, []byte{supplyKey}).(int)
}

// BalanceOf is a NEP-17 standard method that returns the number of eggs held
// by the account.
func BalanceOf(account interop.Hash160) int {
	if len(account) != interop.Hash160Len {
		panic("invalid account")
	}
	ctx := storage.GetReadOnlyContext()
	return getBalance(ctx, account)
}

// Transfer is a NEP-17 standard method that moves eggs between accounts. It
// must be witnessed by the sender.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount < 0 {
		panic("negative amount")
	}
	if !runtime.CheckWitness(from) {
		return false
	}

	ctx := storage.GetContext()

	fromBalance := getBalance(ctx, from)
	if fromBalance < amount {
		return false
	}

	if amount != 0 && !from.Equals(to) {
		putBalance(ctx, from, fromBalance-amount)
		putBalance(ctx, to, getBalance(ctx, to)+amount)
	}

	postTransfer(from, to, amount, data)
	return true
}

// Mint creates new eggs on the account balance. It can be invoked only by the
// market controller contract.
func Mint(to interop.Hash160, amount int) {
	if len(to) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount <= 0 {
		panic("non-positive amount")
	}

	ctx := storage.GetContext()
	common.CheckCaller(getController(ctx))

	putBalance(ctx, to, getBalance(ctx, to)+amount)
	storage.Put(ctx, []byte{supplyKey}, storage.Get(ctx, []byte{supplyKey}).(int)+amount)

	var from interop.Hash160
	postTransfer(from, to, amount, nil)
}

// Burn consumes eggs from the account balance. It can be invoked only by the
// market controller contract.
func Burn(from interop.Hash160, amount int) {
	if len(from) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount <= 0 {
		panic("non-positive amount")
	}

	ctx := storage.GetContext()
	common.CheckCaller(getController(ctx))

	balance := getBalance(ctx, from)
	if balance < amount {
		panic("insufficient balance")
	}

	putBalance(ctx, from, balance-amount)
	storage.Put(ctx, []byte{supplyKey}, storage.Get(ctx, []byte{supplyKey}).(int)-amount)

	var to interop.Hash160
	runtime.Notify("Transfer", from, to, amount)
}

// Controller returns the address of the contract allowed to mint and burn
// eggs.
func Controller() interop.Hash160 {
	return getController(storage.GetReadOnlyContext())
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getController(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, []byte{controllerKey}).(interop.Hash160)
}

func getBalance(ctx storage.Context, account interop.Hash160) int {
	val := storage.Get(ctx, append([]byte{balancePrefix}, account...))
	if val == nil {
		return 0
	}
	return val.(int)
}

func putBalance(ctx storage.Context, account interop.Hash160, balance int) {
	key := append([]byte{balancePrefix}, account...)
	if balance == 0 {
		storage.Delete(ctx, key)
		return
	}
	storage.Put(ctx, key, balance)
}

// postTransfer sends Transfer notification to the network and calls
// onNEP17Payment method of the receiving contract.
func postTransfer(from, to interop.Hash160, amount int, data any) {
	runtime.Notify("Transfer", from, to, amount)
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}
