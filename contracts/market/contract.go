package market

import (
	"github.com/nspcc-dev/antfarm-contract/common"
	"github.com/nspcc-dev/antfarm-contract/contracts/market/marketconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	ownerKey     = 'o'
	eggsKey      = 'e'
	antsKey      = 'a'
	authorityKey = 'g'
	priceKey     = 'p'
	buybackKey   = 'b'
	createdKey   = 'n'
	lockKey      = 'l'

	allocatedPrefix = 'i'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.([]any)
	owner := args[0].(interop.Hash160)
	eggsAddr := args[1].(interop.Hash160)
	antsAddr := args[2].(interop.Hash160)
	authority := args[3].(interop.Hash160)
	price := args[4].(int)
	buyback := args[5].(int)

	if len(owner) != interop.Hash160Len {
		panic("incorrect length of owner address")
	}
	if len(eggsAddr) != interop.Hash160Len {
		panic("incorrect length of eggs contract address")
	}
	if len(antsAddr) != interop.Hash160Len {
		panic("incorrect length of ants contract address")
	}
	if len(authority) != interop.Hash160Len {
		panic("incorrect length of authority address")
	}
	if buyback < 0 {
		panic("negative buyback amount")
	}
	if buyback == 0 {
		buyback = marketconst.DefaultBuybackAmount
	}

	ctx := storage.GetContext()
	storage.Put(ctx, []byte{ownerKey}, owner)
	storage.Put(ctx, []byte{eggsKey}, eggsAddr)
	storage.Put(ctx, []byte{antsKey}, antsAddr)
	storage.Put(ctx, []byte{authorityKey}, authority)
	storage.Put(ctx, []byte{priceKey}, price)
	storage.Put(ctx, []byte{buybackKey}, buyback)
	storage.Put(ctx, []byte{createdKey}, 0)

	runtime.Log("market contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("market contract updated")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Payment with integer data buys eggs, data is the requested amount of eggs.
// Payment with null data replenishes the buyback reserve.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	if !runtime.GetCallingScriptHash().Equals(interop.Hash160(gas.Hash)) {
		panic(marketconst.ErrOnlyGAS)
	}

	ctx := storage.GetContext()
	checkUnlocked(ctx)

	if data == nil {
		runtime.Log("market: buyback reserve replenished")
		return
	}

	buy(ctx, from, data.(int), amount)
}

// BuyEggs transfers payment GAS from the buyer to the market and mints eggs
// to the buyer. It must be witnessed by the buyer. GAS contract checks the
// same witness, so the buyer's signer scope must allow GAS contract
// (CustomContracts or Global), CalledByEntry alone fails with
// marketconst.ErrPaymentTransferFailed. The same purchase can be made with a
// direct GAS transfer to the market having amount as data, it works with
// CalledByEntry scope.
func BuyEggs(buyer interop.Hash160, amount, payment int) bool {
	common.CheckWitness(buyer)

	ctx := storage.GetReadOnlyContext()
	checkUnlocked(ctx)
	purchasable(ctx, amount, payment)

	if !gas.Transfer(buyer, runtime.GetExecutingScriptHash(), payment, amount) {
		panic(marketconst.ErrPaymentTransferFailed)
	}

	return true
}

// CreateAnt consumes one egg of the owner and mints a new ant to them. It
// must be witnessed by the owner. Returns the number of the new ant.
func CreateAnt(owner interop.Hash160) int {
	common.CheckWitness(owner)

	ctx := storage.GetContext()
	lock(ctx)

	eggsAddr := getHash(ctx, eggsKey)
	eggs := contract.Call(eggsAddr, "balanceOf", contract.ReadOnly, owner).(int)
	if eggs < 1 {
		panic(marketconst.ErrNoResourceHeld)
	}

	id := storage.Get(ctx, []byte{createdKey}).(int) + 1
	tokenID := antTokenID(id)

	allocKey := append([]byte{allocatedPrefix}, tokenID...)
	if storage.Get(ctx, allocKey) != nil {
		panic(marketconst.ErrDuplicateAsset)
	}
	storage.Put(ctx, allocKey, owner)
	storage.Put(ctx, []byte{createdKey}, id)

	contract.Call(eggsAddr, "burn", contract.All, owner, 1)
	contract.Call(getHash(ctx, antsKey), "mint", contract.All, owner, tokenID)

	unlock(ctx)

	runtime.Notify("AntCreated", owner, id)
	return id
}

// SellAnt burns the ant and pays the buyback amount to its owner. It must be
// witnessed by the current owner of the ant.
func SellAnt(id int) bool {
	ctx := storage.GetContext()
	lock(ctx)

	antsAddr := getHash(ctx, antsKey)
	tokenID := antTokenID(id)

	owner := contract.Call(antsAddr, "ownerOf", contract.ReadOnly, tokenID).(interop.Hash160)
	if owner == nil {
		panic(common.ErrNotAuthorized)
	}
	common.CheckWitness(owner)

	// ownership is cleared before the payout leaves the contract
	contract.Call(antsAddr, "burn", contract.All, tokenID)

	payout := storage.Get(ctx, []byte{buybackKey}).(int)
	if !gas.Transfer(runtime.GetExecutingScriptHash(), owner, payout, nil) {
		panic(marketconst.ErrPaymentTransferFailed)
	}

	unlock(ctx)

	runtime.Notify("AntSold", owner, id, payout)
	return true
}

// SetEggPrice sets the price of a single egg in GAS (Fixed8). It must be
// witnessed by the price authority, usually the governance contract.
func SetEggPrice(price int) bool {
	ctx := storage.GetContext()
	common.CheckWitness(getHash(ctx, authorityKey))
	checkUnlocked(ctx)

	storage.Put(ctx, []byte{priceKey}, price)

	runtime.Notify("PriceUpdated", price)
	return true
}

// SetAuthority changes the account allowed to set egg price. It must be
// witnessed by the market owner.
func SetAuthority(authority interop.Hash160) {
	if len(authority) != interop.Hash160Len {
		panic("incorrect length of authority address")
	}

	ctx := storage.GetContext()
	common.CheckWitness(getHash(ctx, ownerKey))

	storage.Put(ctx, []byte{authorityKey}, authority)

	runtime.Notify("AuthorityChanged", authority)
}

// GetEggPrice returns the price of a single egg in GAS (Fixed8).
func GetEggPrice() int {
	return storage.Get(storage.GetReadOnlyContext(), []byte{priceKey}).(int)
}

// GetBuybackAmount returns GAS amount (Fixed8) paid for a sold ant.
func GetBuybackAmount() int {
	return storage.Get(storage.GetReadOnlyContext(), []byte{buybackKey}).(int)
}

// GetContractBalance returns GAS balance held by the market.
func GetContractBalance() int {
	return gas.BalanceOf(runtime.GetExecutingScriptHash())
}

// GetAntsCreated returns the number of ants ever created.
func GetAntsCreated() int {
	return storage.Get(storage.GetReadOnlyContext(), []byte{createdKey}).(int)
}

// GetAuthority returns the account allowed to set egg price.
func GetAuthority() interop.Hash160 {
	return getHash(storage.GetReadOnlyContext(), authorityKey)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func buy(ctx storage.Context, buyer interop.Hash160, amount, payment int) {
	eggs := purchasable(ctx, amount, payment)

	contract.Call(getHash(ctx, eggsKey), "mint", contract.All, buyer, eggs)

	runtime.Notify("EggsPurchased", buyer, eggs, payment)
}

// purchasable returns the number of eggs the payment covers and panics if the
// purchase can't be made.
func purchasable(ctx storage.Context, amount, payment int) int {
	price := storage.Get(ctx, []byte{priceKey}).(int)
	if price <= 0 {
		panic(marketconst.ErrPriceNotSet)
	}

	eggs := payment / price
	if eggs <= 0 {
		panic(marketconst.ErrInsufficientPayment)
	}
	if amount > eggs {
		panic(marketconst.ErrQuantityMismatch)
	}

	return eggs
}

func antTokenID(id int) []byte {
	return []byte(std.Itoa(id, 10))
}

func getHash(ctx storage.Context, key byte) interop.Hash160 {
	return storage.Get(ctx, []byte{key}).(interop.Hash160)
}

func checkUnlocked(ctx storage.Context) {
	if storage.Get(ctx, []byte{lockKey}) != nil {
		panic(marketconst.ErrReentrantCall)
	}
}

func lock(ctx storage.Context) {
	checkUnlocked(ctx)
	storage.Put(ctx, []byte{lockKey}, 1)
}

func unlock(ctx storage.Context) {
	storage.Delete(ctx, []byte{lockKey})
}
