package ants

import (
	"github.com/nspcc-dev/antfarm-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// Prefixes used for contract data storage.
const (
	// prefixController contains market (controller) contract address.
	prefixController byte = 0x00
	// prefixTotalSupply contains the number of live tokens.
	prefixTotalSupply byte = 0x01
	// prefixBalance contains map from the owner to their balance.
	prefixBalance byte = 0x02
	// prefixAccountToken contains map from (owner + token ID) to token ID.
	prefixAccountToken byte = 0x03
	// prefixOwner contains map from token ID to its owner.
	prefixOwner byte = 0x04
	// prefixBurned contains set of burned token IDs.
	prefixBurned byte = 0x05
)

const (
	symbol   = "ANT"
	decimals = 0

	// ErrTokenExists is thrown on an attempt to mint a live token.
	ErrTokenExists = "token already exists"
	// ErrTokenBurned is thrown on an attempt to mint a token that was burned.
	ErrTokenBurned = "token was burned"
	// ErrTokenNotFound is thrown when the token is not live.
	ErrTokenNotFound = "token not found"
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
	storage.Put(ctx, []byte{prefixController}, controller)
	storage.Put(ctx, []byte{prefixTotalSupply}, 0)

	runtime.Log("ants contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("ants contract updated")
}

// Symbol returns ANT token symbol.
func Symbol() string {
	return symbol
}

// Decimals returns ANT token decimals. Ants are non-divisible.
func Decimals() int {
	return decimals
}

// TotalSupply returns the number of live ants.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return storage.Get(ctx, []byte{prefixTotalSupply}).(int)
}

// OwnerOf returns the owner of the specified ant or null if the ant was never
// minted or has been burned.
func OwnerOf(tokenID []byte) interop.Hash160 {
	ctx := storage.GetReadOnlyContext()
	owner := storage.Get(ctx, append([]byte{prefixOwner}, tokenID...))
	if owner == nil {
		return nil
	}
	return owner.(interop.Hash160)
}

// Properties returns properties of the specified ant.
func Properties(tokenID []byte) map[string]any {
	if OwnerOf(tokenID) == nil {
		panic(ErrTokenNotFound)
	}
	return map[string]any{
		"name": "Ant #" + string(tokenID),
	}
}

// BalanceOf returns the number of ants owned by the specified owner.
func BalanceOf(owner interop.Hash160) int {
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}
	ctx := storage.GetReadOnlyContext()
	balance := storage.Get(ctx, append([]byte{prefixBalance}, owner...))
	if balance == nil {
		return 0
	}
	return balance.(int)
}

// Tokens returns iterator over IDs of all live ants.
func Tokens() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{prefixOwner}, storage.KeysOnly|storage.RemovePrefix)
}

// TokensOf returns iterator over IDs of ants owned by the specified owner.
func TokensOf(owner interop.Hash160) iterator.Iterator {
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, append([]byte{prefixAccountToken}, owner...), storage.ValuesOnly)
}

// BurnedTokens returns iterator over IDs of all burned ants.
func BurnedTokens() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{prefixBurned}, storage.KeysOnly|storage.RemovePrefix)
}

// Transfer transfers the ant to a new owner. It must be witnessed by the
// current owner.
func Transfer(to interop.Hash160, tokenID []byte, data any) bool {
	if len(to) != interop.Hash160Len {
		panic("invalid receiver")
	}

	ctx := storage.GetContext()
	from := getOwner(ctx, tokenID)
	if !runtime.CheckWitness(from) {
		return false
	}

	if !from.Equals(to) {
		setOwner(ctx, tokenID, to)
		updateBalance(ctx, tokenID, from, -1)
		updateBalance(ctx, tokenID, to, +1)
	}

	postTransfer(from, to, tokenID, data)
	return true
}

// Mint creates a new ant owned by the specified account. It can be invoked
// only by the market controller contract.
func Mint(to interop.Hash160, tokenID []byte) {
	if len(to) != interop.Hash160Len {
		panic("invalid receiver")
	}
	if len(tokenID) == 0 {
		panic("empty token ID")
	}

	ctx := storage.GetContext()
	common.CheckCaller(getController(ctx))

	if storage.Get(ctx, append([]byte{prefixOwner}, tokenID...)) != nil {
		panic(ErrTokenExists)
	}
	if storage.Get(ctx, append([]byte{prefixBurned}, tokenID...)) != nil {
		panic(ErrTokenBurned)
	}

	setOwner(ctx, tokenID, to)
	updateBalance(ctx, tokenID, to, +1)
	updateTotalSupply(ctx, +1)

	var from interop.Hash160
	postTransfer(from, to, tokenID, nil)
}

// Burn destroys the ant. Burned IDs are never minted again. It can be invoked
// only by the market controller contract.
func Burn(tokenID []byte) {
	ctx := storage.GetContext()
	common.CheckCaller(getController(ctx))

	owner := getOwner(ctx, tokenID)

	storage.Delete(ctx, append([]byte{prefixOwner}, tokenID...))
	storage.Put(ctx, append([]byte{prefixBurned}, tokenID...), 1)
	updateBalance(ctx, tokenID, owner, -1)
	updateTotalSupply(ctx, -1)

	var to interop.Hash160
	runtime.Notify("Transfer", owner, to, 1, tokenID)
}

// Controller returns the address of the contract allowed to mint and burn
// ants.
func Controller() interop.Hash160 {
	return getController(storage.GetReadOnlyContext())
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func getController(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, []byte{prefixController}).(interop.Hash160)
}

// getOwner returns the owner of the live token and panics otherwise.
func getOwner(ctx storage.Context, tokenID []byte) interop.Hash160 {
	owner := storage.Get(ctx, append([]byte{prefixOwner}, tokenID...))
	if owner == nil {
		panic(ErrTokenNotFound)
	}
	return owner.(interop.Hash160)
}

func setOwner(ctx storage.Context, tokenID []byte, owner interop.Hash160) {
	storage.Put(ctx, append([]byte{prefixOwner}, tokenID...), owner)
}

// updateBalance updates account's balance and account's tokens.
func updateBalance(ctx storage.Context, tokenID []byte, acc interop.Hash160, diff int) {
	balanceKey := append([]byte{prefixBalance}, acc...)
	var balance int
	if b := storage.Get(ctx, balanceKey); b != nil {
		balance = b.(int)
	}
	balance += diff
	if balance == 0 {
		storage.Delete(ctx, balanceKey)
	} else {
		storage.Put(ctx, balanceKey, balance)
	}

	accountTokenKey := append(append([]byte{prefixAccountToken}, acc...), tokenID...)
	if diff < 0 {
		storage.Delete(ctx, accountTokenKey)
	} else {
		storage.Put(ctx, accountTokenKey, tokenID)
	}
}

// updateTotalSupply adds the specified diff to the total supply.
func updateTotalSupply(ctx storage.Context, diff int) {
	tsKey := []byte{prefixTotalSupply}
	ts := storage.Get(ctx, tsKey).(int)
	storage.Put(ctx, tsKey, ts+diff)
}

// postTransfer sends Transfer notification to the network and calls onNEP11Payment
// method.
func postTransfer(from, to interop.Hash160, tokenID []byte, data any) {
	runtime.Notify("Transfer", from, to, 1, tokenID)
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP11Payment", contract.All, from, 1, tokenID, data)
	}
}
