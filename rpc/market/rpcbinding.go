// Package market contains RPC wrappers for Ant Farm Market contract.
package market

import (
	"errors"
	"fmt"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// EggsPurchasedEvent represents "EggsPurchased" event emitted by the contract.
type EggsPurchasedEvent struct {
	Buyer util.Uint160
	Amount *big.Int
	Payment *big.Int
}

// AntCreatedEvent represents "AntCreated" event emitted by the contract.
type AntCreatedEvent struct {
	Owner util.Uint160
	ID *big.Int
}

// AntSoldEvent represents "AntSold" event emitted by the contract.
type AntSoldEvent struct {
	Owner util.Uint160
	ID *big.Int
	Payout *big.Int
}

// PriceUpdatedEvent represents "PriceUpdated" event emitted by the contract.
type PriceUpdatedEvent struct {
	Price *big.Int
}

// AuthorityChangedEvent represents "AuthorityChanged" event emitted by the contract.
type AuthorityChangedEvent struct {
	Authority util.Uint160
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
}

// Actor is used by Contract to call state-changing methods.
type Actor interface {
	Invoker

	MakeCall(contract util.Uint160, method string, params ...any) (*transaction.Transaction, error)
	MakeRun(script []byte) (*transaction.Transaction, error)
	MakeUnsignedCall(contract util.Uint160, method string, attrs []transaction.Attribute, params ...any) (*transaction.Transaction, error)
	MakeUnsignedRun(script []byte, attrs []transaction.Attribute) (*transaction.Transaction, error)
	SendCall(contract util.Uint160, method string, params ...any) (util.Uint256, uint32, error)
	SendRun(script []byte) (util.Uint256, uint32, error)
}

// ContractReader implements safe contract methods.
type ContractReader struct {
	invoker Invoker
	hash util.Uint160
}

// Contract implements all contract methods.
type Contract struct {
	ContractReader
	actor Actor
	hash util.Uint160
}

// NewReader creates an instance of ContractReader using provided contract hash and the given Invoker.
func NewReader(invoker Invoker, hash util.Uint160) *ContractReader {
	return &ContractReader{invoker, hash}
}

// New creates an instance of Contract using provided contract hash and the given Actor.
func New(actor Actor, hash util.Uint160) *Contract {
	return &Contract{ContractReader{actor, hash}, actor, hash}
}

// GetAntsCreated invokes `getAntsCreated` method of contract.
func (c *ContractReader) GetAntsCreated() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getAntsCreated"))
}

// GetAuthority invokes `getAuthority` method of contract.
func (c *ContractReader) GetAuthority() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "getAuthority"))
}

// GetBuybackAmount invokes `getBuybackAmount` method of contract.
func (c *ContractReader) GetBuybackAmount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getBuybackAmount"))
}

// GetContractBalance invokes `getContractBalance` method of contract.
func (c *ContractReader) GetContractBalance() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getContractBalance"))
}

// GetEggPrice invokes `getEggPrice` method of contract.
func (c *ContractReader) GetEggPrice() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "getEggPrice"))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

func (c *Contract) scriptForBuyEggs(buyer util.Uint160, amount *big.Int, payment *big.Int) ([]byte, error) {
	return smartcontract.CreateCallWithAssertScript(c.hash, "buyEggs", buyer, amount, payment)
}

// BuyEggs creates a transaction invoking `buyEggs` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) BuyEggs(buyer util.Uint160, amount *big.Int, payment *big.Int) (util.Uint256, uint32, error) {
	script, err := c.scriptForBuyEggs(buyer, amount, payment)
	if err != nil {
		return util.Uint256{}, 0, err
	}
	return c.actor.SendRun(script)
}

// BuyEggsTransaction creates a transaction invoking `buyEggs` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) BuyEggsTransaction(buyer util.Uint160, amount *big.Int, payment *big.Int) (*transaction.Transaction, error) {
	script, err := c.scriptForBuyEggs(buyer, amount, payment)
	if err != nil {
		return nil, err
	}
	return c.actor.MakeRun(script)
}

// BuyEggsUnsigned creates a transaction invoking `buyEggs` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) BuyEggsUnsigned(buyer util.Uint160, amount *big.Int, payment *big.Int) (*transaction.Transaction, error) {
	script, err := c.scriptForBuyEggs(buyer, amount, payment)
	if err != nil {
		return nil, err
	}
	return c.actor.MakeUnsignedRun(script, nil)
}

// CreateAnt creates a transaction invoking `createAnt` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateAnt(owner util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createAnt", owner)
}

// CreateAntTransaction creates a transaction invoking `createAnt` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateAntTransaction(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createAnt", owner)
}

// CreateAntUnsigned creates a transaction invoking `createAnt` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateAntUnsigned(owner util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createAnt", nil, owner)
}

func (c *Contract) scriptForSellAnt(id *big.Int) ([]byte, error) {
	return smartcontract.CreateCallWithAssertScript(c.hash, "sellAnt", id)
}

// SellAnt creates a transaction invoking `sellAnt` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SellAnt(id *big.Int) (util.Uint256, uint32, error) {
	script, err := c.scriptForSellAnt(id)
	if err != nil {
		return util.Uint256{}, 0, err
	}
	return c.actor.SendRun(script)
}

// SellAntTransaction creates a transaction invoking `sellAnt` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SellAntTransaction(id *big.Int) (*transaction.Transaction, error) {
	script, err := c.scriptForSellAnt(id)
	if err != nil {
		return nil, err
	}
	return c.actor.MakeRun(script)
}

// SellAntUnsigned creates a transaction invoking `sellAnt` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SellAntUnsigned(id *big.Int) (*transaction.Transaction, error) {
	script, err := c.scriptForSellAnt(id)
	if err != nil {
		return nil, err
	}
	return c.actor.MakeUnsignedRun(script, nil)
}

// SetAuthority creates a transaction invoking `setAuthority` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetAuthority(authority util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setAuthority", authority)
}

// SetAuthorityTransaction creates a transaction invoking `setAuthority` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetAuthorityTransaction(authority util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setAuthority", authority)
}

// SetAuthorityUnsigned creates a transaction invoking `setAuthority` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetAuthorityUnsigned(authority util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setAuthority", nil, authority)
}

func (c *Contract) scriptForSetEggPrice(price *big.Int) ([]byte, error) {
	return smartcontract.CreateCallWithAssertScript(c.hash, "setEggPrice", price)
}

// SetEggPrice creates a transaction invoking `setEggPrice` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetEggPrice(price *big.Int) (util.Uint256, uint32, error) {
	script, err := c.scriptForSetEggPrice(price)
	if err != nil {
		return util.Uint256{}, 0, err
	}
	return c.actor.SendRun(script)
}

// SetEggPriceTransaction creates a transaction invoking `setEggPrice` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetEggPriceTransaction(price *big.Int) (*transaction.Transaction, error) {
	script, err := c.scriptForSetEggPrice(price)
	if err != nil {
		return nil, err
	}
	return c.actor.MakeRun(script)
}

// SetEggPriceUnsigned creates a transaction invoking `setEggPrice` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetEggPriceUnsigned(price *big.Int) (*transaction.Transaction, error) {
	script, err := c.scriptForSetEggPrice(price)
	if err != nil {
		return nil, err
	}
	return c.actor.MakeUnsignedRun(script, nil)
}

// Update creates a transaction invoking `update` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Update(nefFile []byte, manifest []byte, data any) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateTransaction creates a transaction invoking `update` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) UpdateTransaction(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "update", nefFile, manifest, data)
}

// UpdateUnsigned creates a transaction invoking `update` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) UpdateUnsigned(nefFile []byte, manifest []byte, data any) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "update", nil, nefFile, manifest, data)
}

// EggsPurchasedEventsFromApplicationLog retrieves a set of all emitted events
// with "EggsPurchased" name from the provided [result.ApplicationLog].
func EggsPurchasedEventsFromApplicationLog(log *result.ApplicationLog) ([]*EggsPurchasedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*EggsPurchasedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "EggsPurchased" {
				continue
			}
			event := new(EggsPurchasedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize EggsPurchasedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to EggsPurchasedEvent or
// returns an error if it's not possible to do to so.
func (e *EggsPurchasedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Buyer, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Buyer: %w", err)
	}

	index++
	e.Amount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Amount: %w", err)
	}

	index++
	e.Payment, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Payment: %w", err)
	}

	return nil
}

// AntCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "AntCreated" name from the provided [result.ApplicationLog].
func AntCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AntCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AntCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AntCreated" {
				continue
			}
			event := new(AntCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AntCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AntCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *AntCreatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 2 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	return nil
}

// AntSoldEventsFromApplicationLog retrieves a set of all emitted events
// with "AntSold" name from the provided [result.ApplicationLog].
func AntSoldEventsFromApplicationLog(log *result.ApplicationLog) ([]*AntSoldEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AntSoldEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AntSold" {
				continue
			}
			event := new(AntSoldEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AntSoldEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AntSoldEvent or
// returns an error if it's not possible to do to so.
func (e *AntSoldEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 3 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Owner, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Owner: %w", err)
	}

	index++
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Payout, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Payout: %w", err)
	}

	return nil
}

// PriceUpdatedEventsFromApplicationLog retrieves a set of all emitted events
// with "PriceUpdated" name from the provided [result.ApplicationLog].
func PriceUpdatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*PriceUpdatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*PriceUpdatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "PriceUpdated" {
				continue
			}
			event := new(PriceUpdatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize PriceUpdatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to PriceUpdatedEvent or
// returns an error if it's not possible to do to so.
func (e *PriceUpdatedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	return nil
}

// AuthorityChangedEventsFromApplicationLog retrieves a set of all emitted events
// with "AuthorityChanged" name from the provided [result.ApplicationLog].
func AuthorityChangedEventsFromApplicationLog(log *result.ApplicationLog) ([]*AuthorityChangedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*AuthorityChangedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "AuthorityChanged" {
				continue
			}
			event := new(AuthorityChangedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize AuthorityChangedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to AuthorityChangedEvent or
// returns an error if it's not possible to do to so.
func (e *AuthorityChangedEvent) FromStackItem(item *stackitem.Array) error {
	if item == nil {
		return errors.New("nil item")
	}
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 1 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	e.Authority, err = func (item stackitem.Item) (util.Uint160, error) {
		b, err := item.TryBytes()
		if err != nil {
			return util.Uint160{}, err
		}
		u, err := util.Uint160DecodeBytesBE(b)
		if err != nil {
			return util.Uint160{}, err
		}
		return u, nil
	} (arr[index])
	if err != nil {
		return fmt.Errorf("field Authority: %w", err)
	}

	return nil
}
