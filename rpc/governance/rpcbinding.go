// Package governance contains RPC wrappers for Ant Farm Governance contract.
package governance

import (
	"errors"
	"fmt"
	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/unwrap"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"math/big"
)

// GovernanceProposal is a contract-specific governance.Proposal type used by its methods.
type GovernanceProposal struct {
	ID *big.Int
	Price *big.Int
	CreatedAt *big.Int
	Executed bool
	VoterCount *big.Int
	Favor *big.Int
}

// ProposalCreatedEvent represents "ProposalCreated" event emitted by the contract.
type ProposalCreatedEvent struct {
	ID *big.Int
	Price *big.Int
	CreatedAt *big.Int
}

// VoteCastEvent represents "VoteCast" event emitted by the contract.
type VoteCastEvent struct {
	ID *big.Int
	Voter util.Uint160
	Choice bool
}

// ProposalExecutedEvent represents "ProposalExecuted" event emitted by the contract.
type ProposalExecutedEvent struct {
	ID *big.Int
	Price *big.Int
}

// Invoker is used by ContractReader to call various safe methods.
type Invoker interface {
	Call(contract util.Uint160, operation string, params ...any) (*result.Invoke, error)
	CallAndExpandIterator(contract util.Uint160, method string, maxItems int, params ...any) (*result.Invoke, error)
	TerminateSession(sessionID uuid.UUID) error
	TraverseIterator(sessionID uuid.UUID, iterator *result.Iterator, num int) ([]stackitem.Item, error)
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

// GetProposal invokes `getProposal` method of contract.
func (c *ContractReader) GetProposal(id *big.Int) (*GovernanceProposal, error) {
	return itemToGovernanceProposal(unwrap.Item(c.invoker.Call(c.hash, "getProposal", id)))
}

// GetVote invokes `getVote` method of contract.
func (c *ContractReader) GetVote(id *big.Int, voter util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "getVote", id, voter))
}

// Governor invokes `governor` method of contract.
func (c *ContractReader) Governor() (util.Uint160, error) {
	return unwrap.Uint160(c.invoker.Call(c.hash, "governor"))
}

// HasVoted invokes `hasVoted` method of contract.
func (c *ContractReader) HasVoted(id *big.Int, voter util.Uint160) (bool, error) {
	return unwrap.Bool(c.invoker.Call(c.hash, "hasVoted", id, voter))
}

// ProposalCount invokes `proposalCount` method of contract.
func (c *ContractReader) ProposalCount() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "proposalCount"))
}

// ProposalStatus invokes `proposalStatus` method of contract.
func (c *ContractReader) ProposalStatus(id *big.Int) (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "proposalStatus", id))
}

// Version invokes `version` method of contract.
func (c *ContractReader) Version() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "version"))
}

// Voters invokes `voters` method of contract.
func (c *ContractReader) Voters(id *big.Int) (uuid.UUID, result.Iterator, error) {
	return unwrap.SessionIterator(c.invoker.Call(c.hash, "voters", id))
}

// VotersExpanded is similar to Voters (uses the same contract
// method), but can be useful if the server used doesn't support sessions and
// doesn't expand iterators. It creates a script that will get the specified
// number of result items from the iterator right in the VM and return them to
// you. It's only limited by VM stack and GAS available for RPC invocations.
func (c *ContractReader) VotersExpanded(id *big.Int, _numOfIteratorItems int) ([]stackitem.Item, error) {
	return unwrap.Array(c.invoker.CallAndExpandIterator(c.hash, "voters", _numOfIteratorItems, id))
}

// VotingDuration invokes `votingDuration` method of contract.
func (c *ContractReader) VotingDuration() (*big.Int, error) {
	return unwrap.BigInt(c.invoker.Call(c.hash, "votingDuration"))
}

// CreateProposal creates a transaction invoking `createProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) CreateProposal(price *big.Int) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "createProposal", price)
}

// CreateProposalTransaction creates a transaction invoking `createProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) CreateProposalTransaction(price *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "createProposal", price)
}

// CreateProposalUnsigned creates a transaction invoking `createProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) CreateProposalUnsigned(price *big.Int) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "createProposal", nil, price)
}

func (c *Contract) scriptForExecuteProposal(id *big.Int) ([]byte, error) {
	return smartcontract.CreateCallWithAssertScript(c.hash, "executeProposal", id)
}

// ExecuteProposal creates a transaction invoking `executeProposal` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) ExecuteProposal(id *big.Int) (util.Uint256, uint32, error) {
	script, err := c.scriptForExecuteProposal(id)
	if err != nil {
		return util.Uint256{}, 0, err
	}
	return c.actor.SendRun(script)
}

// ExecuteProposalTransaction creates a transaction invoking `executeProposal` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) ExecuteProposalTransaction(id *big.Int) (*transaction.Transaction, error) {
	script, err := c.scriptForExecuteProposal(id)
	if err != nil {
		return nil, err
	}
	return c.actor.MakeRun(script)
}

// ExecuteProposalUnsigned creates a transaction invoking `executeProposal` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) ExecuteProposalUnsigned(id *big.Int) (*transaction.Transaction, error) {
	script, err := c.scriptForExecuteProposal(id)
	if err != nil {
		return nil, err
	}
	return c.actor.MakeUnsignedRun(script, nil)
}

// SetGovernor creates a transaction invoking `setGovernor` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) SetGovernor(governor util.Uint160) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "setGovernor", governor)
}

// SetGovernorTransaction creates a transaction invoking `setGovernor` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) SetGovernorTransaction(governor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "setGovernor", governor)
}

// SetGovernorUnsigned creates a transaction invoking `setGovernor` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) SetGovernorUnsigned(governor util.Uint160) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "setGovernor", nil, governor)
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

// Vote creates a transaction invoking `vote` method of the contract.
// This transaction is signed and immediately sent to the network.
// The values returned are its hash, ValidUntilBlock value and error if any.
func (c *Contract) Vote(voter util.Uint160, id *big.Int, choice bool) (util.Uint256, uint32, error) {
	return c.actor.SendCall(c.hash, "vote", voter, id, choice)
}

// VoteTransaction creates a transaction invoking `vote` method of the contract.
// This transaction is signed, but not sent to the network, instead it's
// returned to the caller.
func (c *Contract) VoteTransaction(voter util.Uint160, id *big.Int, choice bool) (*transaction.Transaction, error) {
	return c.actor.MakeCall(c.hash, "vote", voter, id, choice)
}

// VoteUnsigned creates a transaction invoking `vote` method of the contract.
// This transaction is not signed, it's simply returned to the caller.
// Any fields of it that do not affect fees can be changed (ValidUntilBlock,
// Nonce), fee values (NetworkFee, SystemFee) can be increased as well.
func (c *Contract) VoteUnsigned(voter util.Uint160, id *big.Int, choice bool) (*transaction.Transaction, error) {
	return c.actor.MakeUnsignedCall(c.hash, "vote", nil, voter, id, choice)
}

// itemToGovernanceProposal converts stack item into *GovernanceProposal.
func itemToGovernanceProposal(item stackitem.Item, err error) (*GovernanceProposal, error) {
	if err != nil {
		return nil, err
	}
	var res = new(GovernanceProposal)
	err = res.FromStackItem(item)
	return res, err
}

// FromStackItem retrieves fields of GovernanceProposal from the given
// [stackitem.Item] or returns an error if it's not possible to do to so.
func (res *GovernanceProposal) FromStackItem(item stackitem.Item) error {
	arr, ok := item.Value().([]stackitem.Item)
	if !ok {
		return errors.New("not an array")
	}
	if len(arr) != 6 {
		return errors.New("wrong number of structure elements")
	}

	var (
		index = -1
		err error
	)
	index++
	res.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	res.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	index++
	res.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	index++
	res.Executed, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Executed: %w", err)
	}

	index++
	res.VoterCount, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field VoterCount: %w", err)
	}

	index++
	res.Favor, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Favor: %w", err)
	}

	return nil
}

// ProposalCreatedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProposalCreated" name from the provided [result.ApplicationLog].
func ProposalCreatedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProposalCreatedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProposalCreatedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProposalCreated" {
				continue
			}
			event := new(ProposalCreatedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProposalCreatedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProposalCreatedEvent or
// returns an error if it's not possible to do to so.
func (e *ProposalCreatedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	index++
	e.CreatedAt, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field CreatedAt: %w", err)
	}

	return nil
}

// VoteCastEventsFromApplicationLog retrieves a set of all emitted events
// with "VoteCast" name from the provided [result.ApplicationLog].
func VoteCastEventsFromApplicationLog(log *result.ApplicationLog) ([]*VoteCastEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*VoteCastEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "VoteCast" {
				continue
			}
			event := new(VoteCastEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize VoteCastEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to VoteCastEvent or
// returns an error if it's not possible to do to so.
func (e *VoteCastEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Voter, err = func (item stackitem.Item) (util.Uint160, error) {
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
		return fmt.Errorf("field Voter: %w", err)
	}

	index++
	e.Choice, err = arr[index].TryBool()
	if err != nil {
		return fmt.Errorf("field Choice: %w", err)
	}

	return nil
}

// ProposalExecutedEventsFromApplicationLog retrieves a set of all emitted events
// with "ProposalExecuted" name from the provided [result.ApplicationLog].
func ProposalExecutedEventsFromApplicationLog(log *result.ApplicationLog) ([]*ProposalExecutedEvent, error) {
	if log == nil {
		return nil, errors.New("nil application log")
	}

	var res []*ProposalExecutedEvent
	for i, ex := range log.Executions {
		for j, e := range ex.Events {
			if e.Name != "ProposalExecuted" {
				continue
			}
			event := new(ProposalExecutedEvent)
			err := event.FromStackItem(e.Item)
			if err != nil {
				return nil, fmt.Errorf("failed to deserialize ProposalExecutedEvent from stackitem (execution #%d, event #%d): %w", i, j, err)
			}
			res = append(res, event)
		}
	}

	return res, nil
}

// FromStackItem converts provided [stackitem.Array] to ProposalExecutedEvent or
// returns an error if it's not possible to do to so.
func (e *ProposalExecutedEvent) FromStackItem(item *stackitem.Array) error {
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
	e.ID, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field ID: %w", err)
	}

	index++
	e.Price, err = arr[index].TryInteger()
	if err != nil {
		return fmt.Errorf("field Price: %w", err)
	}

	return nil
}
