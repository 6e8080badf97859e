/*
Package governance implements the Governance contract of the ant farm.

Governance contract changes egg price of the Market contract by a timed vote.
The governor creates a proposal with a new price. During the voting window
every account holding at least one egg may cast a single vote, egg balance
does not add weight. After the window the governor executes the proposal: if
more than half of the cast votes are positive, the contract sets the new
price in the Market contract (it must be the market price authority) and the
proposal becomes executed. Otherwise nothing changes and the proposal stays
closed but not executed, so execution can be retried.

# Contract notifications

ProposalCreated notification. This notification is produced when the
governor creates a new proposal.

	ProposalCreated:
	  - name: id
	    type: Integer
	  - name: price
	    type: Integer
	  - name: createdAt
	    type: Integer

VoteCast notification. This notification is produced on every accepted vote.

	VoteCast:
	  - name: id
	    type: Integer
	  - name: voter
	    type: Hash160
	  - name: choice
	    type: Boolean

ProposalExecuted notification. This notification is produced when the
proposed price is applied.

	ProposalExecuted:
	  - name: id
	    type: Integer
	  - name: price
	    type: Integer
*/
package governance

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'm' -> interop.Hash160
   Market contract address
 - 'e' -> interop.Hash160
   Eggs contract address, egg balances define eligible voters
 - 'g' -> interop.Hash160
   governor account
 - 'd' -> int
   voting window in milliseconds
 - 'c' -> int
   number of created proposals, ID of the next one
 - 'p'<ID> -> std.Serialize(Proposal)
   proposals (here Proposal is a structure defined in current package)
 - 'v'<interop.Hash160><ID> -> std.Serialize(bool)
   votes of the accounts
 - 'V'<ID><seq> -> interop.Hash160
   voters in the order of votes, ID and seq are 4-byte big-endian
*/
