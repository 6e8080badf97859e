/*
Package market implements the Market contract of the ant farm.

Market contract sells eggs for GAS, hatches ants from eggs and buys ants back
for a fixed GAS amount. It is the only contract allowed to mint and burn eggs
(see eggs package) and ants (see ants package). Egg price is set by the price
authority, which is normally the Governance contract executing a passed
proposal.

Eggs are bought with a GAS transfer to the market having the requested
amount of eggs as transfer data, or with BuyEggs method that makes such
transfer on behalf of the witnessed buyer. BuyEggs needs a buyer signer scope
that covers GAS contract, e.g. CalledByEntry with GAS in CustomContracts,
since GAS is not called by the entry script. The number of eggs minted is the
payment divided by the egg price. GAS transfers with null data replenish the
reserve that is used to pay for sold ants.

While an ant is created or sold, the market is locked and any call into it
fails. A sold ant is burned before the payout is sent.

# Contract notifications

EggsPurchased notification. This notification is produced when eggs are minted
for a payment.

	EggsPurchased:
	  - name: buyer
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: payment
	    type: Integer

AntCreated notification. This notification is produced when an egg is
consumed to create a new ant.

	AntCreated:
	  - name: owner
	    type: Hash160
	  - name: id
	    type: Integer

AntSold notification. This notification is produced when an ant is burned and
its former owner is paid.

	AntSold:
	  - name: owner
	    type: Hash160
	  - name: id
	    type: Integer
	  - name: payout
	    type: Integer

PriceUpdated notification. This notification is produced when the price
authority sets a new egg price.

	PriceUpdated:
	  - name: price
	    type: Integer

AuthorityChanged notification. This notification is produced when the market
owner assigns a new price authority.

	AuthorityChanged:
	  - name: authority
	    type: Hash160
*/
package market

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'o' -> interop.Hash160
   market owner, assigns the price authority
 - 'e' -> interop.Hash160
   Eggs contract address
 - 'a' -> interop.Hash160
   Ants contract address
 - 'g' -> interop.Hash160
   price authority
 - 'p' -> int
   egg price in GAS (Fixed8)
 - 'b' -> int
   buyback amount in GAS (Fixed8)
 - 'n' -> int
   number of ants ever created, the ID of the latest ant
 - 'l' -> int
   lock flag, present only while an ant is created or sold
 - 'i'<token ID> -> interop.Hash160
   allocated ant IDs with their first owner
*/
