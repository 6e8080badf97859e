/*
Package eggs implements the Eggs contract of the ant farm.

Eggs contract is a NEP-17 compatible ledger of the fungible resource sold by
the Market contract. Eggs are indivisible. The only way to create eggs is a
purchase through the Market contract and the only way to destroy them is to
hatch an ant, so both Mint and Burn methods are restricted to the market
(controller) contract set at deploy.

# Contract notifications

Transfer notification. This is a NEP-17 standard notification. Minted eggs
have null `from`, consumed eggs have null `to`.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
*/
package eggs

/*
Contract storage model.

# Summary
Key-value storage format:
 - 'c' -> interop.Hash160
   market (controller) contract address
 - 's' -> int
   total supply of eggs
 - 'b'<interop.Hash160> -> int
   egg balance of the account, missing for zero balances

# Conservation
Total supply is increased only by Mint and decreased only by Burn, so it always
equals the sum of all balances.
*/
