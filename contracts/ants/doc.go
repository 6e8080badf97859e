/*
Package ants implements the Ants contract of the ant farm.

Ants contract is a NEP-11 non-divisible token registry. Every ant is hatched
by the Market contract from one egg and can be sold back to it for a fixed
payout, which burns the ant. Token ID of an ant is the decimal representation
of its sequential number. Mint and Burn methods are restricted to the market
(controller) contract set at deploy. A burned ant ID is remembered and can't be
minted again. BurnedTokens method lists such IDs.

# Contract notifications

Transfer notification. This is a NEP-11 standard notification. Minted ants
have null `from`, burned ants have null `to`.

	Transfer:
	  - name: from
	    type: Hash160
	  - name: to
	    type: Hash160
	  - name: amount
	    type: Integer
	  - name: tokenId
	    type: ByteArray
*/
package ants

/*
Contract storage model.

# Summary
Key-value storage format:
 - 0x00 -> interop.Hash160
   market (controller) contract address
 - 0x01 -> int
   number of live ants
 - 0x02<interop.Hash160> -> int
   number of ants owned by the account
 - 0x03<interop.Hash160><token ID> -> token ID
   tokens of the account
 - 0x04<token ID> -> interop.Hash160
   owner of the live ant
 - 0x05<token ID> -> int
   tombstone of the burned ant
*/
