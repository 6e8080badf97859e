package market_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/big"

	"github.com/nspcc-dev/antfarm-contract/rpc/market"
	"github.com/nspcc-dev/neo-go/pkg/core/transaction"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/gas"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// Buy a single egg at the current price and report the purchase. Market pulls
// GAS from the buyer, so the signer scope includes GAS contract.
func ExampleContract_BuyEggs() {
	const rpcEndpoint = "http://localhost:30333"

	c, err := rpcclient.New(context.Background(), rpcEndpoint, rpcclient.Options{})
	if err != nil {
		log.Fatal(err)
	}

	err = c.Init()
	if err != nil {
		log.Fatal(err)
	}

	marketAddress, err := util.Uint160DecodeStringLE("5f490b3d4cd4a1c5b0f0da1a0c0e5e20b1e93e5a")
	if err != nil {
		log.Fatal(err)
	}

	acc, err := wallet.NewAccount()
	if err != nil {
		log.Fatal(err)
	}

	act, err := actor.New(c, []actor.SignerAccount{{
		Signer: transaction.Signer{
			Account:          acc.ScriptHash(),
			Scopes:           transaction.CalledByEntry | transaction.CustomContracts,
			AllowedContracts: []util.Uint160{gas.Hash},
		},
		Account: acc,
	}})
	if err != nil {
		log.Fatal(err)
	}

	m := market.New(act, marketAddress)

	price, err := m.GetEggPrice()
	if err != nil {
		log.Fatal(err)
	}

	res, err := act.Wait(m.BuyEggs(act.Sender(), big.NewInt(1), price))
	if err != nil {
		log.Fatal(err)
	}
	if res.VMState != vmstate.Halt {
		if errors.Is(market.ErrorFromException(res.FaultException), market.ErrPriceNotSet) {
			log.Fatal("eggs are not on sale yet")
		}
		log.Fatal(res.FaultException)
	}

	h, vub, err := m.CreateAnt(act.Sender())
	res, err = act.Wait(h, vub, err)
	if err != nil {
		log.Fatal(err)
	}
	if res.VMState != vmstate.Halt {
		if errors.Is(market.ErrorFromException(res.FaultException), market.ErrNoResourceHeld) {
			log.Fatal("the purchase was not processed")
		}
		log.Fatal(res.FaultException)
	}

	appLog, err := c.GetApplicationLog(h, nil)
	if err != nil {
		log.Fatal(err)
	}

	created, err := market.AntCreatedEventsFromApplicationLog(appLog)
	if err != nil {
		log.Fatal(err)
	}

	for _, e := range created {
		fmt.Printf("ant #%s hatched for %s\n", e.ID, e.Owner.StringLE())
	}
}
