package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/nspcc-dev/repledger-contract/contracts/repledger/repledgerconst"
	"github.com/nspcc-dev/repledger-contract/rpc/repledger"
)

func main() {
	neoRPCEndpoint := flag.String("rpc", "", "Network address of the Neo RPC server")
	walletPath := flag.String("wallet", "", "Path to the NEP-6 wallet of the deployer")
	walletPassword := flag.String("password", "", "Password of the deployer wallet")
	contractsDir := flag.String("contracts", "contracts", "Directory with contract sources")
	contextID := flag.String("context", "", "Base58 market context ID (random if omitted)")
	withMarket := flag.Bool("market", true, "Deploy the market wrapper contract")

	flag.Parse()

	switch {
	case *neoRPCEndpoint == "":
		log.Fatal("missing Neo RPC endpoint")
	case *walletPath == "":
		log.Fatal("missing deployer wallet")
	}

	marketContext, err := marketContextID(*contextID)
	if err != nil {
		log.Fatal(fmt.Errorf("market context: %w", err))
	}

	b, err := newRemoteBlockchain(*neoRPCEndpoint, *walletPath, *walletPassword)
	if err != nil {
		log.Fatal(fmt.Errorf("init remote blockchain: %w", err))
	}

	defer b.close()

	ledgerHash, err := b.deployContract(*contractsDir, "repledger", nil)
	if err != nil {
		log.Fatal(fmt.Errorf("deploy ledger contract: %w", err))
	}
	log.Printf("Ledger contract deployed at %s\n", ledgerHash.StringLE())

	calculatorHash, err := b.deployContract(*contractsDir, "calculator", nil)
	if err != nil {
		log.Fatal(fmt.Errorf("deploy calculator contract: %w", err))
	}
	log.Printf("Calculator contract deployed at %s\n", calculatorHash.StringLE())

	if !*withMarket {
		return
	}

	marketHash, err := b.deployContract(*contractsDir, "market", []any{ledgerHash, []byte(marketContext)})
	if err != nil {
		log.Fatal(fmt.Errorf("deploy market contract: %w", err))
	}
	log.Printf("Market contract deployed at %s, context %s\n", marketHash.StringLE(), marketContext)
}

// marketContextID parses the context ID flag or makes a fresh random one.
func marketContextID(s string) (repledger.ID, error) {
	if s == "" {
		id := uuid.New()
		return repledger.ID(id[:]), nil
	}

	return repledger.DecodeID(s, repledgerconst.ContextIDSize)
}
