package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nspcc-dev/neo-go/cli/smartcontract"
	"github.com/nspcc-dev/neo-go/pkg/compiler"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/actor"
	"github.com/nspcc-dev/neo-go/pkg/rpcclient/management"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/manifest"
	"github.com/nspcc-dev/neo-go/pkg/smartcontract/nef"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/vmstate"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// remoteBlockchain wraps a Neo RPC connection with the deployer account
// behind it.
type remoteBlockchain struct {
	rpc   *rpcclient.Client
	actor *actor.Actor
}

// newRemoteBlockchain dials Neo RPC server and sets up an actor on behalf of
// the deployer wallet. Connection and all requests are done within 15 second
// timeout.
func newRemoteBlockchain(blockchainRPCEndpoint, walletPath, walletPassword string) (*remoteBlockchain, error) {
	w, err := wallet.NewWalletFromFile(walletPath)
	if err != nil {
		return nil, fmt.Errorf("open deployer wallet: %w", err)
	}

	acc := w.GetAccount(w.GetChangeAddress())
	if acc == nil {
		return nil, fmt.Errorf("deployer wallet has no usable account")
	}
	err = acc.Decrypt(walletPassword, w.Scrypt)
	if err != nil {
		return nil, fmt.Errorf("decrypt deployer account: %w", err)
	}

	c, err := rpcclient.New(context.Background(), blockchainRPCEndpoint, rpcclient.Options{
		DialTimeout:    15 * time.Second,
		RequestTimeout: 15 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("RPC client dial: %w", err)
	}

	act, err := actor.NewSimple(c, acc)
	if err != nil {
		return nil, fmt.Errorf("init actor: %w", err)
	}

	return &remoteBlockchain{
		rpc:   c,
		actor: act,
	}, nil
}

func (x *remoteBlockchain) close() {
	x.rpc.Close()
}

// deployContract compiles the named contract from its source directory and
// deploys it with the given data, waiting for the deploy transaction to be
// persisted.
func (x *remoteBlockchain) deployContract(contractsDir, name string, data any) (util.Uint160, error) {
	ne, m, err := compileContract(filepath.Join(contractsDir, name))
	if err != nil {
		return util.Uint160{}, fmt.Errorf("compile '%s' contract: %w", name, err)
	}

	txHash, vub, err := management.New(x.actor).Deploy(ne, m, data)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("send deploy transaction: %w", err)
	}

	aer, err := x.actor.Wait(txHash, vub, nil)
	if err != nil {
		return util.Uint160{}, fmt.Errorf("wait for deploy transaction: %w", err)
	}
	if aer.VMState != vmstate.Halt {
		return util.Uint160{}, fmt.Errorf("deploy transaction faulted: %s", aer.FaultException)
	}

	return state.CreateContractHash(x.actor.Sender(), ne.Checksum, m.Name), nil
}

// compileContract builds contract NEF and manifest from sources the same way
// the neo-go CLI does, taking name, events and permissions from the
// contract's config.yml.
func compileContract(ctrPath string) (*nef.File, *manifest.Manifest, error) {
	ne, di, err := compiler.CompileWithOptions(ctrPath, nil, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("compile: %w", err)
	}

	conf, err := smartcontract.ParseContractConfig(filepath.Join(ctrPath, "config.yml"))
	if err != nil {
		return nil, nil, fmt.Errorf("parse contract config: %w", err)
	}

	o := &compiler.Options{}
	o.Name = conf.Name
	o.ContractEvents = conf.Events
	o.ContractSupportedStandards = conf.SupportedStandards
	o.Permissions = make([]manifest.Permission, len(conf.Permissions))
	for i := range conf.Permissions {
		o.Permissions[i] = manifest.Permission(conf.Permissions[i])
	}
	o.SafeMethods = conf.SafeMethods

	m, err := compiler.CreateManifest(di, o)
	if err != nil {
		return nil, nil, fmt.Errorf("create manifest: %w", err)
	}

	return ne, m, nil
}
