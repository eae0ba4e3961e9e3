// Package btcaddr checks bitcoin addresses and detects the network they belong to.
package btcaddr

import (
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
)

// network names reported by Checker
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Regtest = "regtest"
	Signet  = "signet"
)

// Result of address check
type Result struct {
	Valid   bool
	Network string // empty if not valid
}

// Checker validates addresses against known bitcoin networks
type Checker struct {
	networks []network
}

type network struct {
	name   string
	params *chaincfg.Params
}

// NewChecker makes a checker for mainnet, testnet3, regtest and signet, in this order.
// Testnet and signet share address prefixes, such addresses are reported as testnet.
func NewChecker() *Checker {
	return &Checker{networks: []network{
		{name: Mainnet, params: &chaincfg.MainNetParams},
		{name: Testnet, params: &chaincfg.TestNet3Params},
		{name: Regtest, params: &chaincfg.RegressionNetParams},
		{name: Signet, params: &chaincfg.SigNetParams},
	}}
}

// Check decodes the address with checksum verification. Only payment addresses are accepted:
// P2PKH, P2SH, P2WPKH, P2WSH and P2TR. Serialized public keys are rejected.
func (c *Checker) Check(addr string) Result {
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return Result{}
	}
	for _, n := range c.networks {
		decoded, err := btcutil.DecodeAddress(addr, n.params)
		if err != nil {
			continue
		}
		if !isPaymentAddress(decoded) || !decoded.IsForNet(n.params) {
			continue
		}
		return Result{Valid: true, Network: n.name}
	}
	return Result{}
}

func isPaymentAddress(a btcutil.Address) bool {
	switch a.(type) {
	case *btcutil.AddressPubKeyHash, *btcutil.AddressScriptHash, *btcutil.AddressWitnessPubKeyHash,
		*btcutil.AddressWitnessScriptHash, *btcutil.AddressTaproot:
		return true
	default:
		return false
	}
}
