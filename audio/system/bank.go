package system

import (
	"log"

	"github.com/milk9111/soundscape/bank"
	"github.com/milk9111/soundscape/ecs"
)

// BankSystem applies finished asset loads on the host tick and reports
// failures. Failures are isolated per asset and never retried; the asset
// simply never becomes ready.
type BankSystem struct {
	bank *bank.Bank
}

func NewBankSystem(b *bank.Bank) *BankSystem {
	return &BankSystem{bank: b}
}

func (s *BankSystem) Update(_ *ecs.World) {
	for _, asset := range s.bank.Poll() {
		if asset.State() == bank.AssetFailed {
			log.Printf("bank: %s failed to load: %v", asset.Path(), asset.Err())
		}
	}
}
