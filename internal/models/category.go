// Package models provides the data structures used throughout the application.
package models

import (
	"strings"
	"unicode"
)

// Category identifies the transaction type assigned by the classification engine.
type Category string

const (
	CategoryIncomingMoney       Category = "incoming_money"
	CategoryPaymentToCodeHolder Category = "payments_to_code_holders"
	CategoryTransferToMobile    Category = "transfers_to_mobile"
	CategoryBankDeposit         Category = "bank_deposits"
	CategoryBankTransfer        Category = "bank_transfers"
	CategoryAirtimePurchase     Category = "airtime_purchases"
	CategoryCashPowerBill       Category = "cash_power_bills"
	CategoryThirdParty          Category = "third_party_transactions"
	CategoryAgentWithdrawal     Category = "agent_withdrawals"
	CategoryInternetVoiceBundle Category = "internet_voice_bundles"
	CategoryOtherTransfer       Category = "other_transfers"
)

// Categories returns every known category in classification priority order.
// The order is a contract: a message that could match patterns in two
// categories is assigned to the one that appears first in this slice.
func Categories() []Category {
	return []Category{
		CategoryIncomingMoney,
		CategoryPaymentToCodeHolder,
		CategoryTransferToMobile,
		CategoryBankDeposit,
		CategoryBankTransfer,
		CategoryAirtimePurchase,
		CategoryCashPowerBill,
		CategoryThirdParty,
		CategoryAgentWithdrawal,
		CategoryInternetVoiceBundle,
		CategoryOtherTransfer,
	}
}

// IsValid reports whether c is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// DisplayName returns a human-readable form of the category name,
// e.g. "cash_power_bills" becomes "Cash Power Bills".
func (c Category) DisplayName() string {
	words := strings.Split(string(c), "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		runes := []rune(w)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
