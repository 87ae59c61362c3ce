package models

import (
	"github.com/shopspring/decimal"
)

// Sentinel party labels used by the directionality rules.
const (
	PartyYou        = "You"
	PartyUnknown    = "Unknown"
	PartyBank       = "Bank"
	PartyAirtime    = "Airtime"
	PartyCashPower  = "Cash Power/EUCL"
	PartyBundle     = "Bundle Service"
	PartyThirdParty = "Third Party"
	PartyAgent      = "Agent"
)

// ClassifiedRecord is the structured output of the classification core for a
// single message body. It is built once per message and never mutated
// afterwards; persistence operates on a copy of its values.
//
// Sender and Receiver hold either a counterparty name, one of the sentinel
// party labels above, or the empty string when no party could be determined.
type ClassifiedRecord struct {
	Category    Category
	Amount      decimal.Decimal
	Sender      string
	Receiver    string
	RawBody     string
	Balance     *decimal.Decimal
	Fee         *decimal.Decimal
	Description string
}

// HasBalance reports whether a balance amount was found in the message.
func (r *ClassifiedRecord) HasBalance() bool {
	return r.Balance != nil
}

// HasFee reports whether a fee amount was found in the message.
func (r *ClassifiedRecord) HasFee() bool {
	return r.Fee != nil
}

// StoredTransaction is the persisted representation of a classified record,
// as read back from the database. Amounts are plain float64 here because the
// storage schema uses REAL columns; the classification core itself works in
// decimal.Decimal.
type StoredTransaction struct {
	ID          int64    `csv:"-" json:"id"`
	Category    string   `csv:"Category" json:"category"`
	Amount      float64  `csv:"Amount" json:"amount"`
	Sender      string   `csv:"Sender" json:"sender"`
	Receiver    string   `csv:"Receiver" json:"receiver"`
	Date        string   `csv:"Date" json:"date"`
	Description string   `csv:"Description" json:"description"`
	RawBody     string   `csv:"RawBody" json:"raw_body"`
	Balance     *float64 `csv:"Balance" json:"balance"`
	Fee         *float64 `csv:"Fee" json:"fee"`
}
