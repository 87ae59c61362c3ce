package classifier

import (
	"strings"

	"github.com/Tresor26/MOMO-Dashboard/internal/models"
)

// outgoingHints are the substrings the other_transfers direction heuristic
// looks for in the lower-cased body. The bare "to" makes the outgoing
// branch win for almost any English sentence; that behavior is inherited
// from the message corpus this table was tuned against and is kept as-is.
var outgoingHints = []string{"to", "transferred to", "sent to"}

// ResolveDirection applies the per-category rule table that decides who
// paid whom. nameToken is the raw captured counterparty (may be empty) and
// body is the normalized message, consulted for the phone number in mobile
// transfers and for the other_transfers keyword heuristic.
func ResolveDirection(category models.Category, nameToken, body string) (sender, receiver string) {
	switch category {
	case models.CategoryIncomingMoney:
		return nameOrDefault(nameToken, models.PartyUnknown), models.PartyYou

	case models.CategoryPaymentToCodeHolder, models.CategoryBankTransfer:
		return models.PartyYou, nameOrDefault(nameToken, models.PartyUnknown)

	case models.CategoryTransferToMobile:
		if phone := ExtractPhone(body); phone != "" {
			return models.PartyYou, phone
		}
		return models.PartyYou, NormalizeName(nameToken)

	case models.CategoryBankDeposit:
		return models.PartyBank, models.PartyYou

	case models.CategoryAirtimePurchase:
		return models.PartyYou, models.PartyAirtime

	case models.CategoryCashPowerBill:
		return models.PartyYou, models.PartyCashPower

	case models.CategoryInternetVoiceBundle:
		return models.PartyYou, models.PartyBundle

	case models.CategoryThirdParty:
		return nameOrDefault(nameToken, models.PartyThirdParty), models.PartyYou

	case models.CategoryAgentWithdrawal:
		return models.PartyYou, nameOrDefault(nameToken, models.PartyAgent)

	default: // other_transfers
		lower := strings.ToLower(body)
		for _, hint := range outgoingHints {
			if strings.Contains(lower, hint) {
				return models.PartyYou, nameOrDefault(nameToken, models.PartyUnknown)
			}
		}
		return nameOrDefault(nameToken, models.PartyUnknown), models.PartyYou
	}
}

// nameOrDefault normalizes the captured token, falling back to the
// category's default label only when no token was captured at all. A token
// that normalizes to "" stays empty.
func nameOrDefault(token, fallback string) string {
	if token == "" {
		return fallback
	}
	return NormalizeName(token)
}
