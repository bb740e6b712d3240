package contracts

import (
	"github.com/XavierBriggs/Scribe/pkg/models"
)

// BetClassifier is the single classification interface shared by the
// extraction pipeline and the storage migration path. Any stored wager
// carrying a category outside the closed enumeration is re-run through the
// same implementation rather than a parallel reimplementation.
type BetClassifier interface {
	// ClassifyBet assigns the market category and fine type code for a wager
	ClassifyBet(w *models.Wager) (models.MarketCategory, string)

	// ClassifyLeg categorizes a bare market string for legacy legs that
	// lack full wager context
	ClassifyLeg(marketText, sport string) models.MarketCategory
}
