package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/XavierBriggs/Scribe/pkg/contracts"
	"github.com/XavierBriggs/Scribe/pkg/models"
)

// Reclassifier repairs stored wagers whose category fell outside the closed
// enumeration (older imports, manual edits). It runs them through the same
// BetClassifier the extraction pipeline uses; storage migration is never a
// parallel reimplementation of classification.
type Reclassifier struct {
	db         *sql.DB
	classifier contracts.BetClassifier
}

// NewReclassifier creates a reclassifier over Alexandria
func NewReclassifier(db *sql.DB, classifier contracts.BetClassifier) *Reclassifier {
	return &Reclassifier{db: db, classifier: classifier}
}

// ReclassifyInvalid finds wagers with an invalid category, re-runs
// classification and updates them. Returns the number of repaired rows.
func (r *Reclassifier) ReclassifyInvalid(ctx context.Context) (int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT book_key, reference_id, bet_type, league, description,
		       entity_name, type, legs, category
		FROM wagers
		WHERE category IS NULL
		   OR category NOT IN ($1, $2, $3, $4)
	`, string(models.CategoryProps), string(models.CategoryMainMarkets),
		string(models.CategoryFutures), string(models.CategoryParlays))
	if err != nil {
		return 0, fmt.Errorf("query invalid categories: %w", err)
	}
	defer rows.Close()

	type pending struct {
		bookKey  string
		refID    string
		category models.MarketCategory
		typeCode string
	}
	var updates []pending

	for rows.Next() {
		var (
			bookKey, refID, betType, league, description string
			entityName, typeCode                         string
			legsJSON                                     []byte
			category                                     sql.NullString
		)
		if err := rows.Scan(&bookKey, &refID, &betType, &league, &description,
			&entityName, &typeCode, &legsJSON, &category); err != nil {
			return 0, fmt.Errorf("scan wager: %w", err)
		}

		w := models.Wager{
			ReferenceID: refID,
			BookKey:     bookKey,
			BetType:     models.BetType(betType),
			League:      league,
			Description: description,
			EntityName:  entityName,
			Type:        typeCode,
		}
		if len(legsJSON) > 0 {
			// Legs inform the prop-signal check; a decode failure only
			// costs that signal, not the row
			_ = json.Unmarshal(legsJSON, &w.Legs)
		}

		cat, typ := r.classifier.ClassifyBet(&w)
		updates = append(updates, pending{bookKey: bookKey, refID: refID, category: cat, typeCode: typ})
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("rows error: %w", err)
	}

	repaired := 0
	for _, u := range updates {
		result, err := r.db.ExecContext(ctx, `
			UPDATE wagers SET category = $1, type = $2
			WHERE book_key = $3 AND reference_id = $4
		`, string(u.category), u.typeCode, u.bookKey, u.refID)
		if err != nil {
			return repaired, fmt.Errorf("update wager %s: %w", u.refID, err)
		}
		if n, _ := result.RowsAffected(); n > 0 {
			repaired++
		}
	}

	return repaired, nil
}
