// Package extract turns one sportsbook bet-history markup document into a
// sequence of normalized Wager records. The document arrives already parsed;
// nothing here fetches, executes or renders anything.
package extract

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/XavierBriggs/Scribe/internal/registry"
	"github.com/XavierBriggs/Scribe/pkg/contracts"
	"github.com/XavierBriggs/Scribe/pkg/models"
)

// rawExcerptLimit bounds the diagnostic excerpt kept on each wager
const rawExcerptLimit = 300

// Pipeline drives extraction for one book family: metadata, leg tree,
// normalization, assembly and classification per wager container.
type Pipeline struct {
	adapter    contracts.BookAdapter
	reg        *registry.SportRegistry
	classifier contracts.BetClassifier
	norm       *Normalizer
	legs       *LegTreeBuilder
	log        zerolog.Logger
}

// NewPipeline creates an extraction pipeline. The logger may be
// zerolog.Nop(); the pipeline has no other output channel.
func NewPipeline(adapter contracts.BookAdapter, reg *registry.SportRegistry, classifier contracts.BetClassifier, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		adapter:    adapter,
		reg:        reg,
		classifier: classifier,
		norm:       NewNormalizer(reg),
		legs:       NewLegTreeBuilder(adapter, log),
		log:        log,
	}
}

// Extract returns every recognizable wager in the document, in document
// order. A document with zero wager containers is a valid empty result. A
// failure inside one container is logged and that wager skipped; it never
// aborts the rest of the document.
func (p *Pipeline) Extract(doc *goquery.Document) ([]models.Wager, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}

	containers := p.adapter.FindWagerContainers(doc)

	wagers := make([]models.Wager, 0, containers.Length())
	containers.Each(func(i int, s *goquery.Selection) {
		w, err := p.extractOne(s)
		if err != nil {
			p.log.Error().
				Err(err).
				Int("container", i).
				Str("book", p.adapter.BookKey()).
				Msg("skipping wager container")
			return
		}
		wagers = append(wagers, *w)
	})

	return wagers, nil
}

// extractOne processes a single wager container, converting panics from
// unexpected markup into errors carrying the best-effort reference id
func (p *Pipeline) extractOne(s *goquery.Selection) (w *models.Wager, err error) {
	sel := p.adapter.Selectors()
	refID := nodeText(s, sel.ReferenceID)

	defer func() {
		if r := recover(); r != nil {
			w = nil
			err = fmt.Errorf("wager %q: %v", refID, r)
		}
	}()

	slip := ExtractSlipMeta(s, sel)
	footer := ExtractFooterMeta(s, sel)

	headerText := nodeText(s, sel.HeaderTitle)
	headerOdds := ParseAmericanOdds(nodeText(s, sel.HeaderOdds))
	league := DetectLeague(s.Text())

	legs := p.legs.Build(s, footer.Result)
	if len(legs) == 0 && DetectBetType(headerText, nil).IsParlayFamily() {
		// Collapsed card rendering: no leg list in the markup at all,
		// recover what the summary line holds.
		legs = LegsFromSummary(headerText, footer.Result)
	}

	p.normalizeTree(legs, league)

	w = Assemble(AssembleInput{
		Slip:       slip,
		Footer:     footer,
		Legs:       legs,
		HeaderText: headerText,
		HeaderOdds: headerOdds,
		League:     league,
		BookKey:    p.adapter.BookKey(),
		RawExcerpt: excerpt(s.Text()),
	})

	w.Category, w.Type = p.classifier.ClassifyBet(w)

	if sport, ok := p.reg.ForLeague(league); ok {
		if verr := sport.ValidateWager(w); verr != nil {
			p.log.Warn().
				Err(verr).
				Str("reference_id", w.ReferenceID).
				Msg("wager failed sport validation")
		}
	}

	return w, nil
}

func (p *Pipeline) normalizeTree(legs []models.Leg, league string) {
	for i := range legs {
		if legs[i].IsGroup {
			p.normalizeTree(legs[i].Children, league)
			continue
		}
		p.norm.NormalizeLeg(&legs[i], league)
	}
}

// excerpt collapses whitespace and truncates container text for diagnostics
func excerpt(text string) string {
	collapsed := make([]rune, 0, rawExcerptLimit)
	lastSpace := false
	for _, r := range text {
		if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
			if lastSpace || len(collapsed) == 0 {
				continue
			}
			lastSpace = true
			collapsed = append(collapsed, ' ')
			continue
		}
		lastSpace = false
		collapsed = append(collapsed, r)
		if len(collapsed) >= rawExcerptLimit {
			break
		}
	}
	return string(collapsed)
}
