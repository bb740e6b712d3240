package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/XavierBriggs/Scribe/pkg/patterns"
)

// Keywords are the classification keyword lists. The strong-prop list in
// particular is hand-curated and may not generalize to new sports, so it is
// shipped as overridable configuration rather than baked-in rules.
type Keywords struct {
	Futures     []string `yaml:"futures"`
	MainMarkets []string `yaml:"main_markets"`
	StrongProps []string `yaml:"strong_props"`
}

// DefaultKeywords returns the built-in keyword lists
func DefaultKeywords() Keywords {
	return Keywords{
		Futures:     patterns.FuturesKeywords,
		MainMarkets: patterns.MainMarketKeywords,
		StrongProps: patterns.DefaultStrongPropKeywords,
	}
}

// LoadKeywords reads keyword overrides from a YAML file. Lists absent from
// the file keep their defaults; an empty path returns the defaults unchanged.
func LoadKeywords(path string) (Keywords, error) {
	kw := DefaultKeywords()
	if path == "" {
		return kw, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return kw, fmt.Errorf("read keywords file: %w", err)
	}

	var overrides Keywords
	if err := yaml.Unmarshal(data, &overrides); err != nil {
		return kw, fmt.Errorf("parse keywords file: %w", err)
	}

	if len(overrides.Futures) > 0 {
		kw.Futures = overrides.Futures
	}
	if len(overrides.MainMarkets) > 0 {
		kw.MainMarkets = overrides.MainMarkets
	}
	if len(overrides.StrongProps) > 0 {
		kw.StrongProps = overrides.StrongProps
	}
	return kw, nil
}
