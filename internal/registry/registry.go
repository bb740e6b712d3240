package registry

import (
	"fmt"
	"strings"
	"sync"

	"github.com/XavierBriggs/Scribe/pkg/contracts"
)

// SportRegistry manages registered sport modules, indexed by league code
type SportRegistry struct {
	sports  map[string]contracts.SportModule // sport key -> module
	leagues map[string]contracts.SportModule // league code -> module
	mu      sync.RWMutex
}

// NewSportRegistry creates a new sport registry
func NewSportRegistry() *SportRegistry {
	return &SportRegistry{
		sports:  make(map[string]contracts.SportModule),
		leagues: make(map[string]contracts.SportModule),
	}
}

// Register adds a sport module to the registry
func (r *SportRegistry) Register(sport contracts.SportModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sportKey := sport.SportKey()
	if _, exists := r.sports[sportKey]; exists {
		return fmt.Errorf("sport %s is already registered", sportKey)
	}

	for _, code := range sport.LeagueCodes() {
		code = strings.ToUpper(code)
		if _, exists := r.leagues[code]; exists {
			return fmt.Errorf("league %s is already registered", code)
		}
		r.leagues[code] = sport
	}

	r.sports[sportKey] = sport
	return nil
}

// ForLeague retrieves the sport module covering a league code
func (r *SportRegistry) ForLeague(league string) (contracts.SportModule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sport, exists := r.leagues[strings.ToUpper(league)]
	return sport, exists
}

// IsTeamName reports whether name is a recognized team. When the league is
// known only that sport is consulted, otherwise every registered sport is.
func (r *SportRegistry) IsTeamName(league, name string) bool {
	if name == "" {
		return false
	}

	if sport, ok := r.ForLeague(league); ok {
		return sport.IsTeamName(name)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, sport := range r.sports {
		if sport.IsTeamName(name) {
			return true
		}
	}
	return false
}

// GetAll returns all registered sports
func (r *SportRegistry) GetAll() []contracts.SportModule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sports := make([]contracts.SportModule, 0, len(r.sports))
	for _, sport := range r.sports {
		sports = append(sports, sport)
	}
	return sports
}

// Count returns the number of registered sports
func (r *SportRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sports)
}
