package session

import (
	"sync"

	"mlb-fanbot/internal/domain"
)

// State holds the reference data a conversation needs before it can start:
// the team list, the season standings and the merged schedule window. All
// methods are safe for concurrent use.
type State struct {
	mu        sync.RWMutex
	teams     []domain.Team
	standings []domain.StandingEntry
	schedule  domain.MergedSchedule

	teamsSet     bool
	standingsSet bool
	scheduleSet  bool
}

// NewState returns an empty, not-ready state.
func NewState() *State {
	return &State{}
}

// SetTeams stores the team snapshot.
func (s *State) SetTeams(teams []domain.Team) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams = teams
	s.teamsSet = true
}

// Teams returns a copy of the stored team snapshot.
func (s *State) Teams() []domain.Team {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Team, len(s.teams))
	copy(out, s.teams)
	return out
}

// SetStandings stores the season standings in provider order.
func (s *State) SetStandings(entries []domain.StandingEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.standings = entries
	s.standingsSet = true
}

// Standings returns a copy of the stored standings.
func (s *State) Standings() []domain.StandingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.StandingEntry, len(s.standings))
	copy(out, s.standings)
	return out
}

// SetSchedule stores the merged schedule window.
func (s *State) SetSchedule(merged domain.MergedSchedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedule = merged
	s.scheduleSet = true
}

// Schedule returns the merged schedule window.
func (s *State) Schedule() domain.MergedSchedule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.schedule
}

// Ready reports whether all three feeds have been stored.
func (s *State) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.teamsSet && s.standingsSet && s.scheduleSet
}
