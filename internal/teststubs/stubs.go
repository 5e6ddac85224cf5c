package teststubs

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"

	"mlb-fanbot/internal/dialog"
	"mlb-fanbot/internal/domain"
	"mlb-fanbot/internal/sentiment"
)

// StubDataProvider is a test double for providers.DataProvider.
type StubDataProvider struct {
	Teams        []domain.Team
	TeamsErr     error
	Standings    []domain.StandingEntry
	StandingsErr error
	// GamesByDate maps a YYYY-MM-DD date to that day's games.
	GamesByDate map[string][]domain.Game
	// GamesErrDates lists dates whose fetch should fail.
	GamesErrDates map[string]error

	TeamCalls     atomic.Int32
	StandingCalls atomic.Int32
	GameCalls     atomic.Int32
}

func (s *StubDataProvider) FetchTeams(ctx context.Context) ([]domain.Team, error) {
	_ = ctx
	s.TeamCalls.Add(1)
	return s.Teams, s.TeamsErr
}

func (s *StubDataProvider) FetchStandings(ctx context.Context) ([]domain.StandingEntry, error) {
	_ = ctx
	s.StandingCalls.Add(1)
	return s.Standings, s.StandingsErr
}

func (s *StubDataProvider) FetchGamesByDate(ctx context.Context, date string) ([]domain.Game, error) {
	_ = ctx
	s.GameCalls.Add(1)
	if err, ok := s.GamesErrDates[date]; ok {
		return nil, err
	}
	return s.GamesByDate[date], nil
}

// ScriptedEngine is a test double for dialog.Engine that replays a fixed
// sequence of replies and records every utterance and context it was sent.
type ScriptedEngine struct {
	Replies []dialog.Reply
	Err     error

	mu         sync.Mutex
	Utterances []string
	Contexts   []dialog.Context
	next       int
}

func (e *ScriptedEngine) Send(ctx context.Context, utterance string, conv dialog.Context) (dialog.Reply, error) {
	_ = ctx
	e.mu.Lock()
	defer e.mu.Unlock()

	e.Utterances = append(e.Utterances, utterance)
	snapshot := dialog.Context{}
	for k, v := range conv {
		snapshot[k] = v
	}
	e.Contexts = append(e.Contexts, snapshot)

	if e.Err != nil {
		return dialog.Reply{}, e.Err
	}
	if e.next >= len(e.Replies) {
		return dialog.Reply{Context: conv}, nil
	}
	reply := e.Replies[e.next]
	e.next++
	if reply.Context == nil {
		reply.Context = conv
	}
	return reply, nil
}

// StubAnalyzer is a test double for sentiment.Analyzer.
type StubAnalyzer struct {
	Tones []sentiment.Tone
	Err   error
	Texts []string
}

func (a *StubAnalyzer) Tone(ctx context.Context, text string) ([]sentiment.Tone, error) {
	_ = ctx
	a.Texts = append(a.Texts, text)
	return a.Tones, a.Err
}

// StubMessenger is a test double for notify.Messenger recording every send.
type StubMessenger struct {
	Err    error
	FailOn string // body substring that triggers Err for that send only

	mu     sync.Mutex
	ToNums []string
	Bodies []string
}

func (m *StubMessenger) Send(ctx context.Context, to, body string) (string, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ToNums = append(m.ToNums, to)
	m.Bodies = append(m.Bodies, body)
	if m.Err != nil && (m.FailOn == "" || strings.Contains(body, m.FailOn)) {
		return "", m.Err
	}
	return "SM-stub", nil
}

// StubHeadlineSource is a test double for headlines.Source.
type StubHeadlineSource struct {
	Lines  []string
	Err    error
	Topics []string
}

func (s *StubHeadlineSource) Headlines(ctx context.Context, topic string, count int) ([]string, error) {
	_ = ctx
	_ = count
	s.Topics = append(s.Topics, topic)
	return s.Lines, s.Err
}

// StubSpeaker records everything the orchestrator speaks.
type StubSpeaker struct {
	mu     sync.Mutex
	Spoken []string
	Err    error
}

func (s *StubSpeaker) Speak(ctx context.Context, text string) error {
	_ = ctx
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Spoken = append(s.Spoken, text)
	return s.Err
}

// Lines returns a copy of everything spoken so far.
func (s *StubSpeaker) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.Spoken))
	copy(out, s.Spoken)
	return out
}
