package session

import (
	"fmt"
	"io"
	"iter"
	"math/rand/v2"
	"sync"

	"github.com/mrsobakin/armada/internal/game"
	"github.com/mrsobakin/armada/internal/game/field"
)

type Phase int

const (
	PhaseSetup Phase = iota
	PhasePlaying
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhasePlaying:
		return "playing"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	for _, phase := range [...]Phase{PhaseSetup, PhasePlaying, PhaseOver} {
		if phase.String() == string(text) {
			*p = phase
			return nil
		}
	}
	return fmt.Errorf("invalid phase %q", text)
}

// Outcome of a single shot, as seen by the shooter.
type Report struct {
	Result field.ShootResult `json:"result"`
	// Category of the ship at the fired position, if any.
	Ship      field.Category `json:"ship,omitempty"`
	Sunk      bool           `json:"sunk"`
	Remaining int            `json:"remaining"`
	Over      bool           `json:"over"`
}

type Stats struct {
	Phase     Phase `json:"phase"`
	Ships     int   `json:"ships"`
	Shots     int   `json:"shots"`
	Hits      int   `json:"hits"`
	Sinks     int   `json:"sinks"`
	Repeated  int   `json:"repeated"`
	Invalid   int   `json:"invalid"`
	Remaining int   `json:"remaining"`
	Over      bool  `json:"over"`
}

// One fleet and the game played against it.
//
// The fleet is assembled during PhaseSetup and frozen once
// the session starts. All methods are safe for concurrent use.
type Session struct {
	mu sync.Mutex

	phase Phase
	fleet *field.Fleet
	game  *game.Game
	rng   *rand.Rand
}

// Creates an empty session in PhaseSetup.
//
// `seed` drives the `random` command.
func New(seed uint64) *Session {
	fleet := field.NewFleet()

	return &Session{
		phase: PhaseSetup,
		fleet: fleet,
		game:  game.New(fleet),
		rng:   rand.New(rand.NewPCG(seed, seed)),
	}
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.phase
}

// Places one ship. Returns false if the fleet rejected it.
func (s *Session) Place(category field.Category, compass field.Compass, anchor field.Position) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseSetup {
		return false, fmt.Errorf("place: %w", ErrWrongPhase)
	}

	ship, err := field.NewShip(category, compass, anchor)
	if err != nil {
		return false, err
	}

	return s.fleet.AddShip(ship), nil
}

// Replaces the fleet with one built from `placements`.
// On error, the current fleet is kept.
func (s *Session) Load(placements iter.Seq2[field.Placement, error]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseSetup {
		return fmt.Errorf("load: %w", ErrWrongPhase)
	}

	fleet, err := field.LoadFleet(placements)
	if err != nil {
		return err
	}

	s.reset(fleet)
	return nil
}

// Replaces the fleet with a random standard one.
//
// If `r` is nil, the session's own generator is used.
func (s *Session) Randomize(r *rand.Rand) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phase != PhaseSetup {
		return fmt.Errorf("randomize: %w", ErrWrongPhase)
	}

	if r == nil {
		r = s.rng
	}

	fleet, err := field.RandomFleet(r, field.StandardComposition)
	if err != nil {
		return err
	}

	s.reset(fleet)
	return nil
}

func (s *Session) reset(fleet *field.Fleet) {
	s.fleet = fleet
	s.game = game.New(fleet)
}

func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.start()
}

func (s *Session) start() error {
	if s.phase != PhaseSetup {
		return fmt.Errorf("start: %w", ErrWrongPhase)
	}

	if s.fleet.Len() == 0 {
		return ErrNoShips
	}

	s.phase = PhasePlaying
	return nil
}

// Fires at `pos`. The first shot of a session in setup starts it.
func (s *Session) Fire(pos field.Position) (Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.phase {
	case PhaseSetup:
		if err := s.start(); err != nil {
			return Report{}, err
		}
	case PhaseOver:
		return Report{}, fmt.Errorf("fire: %w", ErrWrongPhase)
	}

	ship, result := s.game.Fire(pos)

	report := Report{
		Result:    result,
		Remaining: s.game.RemainingShips(),
		Over:      s.game.IsOver(),
	}

	if ship != nil {
		report.Ship = ship.Category()
		report.Sunk = !ship.StillFloating()
	}

	if report.Over {
		s.phase = PhaseOver
	}

	return report, nil
}

func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Stats{
		Phase:     s.phase,
		Ships:     s.fleet.Len(),
		Shots:     s.game.ValidShots(),
		Hits:      s.game.Hits(),
		Sinks:     s.game.SunkShips(),
		Repeated:  s.game.RepeatedShots(),
		Invalid:   s.game.InvalidShots(),
		Remaining: s.game.RemainingShips(),
		Over:      s.game.IsOver(),
	}
}

// Renders the shots fired so far.
func (s *Session) Board(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.PrintValidShots(w)
}

// Renders the ships of the fleet.
func (s *Session) Fleet(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.PrintFleet(w)
}

// Lists all ships, then by category, largest first, then the floating ones.
func (s *Session) Status(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fleet.PrintStatus(w)
}
