package timer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/streax/internal/domain"
)

type Phase string

const (
	PhaseIdle   Phase = "idle"
	PhaseFocus  Phase = "focus"
	PhaseBreak  Phase = "break"
	PhasePaused Phase = "paused"
)

// DefaultMaxAge is how long persisted timer state stays resumable.
const DefaultMaxAge = 24 * time.Hour

// State is the persisted pomodoro timer. While running, EndTime is the
// absolute target and RemainingSeconds is derived from it on every tick.
// While paused, EndTime is nil and RemainingSeconds is frozen.
type State struct {
	Phase            Phase      `json:"phase"`
	PausedPhase      Phase      `json:"pausedPhase,omitempty"`
	TaskName         string     `json:"taskName"`
	PresetIndex      int        `json:"selectedPreset"`
	FocusMinutes     int        `json:"totalFocusTime"`
	RemainingSeconds int        `json:"timeRemaining"`
	EndTime          *time.Time `json:"endTime,omitempty"`
	SessionStart     *time.Time `json:"sessionStartTime,omitempty"`
	LastUpdate       time.Time  `json:"lastUpdate"`
}

// Transition describes phase changes applied by Tick, Reconcile or Stop.
type Transition struct {
	FocusCompleted bool
	BreakCompleted bool
	// Session is set when a session finished and should be logged.
	Session *domain.PomodoroSession
}

func (t Transition) Changed() bool {
	return t.FocusCompleted || t.BreakCompleted || t.Session != nil
}

// NewState returns an idle timer.
func NewState(now time.Time) *State {
	return &State{Phase: PhaseIdle, PresetIndex: DefaultPreset, LastUpdate: now}
}

// Remaining is the time left until end, never negative.
func Remaining(now, end time.Time) time.Duration {
	if d := end.Sub(now); d > 0 {
		return d
	}
	return 0
}

// RemainingSeconds rounds Remaining up to whole seconds.
func RemainingSeconds(now, end time.Time) int {
	return int(math.Ceil(Remaining(now, end).Seconds()))
}

func (s *State) Running() bool {
	return s.Phase == PhaseFocus || s.Phase == PhaseBreak
}

func (s *State) Preset() Preset {
	p, err := PresetAt(s.PresetIndex)
	if err != nil {
		return presets[DefaultPreset]
	}
	return p
}

// ActivePhase is the phase being timed, looking through a pause.
func (s *State) ActivePhase() Phase {
	if s.Phase == PhasePaused {
		return s.PausedPhase
	}
	return s.Phase
}

// PhaseSeconds is the full length of the active phase.
func (s *State) PhaseSeconds() int {
	switch s.ActivePhase() {
	case PhaseFocus:
		return s.Preset().FocusMinutes * 60
	case PhaseBreak:
		return s.Preset().BreakMinutes * 60
	default:
		return 0
	}
}

// Progress is the completed fraction of the active phase in [0, 1].
func (s *State) Progress(now time.Time) float64 {
	total := s.PhaseSeconds()
	if total == 0 {
		return 0
	}
	left := s.RemainingSeconds
	if s.Running() && s.EndTime != nil {
		left = RemainingSeconds(now, *s.EndTime)
	}
	return math.Min(1, math.Max(0, float64(total-left)/float64(total)))
}

// Start begins a focus phase for task using the preset at presetIndex.
func (s *State) Start(task string, presetIndex int, now time.Time) error {
	if s.Phase != PhaseIdle {
		return fmt.Errorf("start while %s: %w", s.Phase, ErrInvalidTransition)
	}
	task = strings.TrimSpace(task)
	if task == "" {
		return ErrEmptyTask
	}
	preset, err := PresetAt(presetIndex)
	if err != nil {
		return err
	}

	start := now
	end := now.Add(time.Duration(preset.FocusMinutes) * time.Minute)
	*s = State{
		Phase:            PhaseFocus,
		TaskName:         task,
		PresetIndex:      presetIndex,
		FocusMinutes:     preset.FocusMinutes,
		RemainingSeconds: preset.FocusMinutes * 60,
		EndTime:          &end,
		SessionStart:     &start,
		LastUpdate:       now,
	}
	return nil
}

// Pause freezes the remaining time and drops the absolute end time.
func (s *State) Pause(now time.Time) error {
	if !s.Running() {
		return fmt.Errorf("pause while %s: %w", s.Phase, ErrInvalidTransition)
	}
	if s.EndTime != nil {
		s.RemainingSeconds = RemainingSeconds(now, *s.EndTime)
	}
	s.PausedPhase = s.Phase
	s.Phase = PhasePaused
	s.EndTime = nil
	s.LastUpdate = now
	return nil
}

// Resume recomputes an absolute end time from the frozen remainder.
func (s *State) Resume(now time.Time) error {
	if s.Phase != PhasePaused {
		return fmt.Errorf("resume while %s: %w", s.Phase, ErrInvalidTransition)
	}
	next := s.PausedPhase
	if next == "" {
		next = PhaseBreak
		if s.FocusMinutes > 0 {
			next = PhaseFocus
		}
	}
	end := now.Add(time.Duration(s.RemainingSeconds) * time.Second)
	s.Phase = next
	s.PausedPhase = ""
	s.EndTime = &end
	s.LastUpdate = now
	return nil
}

// Tick re-derives the remaining time from the end time and applies every
// phase change whose deadline has passed, so a long suspension can finish
// both focus and break in one call.
func (s *State) Tick(now time.Time) Transition {
	var tr Transition
	for s.Running() && s.EndTime != nil {
		s.RemainingSeconds = RemainingSeconds(now, *s.EndTime)
		if s.RemainingSeconds > 0 {
			break
		}
		switch s.Phase {
		case PhaseFocus:
			tr.FocusCompleted = true
			end := s.EndTime.Add(time.Duration(s.Preset().BreakMinutes) * time.Minute)
			s.Phase = PhaseBreak
			s.EndTime = &end
		case PhaseBreak:
			tr.BreakCompleted = true
			tr.Session = s.session(*s.EndTime, s.FocusMinutes, true)
			s.reset()
		}
	}
	s.LastUpdate = now
	return tr
}

// Stop ends the session early. During (or paused in) a break the session
// already counts as complete; during focus the elapsed whole minutes are
// logged as a partial session, or nothing when under a minute.
func (s *State) Stop(now time.Time) (Transition, error) {
	if s.Phase == PhaseIdle {
		return Transition{}, fmt.Errorf("stop while idle: %w", ErrInvalidTransition)
	}
	tr := s.Tick(now)
	if tr.Session != nil {
		return tr, nil
	}

	switch s.ActivePhase() {
	case PhaseBreak:
		tr.Session = s.session(now, s.FocusMinutes, true)
	case PhaseFocus:
		left := s.RemainingSeconds
		if s.Running() && s.EndTime != nil {
			left = RemainingSeconds(now, *s.EndTime)
		}
		worked := (s.FocusMinutes*60 - left) / 60
		if worked > 0 {
			tr.Session = s.session(now, worked, false)
			tr.Session.ActualFocusMinutes = &worked
		}
	}
	s.reset()
	s.LastUpdate = now
	return tr, nil
}

// Reconcile prepares persisted state for reuse. It reports stale=true when
// the state is older than maxAge and must be discarded; otherwise any phase
// deadline that passed while the process was away is applied.
func (s *State) Reconcile(now time.Time, maxAge time.Duration) (tr Transition, stale bool) {
	if maxAge > 0 && now.Sub(s.LastUpdate) > maxAge {
		return Transition{}, true
	}
	return s.Tick(now), false
}

func (s *State) session(end time.Time, minutes int, completed bool) *domain.PomodoroSession {
	start := end.Add(-time.Duration(minutes) * time.Minute)
	if s.SessionStart != nil {
		start = *s.SessionStart
	}
	return &domain.PomodoroSession{
		TaskName:        s.TaskName,
		StartTime:       start.UTC(),
		EndTime:         end.UTC(),
		DurationMinutes: minutes,
		Preset:          s.Preset().Name,
		Completed:       completed,
	}
}

func (s *State) reset() {
	preset := s.PresetIndex
	*s = State{Phase: PhaseIdle, PresetIndex: preset}
}

// Restore returns persisted state ready for use, or nil when there is
// nothing to resume (no state, or state older than maxAge).
func Restore(s *State, now time.Time, maxAge time.Duration) (*State, Transition) {
	if s == nil {
		return nil, Transition{}
	}
	tr, stale := s.Reconcile(now, maxAge)
	if stale {
		return nil, Transition{}
	}
	return s, tr
}
