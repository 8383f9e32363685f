package domain

import "time"

// Interaction is one completed query/answer pair in the history log.
// Records are never mutated after creation.
type Interaction struct {
	// Mode is the label of the mode the interaction ran under, as it was
	// named at record time.
	Mode Mode

	// Question is the user's query text.
	Question string

	// Answer is the successful result text.
	Answer string

	// At is when the interaction completed.
	At time.Time
}

// Replay is a pending re-run request taken from the history log.
type Replay struct {
	// Question is the query text to re-issue.
	Question string

	// TargetMode is the mode the interaction was originally recorded
	// under, mapped to a currently valid identifier.
	TargetMode Mode
}

// Session holds the mutable per-session state: the current mode, the
// hybrid-knowledge flag, the append-only history log, and at most one
// pending replay. A session is owned by a single evaluation loop; no
// locking is needed within it. State lives for the process lifetime.
type Session struct {
	mode    Mode
	hybrid  bool
	history []Interaction
	pending *Replay
}

// NewSession creates a session in the given mode with an empty history
// and no pending replay.
func NewSession(mode Mode) *Session {
	if !mode.IsValid() {
		mode = ModeUnstructuredQA
	}
	return &Session{mode: mode}
}

// Mode returns the currently selected mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// SetMode switches the currently selected mode. Invalid modes are ignored.
func (s *Session) SetMode(m Mode) {
	if m.IsValid() {
		s.mode = m
	}
}

// HybridEnabled reports whether hybrid (general-knowledge) answering is on.
// The flag only affects unstructured Q&A.
func (s *Session) HybridEnabled() bool {
	return s.hybrid
}

// SetHybridEnabled toggles hybrid answering.
func (s *Session) SetHybridEnabled(v bool) {
	s.hybrid = v
}

// Record appends a completed interaction to the history log. It is always
// legal and does not affect the replay state.
func (s *Session) Record(mode Mode, question, answer string) {
	s.history = append(s.history, Interaction{
		Mode:     mode,
		Question: question,
		Answer:   answer,
		At:       time.Now(),
	})
}

// History returns a copy of the history log in insertion order.
func (s *Session) History() []Interaction {
	out := make([]Interaction, len(s.history))
	copy(out, s.history)
	return out
}

// Len returns the number of logged interactions.
func (s *Session) Len() int {
	return len(s.history)
}

// ClearHistory empties the history log. It is independent of the replay
// state and always legal.
func (s *Session) ClearHistory() {
	s.history = nil
}

// RequestReplay marks an interaction for re-running. The stored mode label
// is mapped to a currently valid mode; unknown labels keep the session's
// current mode. Setting a new replay before the previous one is consumed
// overwrites it.
func (s *Session) RequestReplay(rec Interaction) {
	s.pending = &Replay{
		Question:   rec.Question,
		TargetMode: MapModeLabel(string(rec.Mode), s.mode),
	}
}

// ConsumeReplay returns the pending replay and clears it. The second
// return value is false when nothing is pending. Callers invoke this at
// most once per evaluation cycle so a replay is never processed twice.
func (s *Session) ConsumeReplay() (Replay, bool) {
	if s.pending == nil {
		return Replay{}, false
	}
	r := *s.pending
	s.pending = nil
	return r, true
}
