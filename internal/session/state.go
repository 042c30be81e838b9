package session

import (
	"sync"

	"go.uber.org/zap"
)

// State is the interview control state.
type State string

const (
	StateIdle               State = "IDLE"
	StateSetup              State = "SETUP"
	StateInitializing       State = "INITIALIZING"
	StateAskQuestion        State = "ASK_QUESTION"
	StateListening          State = "LISTENING"
	StateProcessing         State = "PROCESSING"
	StateAskFollowUp        State = "ASK_FOLLOW_UP"
	StateGeneratingFeedback State = "GENERATING_FEEDBACK"
	StatePaused             State = "PAUSED"
	StateComplete           State = "COMPLETE"
)

// States lists every state in lifecycle order.
func States() []State {
	return []State{
		StateIdle, StateSetup, StateInitializing, StateAskQuestion, StateListening,
		StateProcessing, StateAskFollowUp, StateGeneratingFeedback, StatePaused, StateComplete,
	}
}

// There is intentionally no edge from ASK_QUESTION or ASK_FOLLOW_UP to
// GENERATING_FEEDBACK: every answer passes LISTENING and PROCESSING first.
var transitions = map[State][]State{
	StateIdle:               {StateSetup},
	StateSetup:              {StateInitializing, StateIdle},
	StateInitializing:       {StateAskQuestion, StateSetup, StateIdle},
	StateAskQuestion:        {StateListening, StatePaused, StateIdle},
	StateListening:          {StateProcessing, StateGeneratingFeedback, StatePaused, StateIdle},
	StateProcessing:         {StateAskFollowUp, StateGeneratingFeedback, StateIdle},
	StateAskFollowUp:        {StateListening, StateGeneratingFeedback, StatePaused, StateIdle},
	StatePaused:             {StateAskQuestion, StateListening, StateAskFollowUp, StateIdle},
	StateGeneratingFeedback: {StateComplete, StateIdle},
	StateComplete:           {StateIdle, StateSetup},
}

// Transitions returns the legal targets from the given state.
func Transitions(from State) []State {
	return append([]State(nil), transitions[from]...)
}

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to State) bool {
	for _, target := range transitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

// Machine holds the current control state and only moves along legal edges.
type Machine struct {
	mu       sync.Mutex
	state    State
	logger   *zap.Logger
	onChange func(from, to State)
}

// NewMachine returns a machine in IDLE.
func NewMachine(logger *zap.Logger) *Machine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Machine{state: StateIdle, logger: logger}
}

// OnChange registers a callback fired after every successful transition.
func (m *Machine) OnChange(fn func(from, to State)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.onChange = fn
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// TransitionTo moves to target if the edge is legal. An illegal target is
// logged and leaves the state unchanged.
func (m *Machine) TransitionTo(target State) bool {
	m.mu.Lock()
	from := m.state
	if !CanTransition(from, target) {
		m.mu.Unlock()
		m.logger.Warn("illegal state transition rejected",
			zap.String("from", string(from)),
			zap.String("to", string(target)),
		)
		return false
	}
	m.state = target
	hook := m.onChange
	m.mu.Unlock()

	m.logger.Debug("state transition", zap.String("from", string(from)), zap.String("to", string(target)))
	if hook != nil {
		hook(from, target)
	}
	return true
}
