package session

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var legal = map[State][]State{
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

// machineAt forces a machine into a state for table tests.
func machineAt(s State, logger *zap.Logger) *Machine {
	m := NewMachine(logger)
	m.state = s
	return m
}

func TestEveryStatePairMatchesTable(t *testing.T) {
	t.Parallel()

	for _, from := range States() {
		allowed := map[State]bool{}
		for _, to := range legal[from] {
			allowed[to] = true
		}

		for _, to := range States() {
			from, to := from, to
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				t.Parallel()
				m := machineAt(from, nil)
				ok := m.TransitionTo(to)

				if ok != allowed[to] {
					t.Fatalf("TransitionTo returned %v, table says %v", ok, allowed[to])
				}
				if ok && m.State() != to {
					t.Fatalf("expected state %s after legal transition, got %s", to, m.State())
				}
				if !ok && m.State() != from {
					t.Fatalf("expected state to stay %s after rejection, got %s", from, m.State())
				}
			})
		}
	}
}

func TestIdleReachableFromEveryNonIdleState(t *testing.T) {
	for _, s := range States() {
		if s == StateIdle {
			continue
		}
		if !CanTransition(s, StateIdle) {
			t.Fatalf("expected IDLE to be reachable from %s", s)
		}
	}
}

func TestNoShortcutFromAskingToFeedback(t *testing.T) {
	if CanTransition(StateAskQuestion, StateGeneratingFeedback) {
		t.Fatalf("ASK_QUESTION must not jump to GENERATING_FEEDBACK")
	}
	if !CanTransition(StateAskFollowUp, StateGeneratingFeedback) {
		t.Fatalf("ASK_FOLLOW_UP may end the interview")
	}
}

func TestListeningToAskQuestionIsRejectedAndLogged(t *testing.T) {
	core, observed := observer.New(zapcore.WarnLevel)
	m := machineAt(StateListening, zap.New(core))

	if m.TransitionTo(StateAskQuestion) {
		t.Fatalf("expected LISTENING -> ASK_QUESTION to be rejected")
	}
	if m.State() != StateListening {
		t.Fatalf("expected state to remain LISTENING, got %s", m.State())
	}

	entries := observed.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["from"] != "LISTENING" || ctx["to"] != "ASK_QUESTION" {
		t.Fatalf("unexpected log fields: %v", ctx)
	}
}

func TestOnChangeHook(t *testing.T) {
	m := NewMachine(nil)

	var got [][2]State
	m.OnChange(func(from, to State) { got = append(got, [2]State{from, to}) })

	m.TransitionTo(StateSetup)
	m.TransitionTo(StateComplete)
	m.TransitionTo(StateInitializing)

	if len(got) != 2 {
		t.Fatalf("expected 2 hook calls, got %d", len(got))
	}
	if got[1] != [2]State{StateSetup, StateInitializing} {
		t.Fatalf("unexpected hook payload: %v", got[1])
	}
}

func TestTransitionsReturnsCopy(t *testing.T) {
	targets := Transitions(StateIdle)
	targets[0] = StateComplete
	if !CanTransition(StateIdle, StateSetup) {
		t.Fatalf("mutating the returned slice must not change the table")
	}
}
