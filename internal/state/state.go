// internal/state/state.go
package state

// State is one phase of the application. Rendering happens through the renderer
// the state drives, so states have no draw step of their own.
type State interface {
	Enter()
	Update()
	Exit()
}

// StateMachine switches between states.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine with no initial state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state and enters the new one.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Update runs one frame of the current state.
func (sm *StateMachine) Update() {
	if sm.current != nil {
		sm.current.Update()
	}
}

// Current returns the active state.
func (sm *StateMachine) Current() State {
	return sm.current
}
