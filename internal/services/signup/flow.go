// Package signup models the multi-step registration flow as an explicit
// finite state machine, independent of any rendering layer. Each state owns
// a transition guard; Advance refuses to leave a state until its inputs are
// valid.
package signup

import (
	"errors"
	"strings"
	"time"

	"bankee/internal/validation"
)

// State identifies one step of the signup flow.
type State int

const (
	StateCredentials State = iota // email + password
	StatePersonal                 // name + phone
	StateDetails                  // address, occupation, date of birth
	StateComplete                 // ready to submit
)

func (s State) String() string {
	switch s {
	case StateCredentials:
		return "credentials"
	case StatePersonal:
		return "personal"
	case StateDetails:
		return "details"
	case StateComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Guard failures surfaced to the caller.
var (
	ErrInvalidEmail  = errors.New("a valid email address is required")
	ErrWeakPassword  = errors.New("password must be at least 8 characters and contain a special character")
	ErrNameRequired  = errors.New("full name is required")
	ErrPhoneRequired = errors.New("phone number is required")
	ErrFlowComplete  = errors.New("signup flow already complete")
	ErrFlowNotDone   = errors.New("signup flow has remaining steps")
)

// Data accumulates the inputs across steps.
type Data struct {
	Email       string
	Password    string
	Name        string
	Phone       string
	Address     string
	Occupation  string
	DateOfBirth *time.Time
}

// Flow is the state machine instance for one signup session.
type Flow struct {
	state State
	data  Data
}

func NewFlow() *Flow {
	return &Flow{state: StateCredentials}
}

func (f *Flow) State() State { return f.state }

// Advance applies the inputs relevant to the current state and, if its guard
// passes, moves to the next state. Inputs for other states are ignored.
func (f *Flow) Advance(input Data) error {
	switch f.state {
	case StateCredentials:
		email := strings.ToLower(strings.TrimSpace(input.Email))
		if !validation.ValidEmail(email) {
			return ErrInvalidEmail
		}
		if !validation.StrongPassword(input.Password) {
			return ErrWeakPassword
		}
		f.data.Email = email
		f.data.Password = input.Password
		f.state = StatePersonal

	case StatePersonal:
		if strings.TrimSpace(input.Name) == "" {
			return ErrNameRequired
		}
		if strings.TrimSpace(input.Phone) == "" {
			return ErrPhoneRequired
		}
		f.data.Name = strings.TrimSpace(input.Name)
		f.data.Phone = strings.TrimSpace(input.Phone)
		f.state = StateDetails

	case StateDetails:
		// All optional; the guard always passes.
		f.data.Address = strings.TrimSpace(input.Address)
		f.data.Occupation = strings.TrimSpace(input.Occupation)
		f.data.DateOfBirth = input.DateOfBirth
		f.state = StateComplete

	case StateComplete:
		return ErrFlowComplete
	}
	return nil
}

// Back returns to the previous step, keeping already-entered data.
func (f *Flow) Back() {
	if f.state > StateCredentials {
		f.state--
	}
}

// Result returns the collected data once the flow is complete.
func (f *Flow) Result() (Data, error) {
	if f.state != StateComplete {
		return Data{}, ErrFlowNotDone
	}
	return f.data, nil
}
