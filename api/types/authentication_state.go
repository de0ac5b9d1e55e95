// Package types contains the authentication contract types exchanged between
// the authentication driver and its consumers.
package types

import "fmt"

// AuthenticationState is the type of the challenge currently outstanding on
// the driver session, if any.
type AuthenticationState string

const (
	// AuthenticationStateNone is the state when no challenge is outstanding.
	AuthenticationStateNone AuthenticationState = "none"
	// AuthenticationStateCaptchaRequired is the state when the driver is waiting for a CAPTCHA solution.
	AuthenticationStateCaptchaRequired AuthenticationState = "captcha_required"
	// AuthenticationStateMfaRequired is the state when the driver is waiting for a multi-factor verification code.
	AuthenticationStateMfaRequired AuthenticationState = "mfa_required"
)

// AuthenticationStates is the list of all possible authentication states.
var AuthenticationStates = []AuthenticationState{
	AuthenticationStateNone,
	AuthenticationStateCaptchaRequired,
	AuthenticationStateMfaRequired,
}

// InvalidStateError defines an error for values outside the
// [AuthenticationState] set.
type InvalidStateError struct {
	error
}

// Is makes this error insensitive to the actual error content.
func (InvalidStateError) Is(err error) bool { return err == InvalidStateError{} }

// ParseAuthenticationState returns the [AuthenticationState] matching s, or
// an [InvalidStateError] if s is not part of the state vocabulary.
func ParseAuthenticationState(s string) (AuthenticationState, error) {
	switch state := AuthenticationState(s); state {
	case AuthenticationStateNone, AuthenticationStateCaptchaRequired, AuthenticationStateMfaRequired:
		return state, nil
	}
	return "", InvalidStateError{fmt.Errorf("unknown authentication state %q", s)}
}

// IsValid returns whether s is part of the state vocabulary.
func (s AuthenticationState) IsValid() bool {
	_, err := ParseAuthenticationState(string(s))
	return err == nil
}

// MarshalText implements [encoding.TextMarshaler], refusing states outside
// the vocabulary.
func (s AuthenticationState) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, InvalidStateError{fmt.Errorf("unknown authentication state %q", string(s))}
	}
	return []byte(s), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], refusing states
// outside the vocabulary.
func (s *AuthenticationState) UnmarshalText(text []byte) error {
	state, err := ParseAuthenticationState(string(text))
	if err != nil {
		return err
	}

	*s = state
	return nil
}

// AuthenticationEventCallback is the function signature consumers register
// with the driver to be notified of authentication state changes. The
// callback returns nothing, so it can neither veto nor transform a
// transition.
type AuthenticationEventCallback func(state AuthenticationState)
