package types

import "encoding/json"

// AuthenticationResult describes the outcome of an authentication attempt.
type AuthenticationResult struct {
	Success         bool `json:"success"`
	DriverConnected bool `json:"driverConnected"`
	// Error carries a human-readable failure message. By convention it is
	// set only when Success is false, but the type does not enforce that.
	Error *string `json:"error,omitempty"`
}

// AuthenticationResultFromJSON creates an AuthenticationResult from JSON.
func AuthenticationResultFromJSON(data []byte) (AuthenticationResult, error) {
	var r AuthenticationResult

	err := json.Unmarshal(data, &r)
	if err != nil {
		return AuthenticationResult{}, err
	}

	return r, nil
}
