package types

import "encoding/json"

// MfaData describes the multi-factor methods available to complete
// authentication.
type MfaData struct {
	// Methods is the list of method names (e.g. "email", "sms"), in the
	// order given by the driver. It may be empty.
	Methods []string `json:"methods"`
}

// MfaDataFromJSON creates a MfaData from JSON.
func MfaDataFromJSON(data []byte) (MfaData, error) {
	var m MfaData

	err := json.Unmarshal(data, &m)
	if err != nil {
		return MfaData{}, err
	}

	return m, nil
}
