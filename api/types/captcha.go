package types

import "encoding/json"

// CaptchaData describes a CAPTCHA challenge issued by the driver.
type CaptchaData struct {
	// CaptchaID is the opaque identifier of the issued challenge. The
	// driver guarantees it is non-empty and unique per challenge.
	CaptchaID string `json:"captchaId"`
	// Captcha is the image payload, either raw base64 or a full data URL.
	// Consumers must handle both forms.
	Captcha string `json:"captcha"`
}

// CaptchaDataFromJSON creates a CaptchaData from JSON.
func CaptchaDataFromJSON(data []byte) (CaptchaData, error) {
	var c CaptchaData

	err := json.Unmarshal(data, &c)
	if err != nil {
		return CaptchaData{}, err
	}

	return c, nil
}
