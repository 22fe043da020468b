package email

import (
	"fmt"
	"time"
)

const (
	OtpSubject           = "Your OTP Code - Grab Simulator"
	otpHTMLTemplate      = "otp_code.html"
	otpPlainTextTemplate = "otp_code.txt"
)

type otpTemplateInput struct {
	Code          string
	ExpiryMinutes int
}

// NewOtpEmail builds the message carrying a one-time code to the given address.
func NewOtpEmail(to string, code string, ttl time.Duration) (SendEmailInput, error) {
	input := SendEmailInput{To: to, Subject: OtpSubject}
	data := otpTemplateInput{Code: code, ExpiryMinutes: int(ttl.Minutes())}

	if err := input.GenerateBodyFromHTML(otpHTMLTemplate, data); err != nil {
		return input, fmt.Errorf("generate html body failed: %w", err)
	}

	if err := input.GeneratePlainTextFromTemplate(otpPlainTextTemplate, data); err != nil {
		return input, fmt.Errorf("generate plain text body failed: %w", err)
	}

	return input, nil
}
