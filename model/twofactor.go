package model

// TwoFactorResponse is the envelope 2factor.in wraps every API reply in.
// On a successful AUTOGEN send, Details carries the OTP session id the
// client resubmits on verify.
type TwoFactorResponse struct {
	Status  string `json:"Status"`
	Details string `json:"Details"`
}

const TwoFactorStatusSuccess = "Success"
