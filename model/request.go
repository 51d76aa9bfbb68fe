package model

// Request payloads for the public and authenticated routes. Field names
// follow the mobile client's JSON exactly.

type CheckUserRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

type SendOtpRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

func (r *SendOtpRequest) GetPhoneNumber() string { return r.PhoneNumber }

type VerifyOtpRequest struct {
	SessionID string `json:"sessionId"`
	Otp       string `json:"otp"`
}

type RegisterRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

func (r *RegisterRequest) GetPhoneNumber() string { return r.PhoneNumber }

type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Password    string `json:"password"`
}

type SavePinRequest struct {
	Pin        string `json:"pin"`
	ConfirmPin string `json:"confirmPin"`
}

func (r *SavePinRequest) GetPin() string     { return r.Pin }
func (r *SavePinRequest) GetConfirm() string { return r.ConfirmPin }

type VerifyPinRequest struct {
	Pin string `json:"pin"`
}

func (r *VerifyPinRequest) GetPin() string { return r.Pin }

type SaveNameRequest struct {
	Name string `json:"name"`
}

type AddFriendRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	IsSOS       bool   `json:"isSOS"`
	Name        string `json:"name,omitempty"`
}

func (r *AddFriendRequest) GetPhoneNumber() string { return r.PhoneNumber }

// PhoneCarrier and PinMatcher let the shared validator tests run against any
// request type without reflection.
type PhoneCarrier interface {
	GetPhoneNumber() string
}

type PinCarrier interface {
	GetPin() string
}

type PinMatcher interface {
	GetPin() string
	GetConfirm() string
}
