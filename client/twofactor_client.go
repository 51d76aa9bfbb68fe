package client

import (
	"context"
	"fmt"
	"time"

	"safeher/customerrors"
	"safeher/model"

	"github.com/go-resty/resty/v2"
)

const countryCode = "+91"

// TwoFactorClient talks to the 2factor.in SMS OTP API. The vendor generates
// and delivers the code itself (AUTOGEN) and hands back a session id that is
// required for verification, so no OTP state lives on our side.
type TwoFactorClient struct {
	RestyClient *resty.Client
	apiKey      string
}

func NewTwoFactorClient(apiKey string) *TwoFactorClient {
	c := resty.New().
		SetBaseURL("https://2factor.in/API/V1").
		SetTimeout(10*time.Second).
		SetHeader("Accept", "application/json")

	return &TwoFactorClient{RestyClient: c, apiKey: apiKey}
}

func (c *TwoFactorClient) SendOtp(ctx context.Context, phoneNumber string) (string, error) {
	var result model.TwoFactorResponse

	resp, err := c.RestyClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/%s/SMS/%s%s/AUTOGEN", c.apiKey, countryCode, phoneNumber))
	if err != nil {
		return "", fmt.Errorf("failed to reach otp gateway: %w", err)
	}

	if resp.IsError() || result.Status != model.TwoFactorStatusSuccess {
		return "", fmt.Errorf("otp gateway rejected send (status %d)", resp.StatusCode())
	}

	return result.Details, nil
}

func (c *TwoFactorClient) VerifyOtp(ctx context.Context, sessionId, otp string) error {
	var result model.TwoFactorResponse

	resp, err := c.RestyClient.R().
		SetContext(ctx).
		SetResult(&result).
		Get(fmt.Sprintf("/%s/SMS/VERIFY/%s/%s", c.apiKey, sessionId, otp))
	if err != nil {
		return fmt.Errorf("failed to reach otp gateway: %w", err)
	}

	// The vendor answers 400 with Status "Error" for a wrong or expired code.
	// Either way the caller only learns that the OTP did not verify.
	if resp.IsError() || result.Status != model.TwoFactorStatusSuccess {
		return customerrors.ErrInvalidOtp
	}

	return nil
}
