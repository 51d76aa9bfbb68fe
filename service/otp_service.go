package service

import (
	"context"
	"errors"
	"fmt"

	localCache "safeher/cache"

	"github.com/patrickmn/go-cache"
)

var (
	ErrDuplicateOtp = errors.New("OTP already sent. Please wait until it expires (5 minutes)")
)

// OtpGateway is the vendor boundary. The production implementation is
// client.TwoFactorClient; tests substitute a fake.
type OtpGateway interface {
	SendOtp(ctx context.Context, phoneNumber string) (string, error)
	VerifyOtp(ctx context.Context, sessionId, otp string) error
}

type OtpService interface {
	SendOtp(ctx context.Context, phoneNumber string) (string, error)
	VerifyOtp(ctx context.Context, sessionId, otp string) error
}

type OtpServiceImpl struct {
	gateway OtpGateway
}

func NewOtpService(gateway OtpGateway) OtpService {
	return &OtpServiceImpl{gateway: gateway}
}

// SendOtp asks the vendor to generate and deliver a code, returning the
// vendor session handle. Nothing is persisted here; the session lives with
// the vendor until it expires.
func (s *OtpServiceImpl) SendOtp(ctx context.Context, phoneNumber string) (string, error) {
	if _, found := localCache.OtpCache.Get(phoneNumber); found {
		return "", ErrDuplicateOtp
	}

	sessionId, err := s.gateway.SendOtp(ctx, phoneNumber)
	if err != nil {
		return "", fmt.Errorf("failed to send otp: %w", err)
	}

	localCache.OtpCache.Set(phoneNumber, sessionId, cache.DefaultExpiration)

	return sessionId, nil
}

func (s *OtpServiceImpl) VerifyOtp(ctx context.Context, sessionId, otp string) error {
	if err := s.gateway.VerifyOtp(ctx, sessionId, otp); err != nil {
		return err
	}

	// Free the throttle slot once the code is consumed.
	for phone, item := range localCache.OtpCache.Items() {
		if stored, ok := item.Object.(string); ok && stored == sessionId {
			localCache.OtpCache.Delete(phone)
			break
		}
	}

	return nil
}
