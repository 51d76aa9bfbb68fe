package service

import (
	"context"
	"errors"
	"testing"

	"safeher/customerrors"
)

type fakeGateway struct {
	sessionId string
	sendErr   error
	accepted  string
	lastPhone string
}

func (g *fakeGateway) SendOtp(_ context.Context, phoneNumber string) (string, error) {
	g.lastPhone = phoneNumber
	if g.sendErr != nil {
		return "", g.sendErr
	}
	return g.sessionId, nil
}

func (g *fakeGateway) VerifyOtp(_ context.Context, sessionId, otp string) error {
	if sessionId == g.sessionId && otp == g.accepted {
		return nil
	}
	return customerrors.ErrInvalidOtp
}

func TestSendOtpReturnsSessionHandle(t *testing.T) {
	gw := &fakeGateway{sessionId: "S1", accepted: "123456"}
	svc := NewOtpService(gw)

	sessionId, err := svc.SendOtp(context.Background(), "9000000001")
	if err != nil {
		t.Fatalf("send otp: %v", err)
	}
	if sessionId != "S1" {
		t.Fatalf("expected vendor session S1, got %s", sessionId)
	}
	if gw.lastPhone != "9000000001" {
		t.Fatalf("gateway called with wrong phone: %s", gw.lastPhone)
	}
}

func TestSendOtpThrottlesResend(t *testing.T) {
	gw := &fakeGateway{sessionId: "S2", accepted: "123456"}
	svc := NewOtpService(gw)
	ctx := context.Background()

	if _, err := svc.SendOtp(ctx, "9000000002"); err != nil {
		t.Fatalf("first send: %v", err)
	}

	if _, err := svc.SendOtp(ctx, "9000000002"); !errors.Is(err, ErrDuplicateOtp) {
		t.Fatalf("expected ErrDuplicateOtp, got %v", err)
	}
}

func TestVerifyOtpDelegatesToGateway(t *testing.T) {
	gw := &fakeGateway{sessionId: "S3", accepted: "123456"}
	svc := NewOtpService(gw)
	ctx := context.Background()

	if _, err := svc.SendOtp(ctx, "9000000003"); err != nil {
		t.Fatalf("send: %v", err)
	}

	if err := svc.VerifyOtp(ctx, "S3", "654321"); !errors.Is(err, customerrors.ErrInvalidOtp) {
		t.Fatalf("expected ErrInvalidOtp, got %v", err)
	}

	if err := svc.VerifyOtp(ctx, "S3", "123456"); err != nil {
		t.Fatalf("verify: %v", err)
	}

	// A consumed session frees the resend throttle.
	if _, err := svc.SendOtp(ctx, "9000000003"); err != nil {
		t.Fatalf("resend after verify: %v", err)
	}
}

func TestSendOtpGatewayFailure(t *testing.T) {
	gw := &fakeGateway{sendErr: errors.New("vendor down")}
	svc := NewOtpService(gw)

	if _, err := svc.SendOtp(context.Background(), "9000000004"); err == nil {
		t.Fatal("expected gateway failure to surface")
	}
}
