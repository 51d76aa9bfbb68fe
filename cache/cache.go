package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// OtpCache throttles resends: one outstanding OTP per phone number for the
// vendor's 5-minute validity window.
var OtpCache = cache.New(5*time.Minute, 10*time.Minute)

// RateLimiterCache keeps one token bucket per client IP.
var RateLimiterCache = cache.New(1*time.Hour, 10*time.Minute)
