package http

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// SecurityConfig configures webhook request validation.
type SecurityConfig struct {
	// TwilioAuthToken enables X-Twilio-Signature checks on the SMS webhook.
	// Empty disables the check (local development).
	TwilioAuthToken string

	// PublicURL is the externally visible base URL Twilio signs against,
	// e.g. "https://assistant.example.com".
	PublicURL string

	RateLimitPerMin int
}

// SecurityValidator validates webhook requests.
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	if config.RateLimitPerMin <= 0 {
		config.RateLimitPerMin = 60
	}
	return &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
	}
}

// ValidateTwilioSignature verifies the X-Twilio-Signature header. Twilio
// signs the full request URL concatenated with the form parameters sorted by
// key, HMAC-SHA1 with the account's auth token, base64.
func (v *SecurityValidator) ValidateTwilioSignature(signature, path string, form url.Values) error {
	if v.config.TwilioAuthToken == "" {
		return nil
	}
	if signature == "" {
		return fmt.Errorf("missing twilio signature")
	}

	payload := v.config.PublicURL + path
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		payload += k + form.Get(k)
	}

	mac := hmac.New(sha1.New, []byte(v.config.TwilioAuthToken))
	mac.Write([]byte(payload))
	expected := base64.StdEncoding.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("signature verification failed")
	}
	return nil
}

// CheckRateLimit enforces per-source rate limiting.
func (v *SecurityValidator) CheckRateLimit(source string) error {
	return v.rateLimiter.Allow(source)
}

// rateLimiter keeps one token bucket per source with auto-cleanup.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
