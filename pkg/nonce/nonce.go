package nonce

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

const tokenLength = 20

// Source issues and verifies short-lived anti-forgery tokens bound to a user
// and an action name. A token stays valid for the time window it was created
// in plus the following one, so a form filled in just before the rollover
// still submits.
type Source struct {
	secret []byte
	window time.Duration
	now    func() time.Time
}

func New(secret string, window time.Duration) *Source {
	return &Source{
		secret: []byte(secret),
		window: window,
		now:    time.Now,
	}
}

func (s *Source) Create(userID uint64, action string) string {
	return s.token(s.tick(), userID, action)
}

func (s *Source) Verify(token string, userID uint64, action string) bool {
	tick := s.tick()
	for _, candidate := range []string{
		s.token(tick, userID, action),
		s.token(tick-1, userID, action),
	} {
		if hmac.Equal([]byte(token), []byte(candidate)) {
			return true
		}
	}
	return false
}

func (s *Source) tick() int64 {
	return s.now().Unix() / int64(s.window.Seconds())
}

func (s *Source) token(tick int64, userID uint64, action string) string {
	mac := hmac.New(sha256.New, s.secret)
	fmt.Fprintf(mac, "%d|%d|%s", tick, userID, action)
	return hex.EncodeToString(mac.Sum(nil))[:tokenLength]
}
