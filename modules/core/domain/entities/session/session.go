package session

import (
	"time"
)

// Tokens is the credential pair issued by the upstream API on login.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Profile is the authenticated account snapshot captured at login time.
type Profile struct {
	ID          string `json:"_id"`
	UserID      string `json:"userId"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	Role        string `json:"role"`
}

// Session is a server-side login session keyed by the sid cookie.
type Session struct {
	Token     string    `json:"token"`
	Tokens    Tokens    `json:"tokens"`
	Profile   Profile   `json:"profile"`
	IP        string    `json:"ip"`
	UserAgent string    `json:"userAgent"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

type CreateDTO struct {
	Token     string
	Tokens    Tokens
	Profile   Profile
	IP        string
	UserAgent string
}

func (d *CreateDTO) ToEntity(now time.Time, ttl time.Duration) *Session {
	return &Session{
		Token:     d.Token,
		Tokens:    d.Tokens,
		Profile:   d.Profile,
		IP:        d.IP,
		UserAgent: d.UserAgent,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}
