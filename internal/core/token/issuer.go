// Package token issues signed session credentials. Issuance is a pure
// function of (author, roles, config); the issuer never touches the store
// and keeps no state, so credentials are independently verifiable and not
// revocable before expiry.
package token

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/newsdesk/news-api/internal/core/domain"
)

// Config carries the signing parameters supplied at process start.
type Config struct {
	Secret     string
	Issuer     string
	Audience   string
	ExpiryDays int
}

// Issuer builds HS256-signed bearer credentials.
type Issuer struct {
	cfg Config
}

func NewIssuer(cfg Config) *Issuer {
	if cfg.ExpiryDays <= 0 {
		cfg.ExpiryDays = 1
	}
	return &Issuer{cfg: cfg}
}

// Credential is a signed token together with its expiry instant.
type Credential struct {
	Token     string
	ExpiresOn time.Time
}

// Issue signs a credential for the author with one role claim per held
// role and a fresh 128-bit token identifier.
func (i *Issuer) Issue(author *domain.Author, roles []string) (*Credential, error) {
	jti, err := newTokenID()
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	now := time.Now().UTC()
	expiresOn := now.AddDate(0, 0, i.cfg.ExpiryDays)

	claims := jwt.MapClaims{
		"sub":   author.UserName,
		"uid":   author.ID,
		"email": author.Email,
		"jti":   jti,
		"roles": roles,
		"iss":   i.cfg.Issuer,
		"aud":   i.cfg.Audience,
		"iat":   now.Unix(),
		"exp":   expiresOn.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.cfg.Secret))
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &Credential{Token: signed, ExpiresOn: expiresOn}, nil
}

// newTokenID returns a collision-negligible random identifier (128 bits).
func newTokenID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
