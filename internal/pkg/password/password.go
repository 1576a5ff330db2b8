// Package password implements the Hash/Verify contract for stored
// credentials.
//
// The default Digest hasher reproduces the scheme the existing credential
// store was written with: base64(SHA256(password + salt)) where the salt is
// a single application-wide constant. That scheme is a known weakness (fast
// digest, shared salt) kept for compatibility; the Bcrypt hasher offers the
// fix behind the same contract for deployments without legacy hashes.
package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"

	"golang.org/x/crypto/bcrypt"
)

const (
	SchemeDigest = "sha256"
	SchemeBcrypt = "bcrypt"
)

// Digest hashes passwords with a single SHA-256 round over password+salt.
type Digest struct {
	salt string
}

// NewDigest returns a Digest hasher using the given application salt.
func NewDigest(salt string) *Digest {
	return &Digest{salt: salt}
}

func (d *Digest) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password + d.salt))
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (d *Digest) Verify(password, digest string) bool {
	computed, _ := d.Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// Bcrypt hashes passwords with a per-user random salt at the default cost.
type Bcrypt struct{}

func NewBcrypt() *Bcrypt {
	return &Bcrypt{}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (b *Bcrypt) Verify(password, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)) == nil
}
