// Package hashers encodes and verifies account passwords.
//
// Encoded passwords carry their algorithm so several hashers can coexist: the
// first hasher of a Chain encodes new passwords, any of them verifies. PBKDF2
// hashes use the "<algorithm>$<iterations>$<salt>$<base64 hash>" layout; bcrypt
// hashes are stored as produced by golang.org/x/crypto/bcrypt.
package hashers

import (
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"hash"
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

// Error variables
var (
	ErrUnknownAlgorithm = errors.New("unknown password hashing algorithm")
	ErrMalformedHash    = errors.New("malformed password hash")
	ErrNoHashers        = errors.New("no password hashers configured")
)

// DefaultPBKDF2Iterations is the work factor for new PBKDF2 hashes.
const DefaultPBKDF2Iterations = 600000

const (
	saltLength   = 22
	saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Hasher encodes passwords with one algorithm.
type Hasher interface {
	Algorithm() string
	Encode(password string) (string, error)
	Verify(password, encoded string) (bool, error)
	// Identifies reports whether encoded was produced by this hasher.
	Identifies(encoded string) bool
	// MustUpdate reports whether encoded uses a different work factor than configured.
	MustUpdate(encoded string) bool
}

// PBKDF2 is a PBKDF2-HMAC hasher over a fixed digest.
type PBKDF2 struct {
	algorithm  string
	iterations int
	digest     func() hash.Hash
	size       int
}

// NewPBKDF2SHA256 returns the "pbkdf2_sha256" hasher.
func NewPBKDF2SHA256(iterations int) *PBKDF2 {
	return &PBKDF2{algorithm: "pbkdf2_sha256", iterations: iterations, digest: sha256.New, size: sha256.Size}
}

// NewPBKDF2SHA1 returns the "pbkdf2_sha1" hasher.
func NewPBKDF2SHA1(iterations int) *PBKDF2 {
	return &PBKDF2{algorithm: "pbkdf2_sha1", iterations: iterations, digest: sha1.New, size: sha1.Size}
}

func (h *PBKDF2) Algorithm() string { return h.algorithm }

func (h *PBKDF2) Identifies(encoded string) bool {
	return strings.HasPrefix(encoded, h.algorithm+"$")
}

// Encode hashes password with a fresh random salt.
func (h *PBKDF2) Encode(password string) (string, error) {
	salt, err := newSalt()
	if err != nil {
		return "", err
	}
	return h.encode(password, salt, h.iterations), nil
}

func (h *PBKDF2) encode(password, salt string, iterations int) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, h.size, h.digest)
	return fmt.Sprintf("%s$%d$%s$%s", h.algorithm, iterations, salt, base64.StdEncoding.EncodeToString(key))
}

// Verify recomputes the hash with the salt and iteration count stored in encoded.
func (h *PBKDF2) Verify(password, encoded string) (bool, error) {
	iterations, salt, err := h.decode(encoded)
	if err != nil {
		return false, err
	}
	candidate := h.encode(password, salt, iterations)
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(encoded)) == 1, nil
}

func (h *PBKDF2) MustUpdate(encoded string) bool {
	iterations, _, err := h.decode(encoded)
	return err != nil || iterations != h.iterations
}

func (h *PBKDF2) decode(encoded string) (iterations int, salt string, err error) {
	parts := strings.SplitN(encoded, "$", 4)
	if len(parts) != 4 || parts[0] != h.algorithm {
		return 0, "", ErrMalformedHash
	}
	iterations, err = strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return 0, "", ErrMalformedHash
	}
	return iterations, parts[2], nil
}

// BCrypt wraps golang.org/x/crypto/bcrypt.
type BCrypt struct {
	cost int
}

// NewBCrypt returns a bcrypt hasher. A zero cost means bcrypt.DefaultCost.
func NewBCrypt(cost int) *BCrypt {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &BCrypt{cost: cost}
}

func (h *BCrypt) Algorithm() string { return "bcrypt" }

func (h *BCrypt) Identifies(encoded string) bool {
	return strings.HasPrefix(encoded, "$2")
}

func (h *BCrypt) MustUpdate(encoded string) bool {
	cost, err := bcrypt.Cost([]byte(encoded))
	return err != nil || cost != h.cost
}

func (h *BCrypt) Encode(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (h *BCrypt) Verify(password, encoded string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}

// Chain holds hashers in order of preference.
type Chain struct {
	hashers []Hasher
}

// NewChain creates a Chain. The first hasher encodes new passwords.
func NewChain(hashers ...Hasher) *Chain {
	return &Chain{hashers: hashers}
}

// Default returns pbkdf2_sha256, pbkdf2_sha1 and bcrypt, in that order.
func Default(iterations int) *Chain {
	if iterations <= 0 {
		iterations = DefaultPBKDF2Iterations
	}
	return NewChain(NewPBKDF2SHA256(iterations), NewPBKDF2SHA1(iterations), NewBCrypt(0))
}

// Encode hashes password with the preferred hasher.
func (c *Chain) Encode(password string) (string, error) {
	if len(c.hashers) == 0 {
		return "", ErrNoHashers
	}
	return c.hashers[0].Encode(password)
}

// Verify checks password against encoded with whichever hasher produced it.
func (c *Chain) Verify(password, encoded string) (bool, error) {
	h := c.find(encoded)
	if h == nil {
		return false, ErrUnknownAlgorithm
	}
	return h.Verify(password, encoded)
}

// NeedsUpgrade reports whether encoded should be re-encoded: it was produced by
// another hasher, or by the preferred one with a different work factor.
func (c *Chain) NeedsUpgrade(encoded string) bool {
	if len(c.hashers) == 0 {
		return false
	}
	preferred := c.hashers[0]
	if !preferred.Identifies(encoded) {
		return true
	}
	return preferred.MustUpdate(encoded)
}

func (c *Chain) find(encoded string) Hasher {
	for _, h := range c.hashers {
		if h.Identifies(encoded) {
			return h
		}
	}
	return nil
}

func newSalt() (string, error) {
	max := big.NewInt(int64(len(saltAlphabet)))
	b := make([]byte, saltLength)
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b[i] = saltAlphabet[n.Int64()]
	}
	return string(b), nil
}
