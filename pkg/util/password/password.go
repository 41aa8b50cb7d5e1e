package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/ADITYATHUNGAK/Ai-For-Healthcare/config"
)

var (
	ErrInvalidHash         = errors.New("invalid password hash format")
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")
	ErrMismatch            = errors.New("password does not match")
)

// Params defines the Argon2id parameters.
type Params struct {
	Memory      uint32 // KiB
	Iterations  uint32
	Parallelism uint8
	SaltLength  uint32
	KeyLength   uint32
}

// DefaultParams returns secure defaults based on OWASP recommendations
// for password storage.
func DefaultParams() *Params {
	return &Params{
		Memory:      64 * 1024, // 64 MiB
		Iterations:  3,
		Parallelism: 2,
		SaltLength:  16,
		KeyLength:   32,
	}
}

var defaultParams = DefaultParams()

// FromCentralConfig converts central config.PasswordConfig to Params,
// falling back to defaults for anything unset.
func FromCentralConfig(c config.PasswordConfig) *Params {
	p := *defaultParams
	if c.MemoryKiB > 0 {
		p.Memory = c.MemoryKiB
	}
	if c.Iterations > 0 {
		p.Iterations = c.Iterations
	}
	if c.Parallelism > 0 {
		p.Parallelism = c.Parallelism
	}
	if c.SaltLength > 0 {
		p.SaltLength = c.SaltLength
	}
	if c.KeyLength > 0 {
		p.KeyLength = c.KeyLength
	}
	return &p
}

// Hash generates an Argon2id hash of the password using default parameters.
func Hash(password string) (string, error) {
	return HashWithParams(password, defaultParams)
}

// HashWithParams generates an Argon2id hash of the password using custom parameters.
func HashWithParams(password string, p *Params) (string, error) {
	if p == nil {
		p = defaultParams
	}

	salt := make([]byte, p.SaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	hash := argon2.IDKey(
		[]byte(password),
		salt,
		p.Iterations,
		p.Memory,
		p.Parallelism,
		p.KeyLength,
	)

	// PHC string format:
	// $argon2id$v=19$m=65536,t=3,p=2$<salt>$<hash>
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf(
		"$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		p.Memory,
		p.Iterations,
		p.Parallelism,
		b64Salt,
		b64Hash,
	), nil
}

// Verify compares a password against an Argon2id hash. Returns nil on match,
// ErrMismatch when they differ, or another error if the hash is malformed.
func Verify(hash, password string) error {
	p, salt, hashBytes, err := decodeHash(hash)
	if err != nil {
		return err
	}

	otherHash := argon2.IDKey(
		[]byte(password),
		salt,
		p.Iterations,
		p.Memory,
		p.Parallelism,
		p.KeyLength,
	)

	if subtle.ConstantTimeCompare(hashBytes, otherHash) != 1 {
		return ErrMismatch
	}

	return nil
}

// Match is a convenience wrapper that returns true if password matches hash.
func Match(hash, password string) bool {
	return Verify(hash, password) == nil
}

// Generate creates a random password of the specified length using URL-safe
// base64 characters. Used when seeding accounts.
func Generate(length int) string {
	if length <= 0 {
		length = 16
	}

	byteLen := (length*6 + 7) / 8
	b := make([]byte, byteLen)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Errorf("failed to generate random password: %w", err))
	}

	encoded := base64.RawURLEncoding.EncodeToString(b)
	if len(encoded) > length {
		return encoded[:length]
	}
	return encoded
}

func decodeHash(encodedHash string) (*Params, []byte, []byte, error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return nil, nil, nil, ErrInvalidHash
	}

	if parts[1] != "argon2id" {
		return nil, nil, nil, ErrInvalidHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}
	if version != argon2.Version {
		return nil, nil, nil, ErrIncompatibleVersion
	}

	var p Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.Memory, &p.Iterations, &p.Parallelism); err != nil {
		return nil, nil, nil, ErrInvalidHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return nil, nil, nil, ErrInvalidHash
	}
	p.SaltLength = uint32(len(salt))

	hash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return nil, nil, nil, ErrInvalidHash
	}
	p.KeyLength = uint32(len(hash))

	return &p, salt, hash, nil
}
