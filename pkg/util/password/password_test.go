package password

import (
	"errors"
	"strings"
	"testing"
)

func TestHashFormat(t *testing.T) {
	hash, err := Hash("correcthorsebatterystaple")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !strings.HasPrefix(hash, "$argon2id$v=") {
		t.Errorf("Hash() format invalid, got %s", hash)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Errorf("Hash() expected 6 parts, got %d", len(parts))
	}
}

func TestVerify(t *testing.T) {
	hash, err := Hash("mysecretpassword")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		password string
		wantErr  error
	}{
		{"correct password", hash, "mysecretpassword", nil},
		{"wrong password", hash, "wrongpassword", ErrMismatch},
		{"empty password", hash, "", ErrMismatch},
		{"garbage hash", "not-a-hash", "mysecretpassword", ErrInvalidHash},
		{"wrong algorithm", "$bcrypt$v=19$m=65536,t=3,p=2$abc$def", "x", ErrInvalidHash},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Verify(tt.hash, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Verify() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMatch(t *testing.T) {
	hash, err := Hash("s3cret")
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}

	if !Match(hash, "s3cret") {
		t.Error("Match() = false for correct password")
	}
	if Match(hash, "S3cret") {
		t.Error("Match() = true for wrong password")
	}
}

func TestHashUniqueSalt(t *testing.T) {
	h1, err := Hash("same")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := Hash("same")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestGenerate(t *testing.T) {
	for _, n := range []int{0, 8, 16, 32} {
		got := Generate(n)
		want := n
		if want <= 0 {
			want = 16
		}
		if len(got) != want {
			t.Errorf("Generate(%d) length = %d, want %d", n, len(got), want)
		}
	}

	if Generate(16) == Generate(16) {
		t.Error("Generate() should not repeat")
	}
}
