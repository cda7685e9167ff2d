package crypto

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"
)

func TestGenerateToken_CreateToken(t *testing.T) {
	tests := []struct {
		name           string
		byteLength     int
		expectedLength int
	}{
		{name: "zero uses default", byteLength: 0, expectedLength: DefaultTokenLength},
		{name: "negative uses default", byteLength: -10, expectedLength: DefaultTokenLength},
		{name: "16 bytes", byteLength: 16, expectedLength: 16},
		{name: "32 bytes", byteLength: 32, expectedLength: 32},
		{name: "64 bytes", byteLength: 64, expectedLength: 64},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Act
			token, err := GenerateToken(test.byteLength)

			// Assert
			if err != nil {
				t.Fatalf("GenerateToken() error = %v", err)
			}
			if token == "" {
				t.Error("GenerateToken() returned empty token")
			}
			// Decode to verify byte length
			decoded, err := base64.RawURLEncoding.DecodeString(token)
			if err != nil {
				t.Fatalf("failed to decode token: %v", err)
			}
			if len(decoded) != test.expectedLength {
				t.Errorf("token length = %d bytes, want %d", len(decoded), test.expectedLength)
			}
			// Verify URL-safe characters
			if strings.ContainsAny(token, "+/= ") {
				t.Errorf("token contains URL-unsafe characters: %q", token)
			}
		})
	}
}

func TestGenerateToken_Unique(t *testing.T) {
	// Arrange
	tokens := make(map[string]bool)
	iterations := 1000

	// Act
	for i := 0; i < iterations; i++ {
		token, err := GenerateToken(32)
		if err != nil {
			t.Fatalf("iteration %d: GenerateToken() error = %v", i, err)
		}
		if tokens[token] {
			t.Fatalf("duplicate token generated: %q", token)
		}
		tokens[token] = true
	}

	// Assert
	if len(tokens) != iterations {
		t.Errorf("expected %d unique tokens, got %d", iterations, len(tokens))
	}
}

func TestGenerateHashedToken_CreatePair(t *testing.T) {
	// Act
	pair, err := GenerateHashedToken()

	// Assert
	if err != nil {
		t.Fatalf("GenerateHashedToken() error = %v", err)
	}
	if pair == nil {
		t.Fatal("GenerateHashedToken() returned nil")
	}
	if pair.Token == "" {
		t.Error("GenerateHashedToken() token is empty")
	}
	if pair.Hash == "" {
		t.Error("GenerateHashedToken() hash is empty")
	}
	if pair.Token == pair.Hash {
		t.Error("GenerateHashedToken() token and hash should differ")
	}
	// Verify hash is valid SHA256
	if len(pair.Hash) != 64 {
		t.Errorf("hash length = %d, want 64 (SHA256)", len(pair.Hash))
	}
	if _, err := hex.DecodeString(pair.Hash); err != nil {
		t.Errorf("hash is not valid hex: %v", err)
	}
	if HashToken(pair.Token) != pair.Hash {
		t.Error("hash does not match HashToken(token)")
	}
}

func TestGenerateHashedToken_Unique(t *testing.T) {
	// Arrange
	const iterations = 100
	tokens := make(map[string]bool)
	hashes := make(map[string]bool)

	// Act & Assert
	for i := 0; i < iterations; i++ {
		pair, err := GenerateHashedToken()
		if err != nil {
			t.Fatalf("iteration %d: GenerateHashedToken() error = %v", i, err)
		}
		if tokens[pair.Token] {
			t.Errorf("iteration %d: duplicate token", i)
		}
		if hashes[pair.Hash] {
			t.Errorf("iteration %d: duplicate hash", i)
		}
		tokens[pair.Token] = true
		hashes[pair.Hash] = true
	}
}

func TestVerifyToken_ValidateToken(t *testing.T) {
	tests := []struct {
		name    string
		setup   func() (token, hash string)
		token   string
		hash    string
		wantErr bool
		wantOk  bool
	}{
		{
			name: "correct token",
			setup: func() (string, string) {
				pair, _ := GenerateHashedToken()
				return pair.Token, pair.Hash
			},
			wantOk: true,
		},
		{
			name: "wrong token",
			setup: func() (string, string) {
				pair, _ := GenerateHashedToken()
				return "wrong_token_value", pair.Hash
			},
			wantOk: false,
		},
		{
			name: "wrong hash",
			setup: func() (string, string) {
				pair, _ := GenerateHashedToken()
				return pair.Token, "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"
			},
			wantOk: false,
		},
		{
			name:    "empty token",
			token:   "",
			hash:    "somehash",
			wantErr: true,
		},
		{
			name:    "empty hash",
			token:   "sometoken",
			hash:    "",
			wantErr: true,
		},
		{
			name: "modified token",
			setup: func() (string, string) {
				pair, _ := GenerateHashedToken()
				modifiedToken := pair.Token[:len(pair.Token)-1] + "X"
				return modifiedToken, pair.Hash
			},
			wantOk: false,
		},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			token, hash := test.token, test.hash
			if test.setup != nil {
				token, hash = test.setup()
			}

			// Act
			ok, err := VerifyToken(token, hash)

			// Assert
			if (err != nil) != test.wantErr {
				t.Fatalf("VerifyToken() error = %v, wantErr %v", err, test.wantErr)
			}
			if !test.wantErr && ok != test.wantOk {
				t.Errorf("VerifyToken() = %v, want %v", ok, test.wantOk)
			}
		})
	}
}
