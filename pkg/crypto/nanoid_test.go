package crypto

import (
	"strings"
	"testing"
)

func TestNewNanoIDWithAlphabet(t *testing.T) {
	tests := []struct {
		name         string
		alphabet     string
		wantErr      error
		wantAlphabet string
	}{
		{name: "empty uses default", alphabet: "", wantAlphabet: defaultAlphabet},
		{name: "custom alphabet", alphabet: "ABCDEFGH", wantAlphabet: "ABCDEFGH"},
		{name: "alphabet too long", alphabet: strings.Repeat("a", 256), wantErr: ErrAlphabetTooLong},
		{name: "alphabet too short", alphabet: "abc", wantErr: ErrAlphabetTooShort},
		{name: "non-ascii alphabet", alphabet: "ありがとうござい", wantErr: ErrAlphabetNotASCII},
		{name: "min alphabet size", alphabet: strings.Repeat("a", 8), wantAlphabet: strings.Repeat("a", 8)},
		{name: "max alphabet size", alphabet: strings.Repeat("a", 255), wantAlphabet: strings.Repeat("a", 255)},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Act
			nanoid, err := NewNanoIDWithAlphabet(test.alphabet)

			// Assert
			if err != test.wantErr {
				t.Fatalf("NewNanoIDWithAlphabet() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr != nil {
				return
			}
			if nanoid == nil {
				t.Fatal("NewNanoIDWithAlphabet() returned nil, want *NanoIDGenerator")
			}
			if nanoid.alphabet != test.wantAlphabet {
				t.Errorf("alphabet = %q, want %q", nanoid.alphabet, test.wantAlphabet)
			}
		})
	}
}

func TestNanoIDGenerator_GetMask(t *testing.T) {
	tests := []struct {
		name        string
		alphabetLen int
		wantMask    int
	}{
		{name: "alphabet 8", alphabetLen: 8, wantMask: 15},
		{name: "alphabet 16", alphabetLen: 16, wantMask: 31},
		{name: "alphabet 32", alphabetLen: 32, wantMask: 63},
		{name: "alphabet 64", alphabetLen: 64, wantMask: 127},
		{name: "alphabet 128", alphabetLen: 128, wantMask: 255},
		{name: "alphabet 255", alphabetLen: 255, wantMask: 255},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			// Arrange
			alphabet := strings.Repeat("a", test.alphabetLen)
			nanoid, err := NewNanoIDWithAlphabet(alphabet)
			if err != nil {
				t.Fatalf("NewNanoIDWithAlphabet() error = %v", err)
			}

			// Assert
			if nanoid.mask != test.wantMask {
				t.Errorf("mask = %d, want %d", nanoid.mask, test.wantMask)
			}
			// Verify mask properties
			if ((nanoid.mask + 1) & nanoid.mask) != 0 {
				t.Errorf("mask %d is not (power of 2 - 1)", nanoid.mask)
			}
			if nanoid.mask <= test.alphabetLen-1 {
				t.Errorf("mask %d <= alphabetLen-1 %d", nanoid.mask, test.alphabetLen-1)
			}
		})
	}
}

func TestNanoIDGeneratedLength(t *testing.T) {
	nanoid := NewNanoID()

	tests := []struct {
		name string
		size int
		want int
	}{
		{"explicit default", defaultSize, defaultSize},
		{"custom length 12", 12, 12},
		{"custom length 50", 50, 50},
		{"zero uses default", 0, defaultSize},
		{"negative uses default", -5, defaultSize},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			id, err := nanoid.GenerateSize(test.size)
			if err != nil {
				t.Fatalf("GenerateSize() error = %v", err)
			}
			if len(id) != test.want {
				t.Errorf("length = %d, want %d", len(id), test.want)
			}
		})
	}
}

func TestNanoIDGenerator_AlphabetOnly(t *testing.T) {
	nanoid := NewNanoID()

	for i := 0; i < 100; i++ {
		id, err := nanoid.Generate()
		if err != nil {
			t.Fatalf("iteration %d: Generate() error = %v", i, err)
		}
		for _, char := range id {
			if !strings.ContainsRune(defaultAlphabet, char) {
				t.Fatalf("id %q contains %q outside the alphabet", id, char)
			}
		}
	}
}

func TestNanoIDGenerator_Unique(t *testing.T) {
	// Arrange
	nanoid := NewNanoID()
	ids := make(map[string]bool)
	iterations := 1000

	// Act & Assert
	for i := 0; i < iterations; i++ {
		id, err := nanoid.Generate()
		if err != nil {
			t.Fatalf("iteration %d: Generate() error = %v", i, err)
		}
		if ids[id] {
			t.Fatalf("duplicate id generated: %q", id)
		}
		ids[id] = true
	}
}
