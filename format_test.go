package enums

import (
	"errors"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want string
	}{
		{"general name", "G", "Green"},
		{"general lower", "g", "Green"},
		{"empty spec is general", "", "Green"},
		{"decimal", "D", "1"},
		{"decimal lower", "d", "1"},
		{"hex", "X", "01"},
		{"hex lower spec", "x", "01"},
		{"flags fallback", "F", "Green"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Format(Green, tt.spec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(Green, %q) = %q, want %q", tt.spec, got, tt.want)
			}
		})
	}

	t.Run("unknown specifier", func(t *testing.T) {
		_, err := Format(Green, "Q")
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat in chain, got %v", err)
		}

		_, err = Format(Green, "GG")
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("multi-character specifier: expected ErrInvalidFormat, got %v", err)
		}
	})

	t.Run("undefined value falls back to decimal", func(t *testing.T) {
		got, err := Format(Color(99), "G")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "99" {
			t.Errorf("expected \"99\", got %q", got)
		}
	})
}

func TestFormatSigned(t *testing.T) {
	got, err := Format(DeltaNeg, "D")
	if err != nil {
		t.Fatal(err)
	}
	if got != "-5" {
		t.Errorf("expected \"-5\", got %q", got)
	}

	t.Run("hex masks sign extension", func(t *testing.T) {
		got, err := Format(DeltaNeg, "X")
		if err != nil {
			t.Fatal(err)
		}
		// -5 as a 16-bit two's complement pattern.
		if got != "FFFB" {
			t.Errorf("expected \"FFFB\", got %q", got)
		}
	})
}

func TestFormatFlags(t *testing.T) {
	t.Run("single flag renders its name", func(t *testing.T) {
		got, err := Format(PermRead, "G")
		if err != nil {
			t.Fatal(err)
		}
		if got != "Read" {
			t.Errorf("expected \"Read\", got %q", got)
		}
	})

	t.Run("union decomposes in declaration order", func(t *testing.T) {
		got, err := Format(PermRead|PermExec, "G")
		if err != nil {
			t.Fatal(err)
		}
		if got != "Read, Exec" {
			t.Errorf("expected \"Read, Exec\", got %q", got)
		}
	})

	t.Run("declared zero renders its name", func(t *testing.T) {
		got, err := Format(PermNone, "G")
		if err != nil {
			t.Fatal(err)
		}
		if got != "None" {
			t.Errorf("expected \"None\", got %q", got)
		}
	})

	t.Run("uncovered bits fall back to decimal", func(t *testing.T) {
		got, err := Format(PermRead|Perm(64), "G")
		if err != nil {
			t.Fatal(err)
		}
		if got != "65" {
			t.Errorf("expected \"65\", got %q", got)
		}
	})

	t.Run("F decomposes non-flags enums too", func(t *testing.T) {
		// Level is not a flags enum, but an exact name still wins under F.
		got, err := Format(LevelHigh, "F")
		if err != nil {
			t.Fatal(err)
		}
		if got != "High" {
			t.Errorf("expected \"High\", got %q", got)
		}
	})
}
