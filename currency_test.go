package datatype

import (
	"errors"
	"testing"
)

func TestParseCurr(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code string
			want Currency
		}{
			{"EUR", EUR},
			{"USD", USD},
			{"GBP", GBP},
			{"CHF", CHF},
			{"JPY", JPY},
			{"XXX", XXX},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.code)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.code, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %q, want %q", tt.code, got, tt.want)
			}
			if got.Code() != tt.code {
				t.Errorf("ParseCurr(%q).Code() = %q", tt.code, got.Code())
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "EU", "EURO", "eur", "Eur", "E1R", "ABC", "€"}
		for _, code := range tests {
			_, err := ParseCurr(code)
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("ParseCurr(%q) returned %v, want %v", code, err, ErrMalformedInput)
			}
		}
	})
}

func TestCurrency_ZeroValue(t *testing.T) {
	var c Currency
	if got := c.String(); got != "XXX" {
		t.Errorf("Currency{}.String() = %q, want \"XXX\"", got)
	}
}

func TestCurrency_Text(t *testing.T) {
	b, err := EUR.MarshalText()
	if err != nil {
		t.Fatalf("EUR.MarshalText() failed: %v", err)
	}
	if string(b) != "EUR" {
		t.Errorf("EUR.MarshalText() = %q, want \"EUR\"", b)
	}
	var c Currency
	if err := c.UnmarshalText([]byte("CHF")); err != nil {
		t.Fatalf("UnmarshalText(CHF) failed: %v", err)
	}
	if c != CHF {
		t.Errorf("UnmarshalText(CHF) = %q, want %q", c, CHF)
	}
	if err := c.UnmarshalText([]byte("chf")); !errors.Is(err, ErrMalformedInput) {
		t.Errorf("UnmarshalText(chf) returned %v, want %v", err, ErrMalformedInput)
	}
	if c != CHF {
		t.Errorf("failed UnmarshalText changed currency to %q", c)
	}
}

func TestMustParseCurr(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("MustParseCurr(\"eur\") did not panic")
		}
	}()
	MustParseCurr("eur")
}
