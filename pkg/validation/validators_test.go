package validation

import (
	"strings"
	"testing"
	"testing/quick"
	"unicode"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		address string
		want    bool
	}{
		{"a@x.com", true},
		{"first.last+tag@sub.example.co.uk", true},
		{"a@b.c", true},
		{"a@b.c.", false},
		{"a@.c", false},
		{"@x.com", false},
		{"a@xcom", false},
		{"a@@x.com", false},
		{"a@b@x.com", false},
		{"a @x.com", false},
		{"a@x.com ", false},
		{"a@x.\tcom", false},
		{"a@x.com\v", false},
		{"a\u00a0b@x.com", false},
		{"a@x.com\u2003", false},
		{"a@x.\u3000com", false},
		{"a@x.com\u2028", false},
		{"not-an-email", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.address, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.address))
		})
	}
}

// referenceShape restates the accepted shape without a regex.
func referenceShape(s string) bool {
	if strings.IndexFunc(s, unicode.IsSpace) >= 0 || strings.Count(s, "@") != 1 {
		return false
	}
	local, domain, _ := strings.Cut(s, "@")
	if local == "" {
		return false
	}
	// Some "." inside domain must have at least one character on each side
	for i := 1; i < len(domain)-1; i++ {
		if domain[i] == '.' {
			return true
		}
	}
	return false
}

func TestIsValidEmailMatchesReferenceShape(t *testing.T) {
	alphabet := []rune{'a', 'b', '@', '.', ' ', '\t', '\v', '\u00a0', '\u3000', '1', '-'}
	f := func(picks []uint8) bool {
		var sb strings.Builder
		for _, p := range picks {
			sb.WriteRune(alphabet[int(p)%len(alphabet)])
		}
		s := sb.String()
		return IsValidEmail(s) == referenceShape(s)
	}
	assert.NoError(t, quick.Check(f, &quick.Config{MaxCount: 5000}))
}

func TestRelayEmailTag(t *testing.T) {
	v := New()

	type req struct {
		Email string `validate:"required,relay_email"`
	}

	assert.NoError(t, v.Struct(req{Email: "a@x.com"}))

	err := v.Struct(req{Email: "not-an-email"})
	if assert.Error(t, err) {
		fields := FieldErrors(err)
		assert.Equal(t, []FieldError{{Field: "email", Tag: "relay_email"}}, fields)
		assert.Equal(t, []string{"Email: is not a valid email address"}, FormatValidationErrors(err))
	}

	err = v.Struct(req{})
	if assert.Error(t, err) {
		assert.Equal(t, "required", FieldErrors(err)[0].Tag)
	}
}
