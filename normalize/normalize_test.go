package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gapbbong/survey-1cl/normalize"
)

func TestPhone(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"01012345678", "010-1234-5678"},
		{"010-1234-5678", "010-1234-5678"},
		{"010 1234 5678", "010-1234-5678"},
		{"0212345678", "021-234-5678"},
		{"010123", "010123"},
		{"0", "0"},
		{"", ""},
		{"abc", ""},
		{"010123456789", "010123456789"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalize.Phone(tt.raw), "raw=%q", tt.raw)
	}
}

func TestPhoneKeystrokeCeiling(t *testing.T) {
	// a complete number formats in place
	assert.Equal(t, "010-1234-5678", normalize.PhoneKeystroke("0101234567", "01012345678"))
	// digits-only overflow keeps the previous value
	assert.Equal(t, "010-1234-5678", normalize.PhoneKeystroke("010-1234-5678", "010123456789012"))
	// partial input stays raw digits
	assert.Equal(t, "0101234", normalize.PhoneKeystroke("010123", "010-1234"))
}

func TestHandleKeystroke(t *testing.T) {
	assert.Equal(t, "@insta_id.99", normalize.HandleKeystroke("@insta_id.99"))
	assert.Equal(t, "@instaid", normalize.HandleKeystroke("@인스타insta id!"))
	assert.Equal(t, "", normalize.HandleKeystroke("    "))
}

func TestHandleBlur(t *testing.T) {
	assert.Equal(t, "@insta", normalize.HandleBlur("insta"))
	assert.Equal(t, "@insta", normalize.HandleBlur("@insta"))
	assert.Equal(t, "@insta", normalize.HandleBlur("  insta  "))
	assert.Equal(t, "", normalize.HandleBlur("   "))
}

func TestCode4Keystroke(t *testing.T) {
	assert.Equal(t, "ENFP", normalize.Code4Keystroke("enfp"))
	assert.Equal(t, "ENFP", normalize.Code4Keystroke("e n-f p1"))
	assert.Equal(t, "", normalize.Code4Keystroke("1234"))
}

func TestContactDigits(t *testing.T) {
	// country prefix rewritten to a local leading zero
	assert.Equal(t, "010-1234-5678", normalize.ContactDigits("+82 10-1234-5678"))
	assert.Equal(t, "010-1234-5678", normalize.ContactDigits("010 1234 5678"))
	// too short to hyphenate stays digits-only
	assert.Equal(t, "0101234", normalize.ContactDigits("+82 10 1234"))
}
