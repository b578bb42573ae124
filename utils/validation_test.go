package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"+628123456789", "08123456789", "+62 812-3456-789", "(62) 8123456789"}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{"", "abc", "+0123", "1"}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestValidateEmail(t *testing.T) {
	valid := []string{"ayu@example.com", "dewi.putri@spa.co.id"}
	for _, email := range valid {
		assert.True(t, ValidateEmail(email), email)
	}

	invalid := []string{"", "not-an-email", "a@b", "two@@example.com", "spaces in@example.com"}
	for _, email := range invalid {
		assert.False(t, ValidateEmail(email), email)
	}
}
