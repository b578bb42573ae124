package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sejenak-backend/models"
)

func TestShouldNotify_DefaultsToAllowed(t *testing.T) {
	customer := models.Customer{}
	assert.True(t, ShouldNotify(customer, "promotions"), "no preference recorded means contactable")
}

func TestShouldNotify_PreferencesSuppress(t *testing.T) {
	customer := models.Customer{
		Preferences: models.JSONB{"promotions": false},
	}
	assert.False(t, ShouldNotify(customer, "promotions"))
}

func TestShouldNotify_SettingsOverridePreferences(t *testing.T) {
	// notification_settings wins per key, in both directions
	optedBackIn := models.Customer{
		Preferences:          models.JSONB{"promotions": false},
		NotificationSettings: models.JSONB{"promotions": true},
	}
	assert.True(t, ShouldNotify(optedBackIn, "promotions"))

	optedOut := models.Customer{
		Preferences:          models.JSONB{"promotions": true},
		NotificationSettings: models.JSONB{"promotions": false},
	}
	assert.False(t, ShouldNotify(optedOut, "promotions"))
}

func TestShouldNotify_StringFalseSuppresses(t *testing.T) {
	// older clients stored booleans as strings
	customer := models.Customer{
		NotificationSettings: models.JSONB{"promotions": "false"},
	}
	assert.False(t, ShouldNotify(customer, "promotions"))

	customer.NotificationSettings["promotions"] = "true"
	assert.True(t, ShouldNotify(customer, "promotions"))
}

func TestShouldNotify_UnrecognizedValuesPermit(t *testing.T) {
	customer := models.Customer{
		NotificationSettings: models.JSONB{"promotions": float64(0)},
	}
	assert.True(t, ShouldNotify(customer, "promotions"), "only explicit false suppresses")
}

func TestShouldNotify_KeysAreIndependent(t *testing.T) {
	customer := models.Customer{
		NotificationSettings: models.JSONB{"reminders": false},
	}
	assert.True(t, ShouldNotify(customer, "promotions"))
	assert.False(t, ShouldNotify(customer, "reminders"))
}

func TestBlastStatus(t *testing.T) {
	assert.Equal(t, "sent", blastStatus(0, 0), "empty audience is a clean send")
	assert.Equal(t, "sent", blastStatus(10, 10))
	assert.Equal(t, "partial", blastStatus(4, 10))
	assert.Equal(t, "failed", blastStatus(0, 10))
}
