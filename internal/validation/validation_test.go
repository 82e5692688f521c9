package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateName("Alice"))
	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName(strings.Repeat("a", 101)))
}

func TestValidateUsername(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateUsername("alice"))
	assert.NoError(t, ValidateUsername("Alice_99"))
	assert.Error(t, ValidateUsername(""))
	assert.Error(t, ValidateUsername("has space"))
	assert.Error(t, ValidateUsername("tab\tname"))
	assert.Error(t, ValidateUsername(strings.Repeat("a", 31)))
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	// No strength policy, only presence.
	assert.NoError(t, ValidatePassword("pw1"))
	assert.NoError(t, ValidatePassword("a"))
	assert.Error(t, ValidatePassword(""))
}

func TestValidateBio(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateBio(""))
	assert.NoError(t, ValidateBio("I draw logos."))
	assert.Error(t, ValidateBio(strings.Repeat("a", 1001)))
}

func TestValidateCaption(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateCaption("my new logo"))
	assert.Error(t, ValidateCaption(""))
	assert.Error(t, ValidateCaption(strings.Repeat("a", 501)))
}

func TestValidateComment(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateComment("nice work"))
	assert.Error(t, ValidateComment(""))
	assert.Error(t, ValidateComment("   "))
	assert.Error(t, ValidateComment(strings.Repeat("a", 501)))
}
