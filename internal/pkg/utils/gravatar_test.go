package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetGravatarURLNormalizesEmail(t *testing.T) {
	// Same address in different casing and padding hashes identically
	assert.Equal(t,
		GetGravatarURL("jane@example.com", 120),
		GetGravatarURL("  Jane@Example.COM ", 120),
	)
}

func TestGetGravatarURLAppliesSize(t *testing.T) {
	url := GetGravatarURL("jane@example.com", 120)
	assert.Contains(t, url, "s=120")
	assert.Contains(t, url, "d=mp")
}

func TestGetGravatarURLDefaultsSize(t *testing.T) {
	assert.Contains(t, GetGravatarURL("jane@example.com", 0), "s=200")
}
