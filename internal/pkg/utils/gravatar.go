package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

const gravatarBase = "https://www.gravatar.com/avatar"

// GetGravatarURL builds the avatar URL for an email address. Gravatar keys
// on the md5 of the trimmed, lowercased address; addresses without an
// account fall back to the neutral "mp" placeholder image.
func GetGravatarURL(email string, size int) string {
	if size <= 0 {
		size = 200
	}

	normalized := strings.ToLower(strings.TrimSpace(email))

	return fmt.Sprintf("%s/%x?s=%d&d=mp", gravatarBase, md5.Sum([]byte(normalized)), size)
}
