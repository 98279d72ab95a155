package view

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// AvatarSize is the pixel size of commenter avatars.
const AvatarSize = 60

// Gravatar returns the avatar URL for email, rated g with the retro
// fallback image.
func Gravatar(email string, size int) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=retro&r=g", sum, size)
}
