package utils

import (
	"regexp"
)

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,64}$`)

func ValidateUsername(username string) bool {
	return usernameRe.MatchString(username)
}
