// Package validation holds input validation rules shared by services and handlers.
package validation

import (
	"errors"
	"strings"
	"unicode"
)

const (
	maxNameLen     = 100
	maxUsernameLen = 30
	maxCaptionLen  = 500
	maxCommentLen  = 500
	maxBioLen      = 1000
)

// ValidateName checks a display name at registration.
func ValidateName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) > maxNameLen {
		return errors.New("name too long (max 100 characters)")
	}
	return nil
}

// ValidateUsername checks a username at registration. Anything printable and
// space-free is allowed; uniqueness is the repository's concern.
func ValidateUsername(username string) error {
	if username == "" {
		return errors.New("username is required")
	}
	if len(username) > maxUsernameLen {
		return errors.New("username too long (max 30 characters)")
	}
	for _, r := range username {
		if unicode.IsSpace(r) {
			return errors.New("username must not contain spaces")
		}
	}
	return nil
}

// ValidatePassword checks a password at registration. Only presence is
// required; there is no strength policy.
func ValidatePassword(password string) error {
	if password == "" {
		return errors.New("password is required")
	}
	return nil
}

// ValidateBio checks the optional bio field.
func ValidateBio(bio string) error {
	if len(bio) > maxBioLen {
		return errors.New("bio too long (max 1000 characters)")
	}
	return nil
}

// ValidateCaption checks a post caption at upload.
func ValidateCaption(caption string) error {
	if caption == "" {
		return errors.New("caption is required")
	}
	if len(caption) > maxCaptionLen {
		return errors.New("caption too long (max 500 characters)")
	}
	return nil
}

// ValidateComment checks comment text after trimming.
func ValidateComment(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.New("comment text is required")
	}
	if len(text) > maxCommentLen {
		return errors.New("comment too long (max 500 characters)")
	}
	return nil
}
