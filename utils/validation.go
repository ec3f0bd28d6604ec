package utils

import (
	"github.com/storeapp/storeapi/models"
)

// ValidateUsername checks if the username meets the requirements. Any name of
// at least 3 characters is accepted.
func ValidateUsername(username string) (bool, string) {
	if username == "" {
		return false, "Username Required"
	}
	if len(username) < 3 {
		return false, "Username length should 3 char at least"
	}
	return true, ""
}

// ValidatePassword checks if the password is acceptable
func ValidatePassword(password string) (bool, string) {
	if password == "" {
		return false, "Password Required"
	}
	return true, ""
}

// ValidateRegisterRole checks the role requested at registration. Only USER
// and PROVIDER can self-register; ADMIN accounts are provisioned out of band.
func ValidateRegisterRole(role string) (bool, string) {
	if role == "" {
		return false, "Role Required"
	}
	if role != models.RoleUser && role != models.RoleProvider {
		return false, "Invalid Role"
	}
	return true, ""
}
