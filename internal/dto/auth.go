package dto

import (
	"errors"
	"strings"
)

// LoginForm is the login draft state bound from the login page.
type LoginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

// Validate checks the login rules. Both fields must be non-empty
// after trimming.
func (f *LoginForm) Validate() error {
	if strings.TrimSpace(f.Username) == "" || strings.TrimSpace(f.Password) == "" {
		return errors.New("Username and Password are required.")
	}
	return nil
}

// RegisterForm is the registration draft state.
type RegisterForm struct {
	Username        string `form:"username"`
	Email           string `form:"email"`
	Password        string `form:"password"`
	ConfirmPassword string `form:"confirmPassword"`
	IsAdmin         bool   `form:"isAdmin"`
}

// Validate checks the registration rules in order and returns the
// first violated one. The order is part of the contract: password
// match, username length, password length, email presence.
func (f *RegisterForm) Validate() error {
	if f.Password != f.ConfirmPassword {
		return errors.New("Passwords do not match.")
	}
	if len(f.Username) < 3 {
		return errors.New("Username must be at least 3 characters.")
	}
	if len(f.Password) < 8 {
		return errors.New("Password must be at least 8 characters.")
	}
	if f.Email == "" {
		return errors.New("Email is required.")
	}
	return nil
}
