package dto

// ProfileUpdateRequest changes display fields; a password change additionally
// requires the current password.
type ProfileUpdateRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	CurrentPassword string `json:"current_password,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
}

// DeleteAccountRequest confirms account deletion with the user's password.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}
