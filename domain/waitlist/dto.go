package waitlist

// The email address is required but not format-checked server-side; the
// browser's type=email hint is the only syntax gate.
type JoinWaitlistRequest struct {
	Email string `json:"email" binding:"required"`
}

type JoinWaitlistResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
