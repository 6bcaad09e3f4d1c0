package contact

import "strings"

// SubmitContactRequest accepts both payload shapes the marketing site sends:
// the main contact form posts firstName/lastName/message, the pricing page
// variant posts a combined name plus subject/timeframe. Field names are
// camelCase on the wire because that is what the site's forms produce.
// Validation stops at non-empty required fields. The email address is not
// format-checked here; the browser's type=email hint is the only syntax gate,
// and the provider rejects anything it cannot deliver to.
type SubmitContactRequest struct {
	FirstName string `json:"firstName" binding:"required_without=Name"`
	LastName  string `json:"lastName"`
	Name      string `json:"name" binding:"required_without=FirstName"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone"`
	Timeframe string `json:"timeframe"`
	Subject   string `json:"subject"`
	Message   string `json:"message" binding:"required"`
	Source    string `json:"source"`
	Language  string `json:"language"`
}

// FullName prefers the combined name field and falls back to first + last.
func (r *SubmitContactRequest) FullName() string {
	if name := strings.TrimSpace(r.Name); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
}

type SubmitContactResponse struct {
	Success   bool   `json:"success"`
	MessageID string `json:"id,omitempty"`
}
