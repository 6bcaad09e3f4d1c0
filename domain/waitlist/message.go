package waitlist

import (
	"fmt"
	"html"

	"github.com/fairwaylabs/clubsite-api/internal/mail"
)

// BuildOperatorNotification tells the operator a new address joined the
// waitlist. Reply-to points at the signup so the operator can answer directly.
func BuildOperatorNotification(email string, addrs mail.Addresses) *mail.Message {
	escaped := html.EscapeString(email)

	return &mail.Message{
		From:    addrs.From,
		To:      addrs.To,
		ReplyTo: email,
		Subject: fmt.Sprintf("Uusi liittyminen jonotuslistalle: %s", email),
		HTML:    fmt.Sprintf("<p>Uusi liittyminen jonotuslistalle:</p>\n<p><strong>%s</strong></p>\n", escaped),
		Text:    fmt.Sprintf("Uusi liittyminen jonotuslistalle:\n%s\n", email),
	}
}

// BuildWelcomeMessage is the user-facing confirmation. Finnish first, English
// below it in the same message, matching the site's bilingual copy.
func BuildWelcomeMessage(email string, addrs mail.Addresses) *mail.Message {
	const textBody = `Kiitos liittymisestäsi jonotuslistalle!

Olemme sinuun yhteydessä heti, kun palvelu avautuu seurallesi.

--

Thank you for joining the waitlist!

We will be in touch as soon as the service opens for your club.
`

	const htmlBody = `<h2>Kiitos liittymisestäsi jonotuslistalle!</h2>
<p>Olemme sinuun yhteydessä heti, kun palvelu avautuu seurallesi.</p>
<hr>
<h2>Thank you for joining the waitlist!</h2>
<p>We will be in touch as soon as the service opens for your club.</p>
`

	return &mail.Message{
		From:    addrs.From,
		To:      email,
		Subject: "Tervetuloa jonotuslistalle | Welcome to the waitlist",
		HTML:    htmlBody,
		Text:    textBody,
	}
}
