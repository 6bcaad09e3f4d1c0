package contact

import (
	"fmt"
	"html"
	"strings"

	"github.com/fairwaylabs/clubsite-api/internal/i18n"
	"github.com/fairwaylabs/clubsite-api/internal/mail"
)

type copyStrings struct {
	defaultSource string
	notProvided   string
	heading       string
	nameLabel     string
	emailLabel    string
	phoneLabel    string
	timeframe     string
	topicLabel    string
	messageLabel  string
}

var contactCopy = map[i18n.Lang]copyStrings{
	i18n.Finnish: {
		defaultSource: "Verkkosivut",
		notProvided:   "Ei annettu",
		heading:       "Uusi yhteydenotto",
		nameLabel:     "Nimi",
		emailLabel:    "Sähköposti",
		phoneLabel:    "Puhelin",
		timeframe:     "Aikataulu",
		topicLabel:    "Aihe",
		messageLabel:  "Viesti",
	},
	i18n.English: {
		defaultSource: "Website",
		notProvided:   "Not provided",
		heading:       "New contact request",
		nameLabel:     "Name",
		emailLabel:    "Email",
		phoneLabel:    "Phone",
		timeframe:     "Timeframe",
		topicLabel:    "Subject",
		messageLabel:  "Message",
	},
}

func sourceLabel(source string, lang i18n.Lang) string {
	if s := strings.TrimSpace(source); s != "" {
		return s
	}
	return contactCopy[lang].defaultSource
}

// BuildContactMessage renders the notification email sent to the operator.
// The subject carries the submitter's name and the source label verbatim;
// the body is rendered twice, as HTML (newlines become <br>) and as plain
// text (newlines preserved).
func BuildContactMessage(req *SubmitContactRequest, addrs mail.Addresses) *mail.Message {
	lang := i18n.Match(req.Language)
	c := contactCopy[lang]

	name := req.FullName()
	source := sourceLabel(req.Source, lang)

	var subject string
	if lang == i18n.English {
		subject = fmt.Sprintf("Contact request: %s (%s)", name, source)
	} else {
		subject = fmt.Sprintf("Yhteydenotto: %s (%s)", name, source)
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		phone = c.notProvided
	}

	rows := []struct{ label, value string }{
		{c.nameLabel, name},
		{c.emailLabel, req.Email},
		{c.phoneLabel, phone},
	}
	if tf := strings.TrimSpace(req.Timeframe); tf != "" {
		rows = append(rows, struct{ label, value string }{c.timeframe, tf})
	}
	if topic := strings.TrimSpace(req.Subject); topic != "" {
		rows = append(rows, struct{ label, value string }{c.topicLabel, topic})
	}

	var htmlBody, textBody strings.Builder

	fmt.Fprintf(&htmlBody, "<h2>%s (%s)</h2>\n", html.EscapeString(c.heading), html.EscapeString(source))
	fmt.Fprintf(&textBody, "%s (%s)\n\n", c.heading, source)

	for _, row := range rows {
		fmt.Fprintf(&htmlBody, "<p><strong>%s:</strong> %s</p>\n", html.EscapeString(row.label), html.EscapeString(row.value))
		fmt.Fprintf(&textBody, "%s: %s\n", row.label, row.value)
	}

	fmt.Fprintf(&htmlBody, "<p><strong>%s:</strong></p>\n<p>%s</p>\n", html.EscapeString(c.messageLabel), nl2br(req.Message))
	fmt.Fprintf(&textBody, "\n%s:\n%s\n", c.messageLabel, req.Message)

	return &mail.Message{
		From:    addrs.From,
		To:      addrs.To,
		ReplyTo: req.Email,
		Subject: subject,
		HTML:    htmlBody.String(),
		Text:    textBody.String(),
	}
}

// nl2br escapes the value first so user input can never inject markup, then
// turns the surviving newlines into <br> tags.
func nl2br(value string) string {
	escaped := html.EscapeString(value)
	escaped = strings.ReplaceAll(escaped, "\r\n", "\n")
	return strings.ReplaceAll(escaped, "\n", "<br>")
}
