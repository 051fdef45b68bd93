package notify

import (
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/portfolio-api/internal/config"
	"github.com/portfolio-api/internal/domain"
	"github.com/portfolio-api/internal/pkg/id"
)

// Profile is the site owner's identity as it appears in acknowledgement emails.
type Profile struct {
	From      string
	FromName  string
	OwnerName string
	ResumeURL string
}

func ProfileFromConfig(cfg *config.Config) Profile {
	return Profile{
		From:      cfg.EmailUser,
		FromName:  cfg.EmailFromName,
		OwnerName: cfg.OwnerName,
		ResumeURL: cfg.ResumeURL,
	}
}

var ackText = texttemplate.Must(texttemplate.New("ack.txt").Parse(
	`Hi {{.Name}},

Thank you for reaching out! I have received your message and will get back to you as soon as possible.

As requested, you can find my resume here: {{.ResumeURL}}

Best regards,
{{.OwnerName}}
`))

var ackHTML = htmltemplate.Must(htmltemplate.New("ack.html").Parse(
	`<div style="font-family: sans-serif; line-height: 1.6; color: #333; max-width: 600px;">
  <p>Hi <strong>{{.Name}}</strong>,</p>
  <p>Thank you for reaching out! I have received your message and will get back to you as soon as possible.</p>
  <p>As you requested, I've attached my resume link below for your reference:</p>
  <div style="margin: 25px 0;">
    <a href="{{.ResumeURL}}" style="background-color: #007bff; color: white; padding: 12px 20px; text-decoration: none; border-radius: 5px; font-weight: bold;">View My Resume</a>
  </div>
  <p>Best regards,<br><strong>{{.OwnerName}}</strong></p>
  <hr style="border: none; border-top: 1px solid #eee; margin-top: 20px;">
  <p style="font-size: 0.8em; color: #777;">This is an automated response from my portfolio contact form.</p>
</div>
`))

type ackData struct {
	Name      string
	OwnerName string
	ResumeURL string
}

// Acknowledgement builds the reply to m. Subject and bodies depend only on
// the submitter's name and p; the Message-ID is fresh on every call.
func Acknowledgement(p Profile, m domain.ContactMessage) (domain.EmailNotification, error) {
	data := ackData{Name: m.Name, OwnerName: p.OwnerName, ResumeURL: p.ResumeURL}

	var text, html strings.Builder
	if err := ackText.Execute(&text, data); err != nil {
		return domain.EmailNotification{}, err
	}
	if err := ackHTML.Execute(&html, data); err != nil {
		return domain.EmailNotification{}, err
	}
	return domain.EmailNotification{
		MessageID: id.MessageID(p.From),
		To:        m.Email,
		From:      p.From,
		FromName:  p.FromName,
		Subject:   "Thanks for reaching out - " + p.OwnerName,
		Text:      text.String(),
		HTML:      html.String(),
	}, nil
}
