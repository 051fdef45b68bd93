package domain

// EmailNotification is one outbound acknowledgement email. It is never persisted.
type EmailNotification struct {
	MessageID string
	To        string
	From      string
	FromName  string
	Subject   string
	Text      string
	HTML      string
}
