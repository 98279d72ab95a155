package domain

// MailMessage is a plain-text message for the site owner. Sender and
// recipient are fixed by the mailer; ReplyTo carries the visitor's address.
type MailMessage struct {
	ReplyTo string
	Subject string
	Body    string
}
