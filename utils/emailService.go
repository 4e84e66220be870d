package utils

import (
	"encoding/base64"
	"fmt"

	"certifyme/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Attachment is a file delivered alongside an email.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is a single outgoing notification.
type Message struct {
	ToName      string
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// EmailSender delivers notification messages. Tests swap in a recorder.
type EmailSender interface {
	Send(msg Message) error
}

// Mail is the process-wide sender, constructed once at startup from config.
var Mail EmailSender

// InitMailer wires the SendGrid-backed sender from loaded configuration.
func InitMailer() {
	Mail = NewSendGridMailer(config.AppConfig)
}

// SendGridMailer sends mail through the SendGrid v3 API.
type SendGridMailer struct {
	apiKey     string
	sender     string
	senderName string
}

func NewSendGridMailer(cfg *config.Config) *SendGridMailer {
	return &SendGridMailer{
		apiKey:     cfg.SendGridKey,
		sender:     cfg.EmailSender,
		senderName: "CertifyMe",
	}
}

func (m *SendGridMailer) Send(msg Message) error {
	v3 := mail.NewV3Mail()
	v3.SetFrom(mail.NewEmail(m.senderName, m.sender))
	v3.Subject = msg.Subject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(msg.ToName, msg.To))
	v3.AddPersonalizations(p)
	v3.AddContent(mail.NewContent("text/html", msg.HTML))

	for _, a := range msg.Attachments {
		att := mail.NewAttachment()
		att.SetFilename(a.Filename)
		att.SetType(a.ContentType)
		att.SetContent(base64.StdEncoding.EncodeToString(a.Content))
		att.SetDisposition("attachment")
		v3.AddAttachment(att)
	}

	client := sendgrid.NewSendClient(m.apiKey)
	resp, err := client.Send(v3)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid rejected message: status %d", resp.StatusCode)
	}
	return nil
}

// HTML wrapper shared by every notification
func getEmailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #003366; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1A1A2E; line-height: 1.6; }
			.content h2 { color: #003366; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #E8F0FE; padding: 15px; border-radius: 4px; border-left: 4px solid #003366; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>CERTIFYME</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message from CertifyMe. Certificates can be verified online at any time.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendCertificateEmail notifies a student that their certificate was issued,
// attaching the rendered PDF. When accountCreated is set the body also carries
// the login details for the auto-provisioned account.
func SendCertificateEmail(name, email, certificateID string, pdf []byte, accountCreated bool) error {
	if Mail == nil {
		return fmt.Errorf("mailer not initialized")
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Congratulations! Your certificate <strong>%s</strong> has been issued and is attached to this email.</p>
		<p>You can verify it online at any time using the QR code printed on the certificate.</p>
	`, name, certificateID)

	if accountCreated {
		body += fmt.Sprintf(`
		<div class="info-box">
			A student account has been created for you.<br>
			<strong>Login:</strong> %s<br>
			<strong>Password:</strong> %s<br>
			Please log in and change your password.
		</div>
	`, email, config.AppConfig.DefaultStudentPassword)
	}

	return Mail.Send(Message{
		ToName:  name,
		To:      email,
		Subject: "Your Certificate Has Been Issued",
		HTML:    getEmailTemplate("Certificate of Completion", body),
		Attachments: []Attachment{{
			Filename:    certificateID + ".pdf",
			ContentType: "application/pdf",
			Content:     pdf,
		}},
	})
}

// SendLORApprovedEmail delivers an approved letter of recommendation.
func SendLORApprovedEmail(name, email, notes, filename string, pdf []byte) error {
	if Mail == nil {
		return fmt.Errorf("mailer not initialized")
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your request for a Letter of Recommendation has been <strong>approved</strong>.</p>
		%s
		<p>Please find the letter attached to this email.</p>
	`, name, notesBlock(notes))

	return Mail.Send(Message{
		ToName:  name,
		To:      email,
		Subject: "Your Letter of Recommendation Request has been Approved",
		HTML:    getEmailTemplate("LOR Request Approved", body),
		Attachments: []Attachment{{
			Filename:    filename,
			ContentType: "application/pdf",
			Content:     pdf,
		}},
	})
}

// SendLORRejectedEmail notifies a student that their request was rejected.
func SendLORRejectedEmail(name, email, notes string) error {
	if Mail == nil {
		return fmt.Errorf("mailer not initialized")
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>We regret to inform you that your request for a Letter of Recommendation has been rejected.</p>
		%s
	`, name, notesBlock(notes))

	return Mail.Send(Message{
		ToName:  name,
		To:      email,
		Subject: "Update on your Letter of Recommendation Request",
		HTML:    getEmailTemplate("LOR Request Update", body),
	})
}

// SendDirectLOREmail delivers a letter issued without a prior request.
func SendDirectLOREmail(name, email, notes, filename string, pdf []byte) error {
	if Mail == nil {
		return fmt.Errorf("mailer not initialized")
	}

	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Please find a Letter of Recommendation issued for you attached to this email.</p>
		%s
	`, name, notesBlock(notes))

	return Mail.Send(Message{
		ToName:  name,
		To:      email,
		Subject: "Letter of Recommendation Issued",
		HTML:    getEmailTemplate("Letter of Recommendation", body),
		Attachments: []Attachment{{
			Filename:    filename,
			ContentType: "application/pdf",
			Content:     pdf,
		}},
	})
}

func notesBlock(notes string) string {
	if notes == "" {
		return ""
	}
	return fmt.Sprintf(`<div class="info-box"><strong>Notes:</strong> %s</div>`, notes)
}
