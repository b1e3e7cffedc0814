package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ses"
	log "github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"
)

// RawEmailSender is the part of the SES client used to deliver reports.
type RawEmailSender interface {
	SendRawEmail(input *ses.SendRawEmailInput) (*ses.SendRawEmailOutput, error)
}

type Message struct {
	To             []string
	Subject        string
	Body           string
	AttachmentName string
	Attachment     []byte
}

type Mailer struct {
	client RawEmailSender
	from   string
}

func NewMailer(client RawEmailSender, from string) *Mailer {
	return &Mailer{client: client, from: from}
}

func (m *Mailer) Send(ctx context.Context, msg Message) error {
	contextLogger := log.WithContext(ctx)
	if len(msg.To) == 0 {
		return errors.New("no email recipient")
	}

	mail := gomail.NewMessage()
	mail.SetHeader("From", m.from)
	mail.SetHeader("To", msg.To...)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)
	if len(msg.Attachment) > 0 {
		data := msg.Attachment
		mail.Attach(msg.AttachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	var emailRaw bytes.Buffer
	if _, err := mail.WriteTo(&emailRaw); err != nil {
		contextLogger.WithError(err).Error("Error when writing email data")
		return fmt.Errorf("build email: %w", err)
	}

	input := &ses.SendRawEmailInput{
		Source:     aws.String(m.from),
		RawMessage: &ses.RawMessage{Data: emailRaw.Bytes()},
	}
	input.SetDestinations(aws.StringSlice(msg.To))

	if _, err := m.client.SendRawEmail(input); err != nil {
		contextLogger.WithError(err).Error("Error when sending email")
		return fmt.Errorf("send email: %w", err)
	}
	contextLogger.WithField("recipients", len(msg.To)).Info("Report email sent")
	return nil
}

// Recipients splits a comma separated address list, dropping empty entries.
func Recipients(emailTo string) []string {
	var recipients []string
	for _, r := range strings.Split(emailTo, ",") {
		if r = strings.TrimSpace(r); r != "" {
			recipients = append(recipients, r)
		}
	}
	return recipients
}
