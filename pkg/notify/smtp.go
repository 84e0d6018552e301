package notify

import (
	"time"

	mail "github.com/wneessen/go-mail"

	"github.com/tenantops/dugrow/pkg/errors"
	"github.com/tenantops/dugrow/pkg/types"
)

const dialTimeout = 30 * time.Second

// SMTPOptions configures the SMTP sender. The zero-ish defaults come
// from configuration; every field can be overridden through the
// SMTP_* environment variables.
type SMTPOptions struct {
	Host     string
	Port     int
	Username string
	Password string
	StartTLS bool
}

// SMTP delivers reports through an SMTP server, using STARTTLS by
// default or implicit TLS when STARTTLS is disabled. Authentication
// is only attempted when a username is configured.
type SMTP struct {
	opts SMTPOptions
}

// NewSMTP creates an SMTP notifier.
func NewSMTP(opts SMTPOptions) *SMTP {
	return &SMTP{opts: opts}
}

// Send implements types.Notifier. Any failure is wrapped as
// DELIVERY_FAILED with the transport's diagnostic; the caller decides
// that this is non-fatal for the run.
func (s *SMTP) Send(msg types.Message) error {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return errors.Wrapf(err, errors.ErrDeliveryFailed, "invalid from address %q", msg.From)
	}
	if err := m.To(msg.To); err != nil {
		return errors.Wrapf(err, errors.ErrDeliveryFailed, "invalid recipient %q", msg.To)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextPlain, msg.Body)

	clientOpts := []mail.Option{
		mail.WithPort(s.opts.Port),
		mail.WithTimeout(dialTimeout),
	}
	if s.opts.StartTLS {
		clientOpts = append(clientOpts, mail.WithTLSPolicy(mail.TLSMandatory))
	} else {
		clientOpts = append(clientOpts, mail.WithSSL())
	}
	if s.opts.Username != "" {
		clientOpts = append(clientOpts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.opts.Username),
			mail.WithPassword(s.opts.Password),
		)
	}

	client, err := mail.NewClient(s.opts.Host, clientOpts...)
	if err != nil {
		return errors.Wrapf(err, errors.ErrDeliveryFailed, "cannot create SMTP client for %s", s.opts.Host)
	}
	if err := client.DialAndSend(m); err != nil {
		return errors.Wrapf(err, errors.ErrDeliveryFailed, "SMTP delivery to %s failed", msg.To)
	}
	return nil
}
