package sendgrid

import (
	"context"
	"errors"
	"fmt"

	sg "github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridImpl struct {
	config Config
	client *sg.Client
}

func newClient(cfg Config) (*sendGridImpl, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &sendGridImpl{
		config: cfg,
		client: sg.NewSendClient(cfg.APIKey),
	}, nil
}

func (s *sendGridImpl) Send(ctx context.Context, req *SendRequest) error {
	if req == nil || req.To == "" {
		return errors.New("recipient is required")
	}

	from := mail.NewEmail(s.config.FromName, s.config.FromEmail)
	to := mail.NewEmail("", req.To)

	var message *mail.SGMailV3
	if req.HTML {
		message = mail.NewSingleEmail(from, req.Subject, to, "", req.Body)
	} else {
		message = mail.NewSingleEmail(from, req.Subject, to, req.Body, "")
	}

	resp, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("sendgrid returned status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}
