package service

import (
	"context"
	"fmt"

	"gigledger-backend/internal/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &sendGridEmailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *sendGridEmailService) SendPaymentReceipt(ctx context.Context, toEmail, toName, jobDescription string, amountCents int64) error {
	logger.ExternalServiceCall("sendgrid", "SendPaymentReceipt", "to", toEmail)

	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, toEmail)

	subject := "Payment received"
	body := fmt.Sprintf(
		"Hello %s,\n\nYou have been paid $%.2f for the job: %s.\n\nThe amount has been credited to your balance.",
		toName, float64(amountCents)/100, jobDescription,
	)
	message := mail.NewSingleEmail(from, subject, recipient, body, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "SendPaymentReceipt", err)
		return fmt.Errorf("failed to send receipt: %w", err)
	}
	if response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d", response.StatusCode)
		logger.ExternalServiceResult("sendgrid", "SendPaymentReceipt", err)
		return err
	}

	logger.ExternalServiceResult("sendgrid", "SendPaymentReceipt", nil, "to", toEmail)
	return nil
}
