package notification

import (
	"context"
	"fmt"
	"time"

	"boilertech/models"
	"boilertech/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"go.uber.org/zap"
)

// SESAPI is the slice of the SES client used here, kept as an interface so
// tests can substitute a fake.
type SESAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// EmailService delivers notifications over Amazon SES.
type EmailService struct {
	Client SESAPI
	From   string
	Now    func() time.Time
}

// NewEmailService builds an SES-backed notifier using the default AWS
// credential chain.
func NewEmailService(ctx context.Context, region, from string) (*EmailService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &EmailService{Client: ses.NewFromConfig(cfg), From: from}, nil
}

func (s *EmailService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *EmailService) Notify(ctx context.Context, recipient, subject, body string) Result {
	result := Result{
		To:        recipient,
		Subject:   subject,
		Timestamp: s.now(),
	}

	out, err := s.Client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{recipient},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
		Source: aws.String(s.From),
	})
	if err != nil {
		utils.GetLogger().Warn("email delivery failed",
			zap.String("recipient", recipient),
			zap.String("subject", subject),
			zap.Error(err))
		result.Status = StatusFailed
		result.Error = err.Error()
		return result
	}

	result.Success = true
	result.Status = StatusSent
	if out.MessageId != nil {
		result.MessageID = *out.MessageId
	}
	utils.GetLogger().Info("email sent",
		zap.String("recipient", recipient),
		zap.String("subject", subject),
		zap.String("messageId", result.MessageID))
	return result
}

func (s *EmailService) SendBookingConfirmation(ctx context.Context, customer *models.Customer, booking *models.Booking, technician *models.Technician) Result {
	subject := "Your boiler service is booked"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour %s is confirmed for %s at %s.\nYour engineer is %s (rating %.1f).\n\nBooking reference: %s\n\nBoilerTech Services",
		customer.Name, serviceLabel(booking.ServiceType), booking.ServiceDate, booking.ServiceTime,
		technician.Name, technician.Rating, booking.ID)
	return s.Notify(ctx, customer.Email, subject, body)
}

func (s *EmailService) SendMaintenanceReminder(ctx context.Context, customer *models.Customer, serviceDate string) Result {
	subject := "Upcoming boiler service reminder"
	body := fmt.Sprintf(
		"Hello %s,\n\nThis is a reminder that your boiler service is scheduled for %s.\nPlease make sure the boiler is accessible on the day.\n\nBoilerTech Services",
		customer.Name, serviceDate)
	return s.Notify(ctx, customer.Email, subject, body)
}

func (s *EmailService) SendEmergencyNotification(ctx context.Context, customer *models.Customer, technician *models.Technician, estimatedArrival string) Result {
	subject := "Emergency engineer dispatched"
	body := fmt.Sprintf(
		"Hello %s,\n\nAn emergency engineer has been assigned to your callout.\nEngineer: %s (%s)\nEstimated arrival: %s\n\nIf the situation worsens, switch the boiler off at the mains.\n\nBoilerTech Services",
		customer.Name, technician.Name, technician.Phone, estimatedArrival)
	return s.Notify(ctx, customer.Email, subject, body)
}

func serviceLabel(serviceType string) string {
	switch serviceType {
	case models.ServiceAnnual:
		return "annual service"
	case models.ServiceComprehensive:
		return "comprehensive service"
	case models.ServiceEmergency:
		return "emergency callout"
	case models.ServiceRepair:
		return "repair visit"
	case models.ServiceInstallation:
		return "installation"
	case models.ServiceInspection:
		return "inspection"
	}
	return "service appointment"
}
