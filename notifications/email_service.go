package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	config "github.com/stayscout/travel_api/configs"
	"github.com/stayscout/travel_api/models"
)

type BrevoService struct {
	APIKey      string
	SenderEmail string
	SenderName  string
}

var EmailClient *BrevoService

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

func InitEmailService() {
	apiKey := config.Config("BREVO_API_KEY")
	senderEmail := config.Config("EMAIL_SENDER")
	senderName := config.Config("EMAIL_SENDER_NAME")

	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		EmailClient = nil
		return
	}

	EmailClient = &BrevoService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
	}
	log.Println("✅ Email service initialized successfully.")
}

func (s *BrevoService) send(toEmail, toName, subject, htmlContent string) error {
	url := "https://api.brevo.com/v3/smtp/email"

	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.SenderName, "email": s.SenderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", url, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("content-type", "application/json")

	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("failed to send email via Brevo: %s", string(bodyBytes))
	}
	return nil
}

func SendEmail(toName, toEmail, subject, htmlContent string) {
	if EmailClient == nil {
		log.Println("Email client not initialized, skipping email send.")
		return
	}

	if err := EmailClient.send(toEmail, toName, subject, htmlContent); err != nil {
		log.Printf("🔥 Failed to send email to %s: %v", toEmail, err)
	}
}

// SendBookingConfirmed mails the guest once the host confirms. The booking
// must have Guest and Listing preloaded.
func SendBookingConfirmed(booking models.Booking) {
	subject := fmt.Sprintf("Booking %s Confirmed!", booking.Reference)
	body := fmt.Sprintf(
		"<h1>Booking Confirmed</h1><p>Your stay at <b>%s</b> (%s) from %s to %s has been confirmed by the host.</p><p>Booking reference: <b>%s</b></p>",
		booking.Listing.Name,
		booking.Listing.Location,
		booking.StartDate.Format("Jan 2, 2006"),
		booking.EndDate.Format("Jan 2, 2006"),
		booking.Reference,
	)
	SendEmail(booking.Guest.FullName, booking.Guest.Email, subject, body)
}

// SendBookingCanceled mails the guest when a booking is canceled.
func SendBookingCanceled(booking models.Booking) {
	subject := fmt.Sprintf("Booking %s Canceled", booking.Reference)
	body := fmt.Sprintf(
		"<h1>Booking Canceled</h1><p>Your booking at <b>%s</b> from %s to %s has been canceled.</p>",
		booking.Listing.Name,
		booking.StartDate.Format("Jan 2, 2006"),
		booking.EndDate.Format("Jan 2, 2006"),
	)
	SendEmail(booking.Guest.FullName, booking.Guest.Email, subject, body)
}
