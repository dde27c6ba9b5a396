package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"time"

	config "github.com/stayscout/travel_api/configs"
	"github.com/stayscout/travel_api/database"
	"github.com/stayscout/travel_api/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

const receiptTemplate = `<!DOCTYPE html>
<html>
<head>
<style>
  body { font-family: Helvetica, Arial, sans-serif; margin: 40px; color: #222; }
  h1 { border-bottom: 2px solid #222; padding-bottom: 8px; }
  table { width: 100%; border-collapse: collapse; margin-top: 24px; }
  td { padding: 8px 0; }
  td.label { color: #666; width: 40%; }
  .total { font-size: 1.4em; font-weight: bold; margin-top: 24px; }
</style>
</head>
<body>
  <h1>Booking Receipt</h1>
  <table>
    <tr><td class="label">Reference</td><td>{{.Reference}}</td></tr>
    <tr><td class="label">Guest</td><td>{{.GuestName}}</td></tr>
    <tr><td class="label">Listing</td><td>{{.ListingName}}</td></tr>
    <tr><td class="label">Location</td><td>{{.Location}}</td></tr>
    <tr><td class="label">Check-in</td><td>{{.StartDate}}</td></tr>
    <tr><td class="label">Check-out</td><td>{{.EndDate}}</td></tr>
    <tr><td class="label">Issued</td><td>{{.IssuedAt}}</td></tr>
  </table>
  <p class="total">Total: {{.TotalPrice}}</p>
</body>
</html>`

// GenerateBookingReceipt renders a PDF receipt for a confirmed booking,
// uploads it and stores the URL on the booking. Failures only log: the
// confirmation itself already succeeded.
func GenerateBookingReceipt(booking models.Booking) {
	if config.Config("CLOUDINARY_URL") == "" {
		return
	}

	htmlData, err := renderReceiptHTML(booking)
	if err != nil {
		log.Printf("🔥 Failed to render receipt HTML for booking %s: %v", booking.ID, err)
		return
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		log.Printf("🔥 Failed to generate receipt PDF for booking %s: %v", booking.ID, err)
		return
	}

	uploadURL, err := uploadReceipt(pdfBytes, booking.Reference)
	if err != nil {
		log.Printf("🔥 Failed to upload receipt for booking %s: %v", booking.ID, err)
		return
	}

	if err := database.DB.Model(&models.Booking{}).
		Where("id = ?", booking.ID).
		Update("receipt_url", uploadURL).Error; err != nil {
		log.Printf("🔥 Failed to store receipt URL for booking %s: %v", booking.ID, err)
		return
	}
	log.Printf("✅ Generated receipt for booking %s.", booking.Reference)
}

func renderReceiptHTML(booking models.Booking) (string, error) {
	tmpl, err := template.New("receipt").Parse(receiptTemplate)
	if err != nil {
		return "", err
	}

	data := struct {
		Reference   string
		GuestName   string
		ListingName string
		Location    string
		StartDate   string
		EndDate     string
		TotalPrice  string
		IssuedAt    string
	}{
		Reference:   booking.Reference,
		GuestName:   booking.Guest.FullName,
		ListingName: booking.Listing.Name,
		Location:    booking.Listing.Location,
		StartDate:   booking.StartDate.Format("January 2, 2006"),
		EndDate:     booking.EndDate.Format("January 2, 2006"),
		TotalPrice:  fmt.Sprintf("%.2f", booking.TotalPrice),
		IssuedAt:    time.Now().Format("January 2, 2006"),
	}

	var rendered bytes.Buffer
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", err
	}
	return rendered.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadReceipt(fileBytes []byte, reference string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	uploadParams := uploader.UploadParams{
		PublicID:     fmt.Sprintf("receipts/%s_%s", reference, uuid.New().String()),
		Folder:       "travel_booking_receipts",
		ResourceType: "raw",
	}

	uploadResult, err := cld.Upload.Upload(ctx, bytes.NewReader(fileBytes), uploadParams)
	if err != nil {
		return "", err
	}

	return uploadResult.SecureURL, nil
}
