package utils

import (
	"bytes"
	"html/template"
	"log"
	"os"
	"strconv"

	"gopkg.in/gomail.v2"
)

// ReservationEmailData feeds the reservation status email templates.
type ReservationEmailData struct {
	ClientName string
	Code       string
	RoomNumber string
	Checkin    string
	Checkout   string
	Nights     int
	TotalPrice float64
	Reason     string
}

const confirmationTemplate = `
<h2>Your reservation is confirmed</h2>
<p>Hello {{.ClientName}},</p>
<p>Reservation <strong>{{.Code}}</strong> for room {{.RoomNumber}} is confirmed.</p>
<ul>
  <li>Check-in: {{.Checkin}}</li>
  <li>Check-out: {{.Checkout}}</li>
  <li>Nights: {{.Nights}}</li>
  <li>Total: R$ {{printf "%.2f" .TotalPrice}}</li>
</ul>
<p>Present the code above at the front desk on arrival.</p>
`

const cancellationTemplate = `
<h2>Your reservation was cancelled</h2>
<p>Hello {{.ClientName}},</p>
<p>Reservation <strong>{{.Code}}</strong> for room {{.RoomNumber}} has been cancelled.</p>
{{if .Reason}}<p>Reason: {{.Reason}}</p>{{end}}
<p>If this was not requested by you, contact the front desk.</p>
`

// SendReservationConfirmationEmail sends the confirmation mail (async).
func SendReservationConfirmationEmail(to string, data ReservationEmailData) {
	sendReservationEmail(to, "Reservation confirmed #"+data.Code, confirmationTemplate, data)
}

// SendReservationCancellationEmail sends the cancellation mail (async).
func SendReservationCancellationEmail(to string, data ReservationEmailData) {
	sendReservationEmail(to, "Reservation cancelled #"+data.Code, cancellationTemplate, data)
}

func sendReservationEmail(to, subject, tmplBody string, data ReservationEmailData) {
	go func() { // async so the response is not delayed
		host := os.Getenv("SMTP_HOST")
		if host == "" || to == "" {
			return
		}

		tmpl, err := template.New("reservation_email").Parse(tmplBody)
		if err != nil {
			log.Printf("email template error: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("email render error: %v", err)
			return
		}

		portStr := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		port, _ := strconv.Atoi(portStr)

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", subject)
		m.SetBody("text/html", body.String())

		d := gomail.NewDialer(host, port, username, password)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("email send error: %v", err)
		}
	}()
}
