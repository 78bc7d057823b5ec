package notifications

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/Nakulpanchal-gamer/KubereshwarBackend/domain"
)

var otpTemplate = template.Must(template.New("otp").Parse(`<div style="font:14px/1.6 -apple-system,Segoe UI,Roboto,Arial;color:#111">
  <h2 style="margin:0 0 12px;font-size:18px;">Admin login code</h2>
  <p style="font-size:28px;letter-spacing:6px;font-weight:700;margin:12px 0;">{{.Code}}</p>
  <p style="margin:0;color:#6b7280;">This code is valid for {{.TTLMinutes}} minutes and can be used once.</p>
</div>`))

var enquiryTemplate = template.Must(template.New("enquiry").Parse(`<div style="font:14px/1.6 -apple-system,Segoe UI,Roboto,Arial;color:#111">
  <h2 style="margin:0 0 12px;font-size:18px;">New enquiry received</h2>

  <table role="presentation" cellspacing="0" cellpadding="0"
         style="border-collapse:collapse;width:100%;max-width:720px;border:1px solid #eee;border-radius:8px;overflow:hidden">
    <tbody>
      {{range .Rows}}<tr>
        <td style="background:#fafafa;border-bottom:1px solid #eee;padding:10px 12px;width:180px;font-weight:600;">{{.Key}}</td>
        <td style="border-bottom:1px solid #eee;padding:10px 12px;">{{.Value}}</td>
      </tr>
      {{end}}
    </tbody>
  </table>

  <p style="margin:18px 0 6px;font-weight:600;">Message</p>
  <pre style="white-space:pre-wrap;background:#f6f7f8;padding:12px;border-radius:6px;border:1px solid #eee;margin:0;">{{.Message}}</pre>

  <p style="margin:18px 0 0;font-size:12px;color:#6b7280;">
    Reply: <a href="mailto:{{.FromEmail}}">{{.FromEmail}}</a>{{if .Phone}} · Call: <a href="tel:{{.Phone}}">{{.Phone}}</a>{{end}}
  </p>
</div>`))

type templateRow struct {
	Key   string
	Value string
}

type otpTemplateData struct {
	Code       string
	TTLMinutes int
}

type enquiryTemplateData struct {
	Rows      []templateRow
	Message   string
	FromEmail string
	Phone     string
}

func renderOTPEmail(code string, ttlMinutes int) (string, error) {
	var b strings.Builder
	if err := otpTemplate.Execute(&b, otpTemplateData{Code: code, TTLMinutes: ttlMinutes}); err != nil {
		return "", err
	}
	return b.String(), nil
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}

func productSummary(n domain.EnquiryNotification) string {
	switch {
	case n.AllProductsOfCategory:
		return "Entire category"
	case len(n.ProductNames) > 0:
		return strings.Join(n.ProductNames, ", ")
	default:
		return "—"
	}
}

func consentSummary(consent *bool) string {
	if consent == nil {
		return "—"
	}
	if *consent {
		return "Yes"
	}
	return "No"
}

func enquirySubject(n domain.EnquiryNotification) string {
	parts := []string{"New enquiry"}
	if n.CategoryName != "" {
		parts = append(parts, "• "+n.CategoryName)
	}
	switch {
	case n.AllProductsOfCategory:
		parts = append(parts, "• Entire category")
	case len(n.ProductNames) > 0:
		parts = append(parts, fmt.Sprintf("• %d product(s)", len(n.ProductNames)))
	}
	parts = append(parts, "•", n.FromName)
	return strings.Join(parts, " ")
}

func renderEnquiryEmail(n domain.EnquiryNotification) (string, error) {
	data := enquiryTemplateData{
		Rows: []templateRow{
			{Key: "Name", Value: n.FromName},
			{Key: "Email", Value: n.FromEmail},
			{Key: "Phone", Value: orDash(n.Phone)},
			{Key: "Topic", Value: orDash(n.Topic)},
			{Key: "Category", Value: orDash(n.CategoryName)},
			{Key: "Category ID", Value: orDash(n.CategoryID)},
			{Key: "Products", Value: productSummary(n)},
			{Key: "Consent", Value: consentSummary(n.Consent)},
			{Key: "Received At", Value: n.ReceivedAt.UTC().Format("2006-01-02T15:04:05Z07:00")},
		},
		Message:   n.Message,
		FromEmail: n.FromEmail,
		Phone:     n.Phone,
	}

	var b strings.Builder
	if err := enquiryTemplate.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderEnquiryText(n domain.EnquiryNotification) string {
	lines := []string{
		"New enquiry received",
		"",
		"Name: " + n.FromName,
		"Email: " + n.FromEmail,
		"Phone: " + orDash(n.Phone),
		"Topic: " + orDash(n.Topic),
		"Category: " + orDash(n.CategoryName),
		"Category ID: " + orDash(n.CategoryID),
		"Products: " + productSummary(n),
		"Consent: " + consentSummary(n.Consent),
		"Received At: " + n.ReceivedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		"IP: " + orDash(n.IP),
		"User Agent: " + orDash(n.UserAgent),
		"",
		"Message:",
		n.Message,
	}
	return strings.Join(lines, "\n")
}
