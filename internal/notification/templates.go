package notification

import (
	"fmt"
	"html"
	"sort"
	"strings"
	"time"
)

// completionContent selects the customer mail copy for a completed request.
// Service names outside the known set fall back to a generic template.
func completionContent(serviceName, clientName string) (subject, body string) {
	switch serviceName {
	case "SEO Optimization":
		return "SEO Optimization Completed",
			fmt.Sprintf("Hi %s,\n\nYour SEO Optimization request has been successfully completed. Please find the attached quotation for SEO services.\n\nRegards,\nDigital Agency", clientName)
	case "Social Media Marketing":
		return "Social Media Marketing Completed",
			fmt.Sprintf("Hi %s,\n\nWe've completed your Social Media Marketing request. Please check the quotation for social media campaigns.\n\nRegards,\nDigital Agency", clientName)
	case "Paid Advertising":
		return "Paid Advertising Completed",
			fmt.Sprintf("Hi %s,\n\nYour Paid Advertising campaign has been marked complete. Attached is your quotation.\n\nRegards,\nDigital Agency", clientName)
	case "Content Marketing":
		return "Content Marketing Completed",
			fmt.Sprintf("Hi %s,\n\nYour Content Marketing request is complete. Please find the quotation attached.\n\nRegards,\nDigital Agency", clientName)
	default:
		return "Service Completed",
			fmt.Sprintf("Hi %s,\n\nYour requested service has been completed.\n\nRegards,\nDigital Agency", clientName)
	}
}

// newRequestHTML renders the operator alert for a fresh submission, listing
// every submitted field/value pair.
func newRequestHTML(serviceName, clientName, clientEmail string, formData map[string]any) string {
	keys := make([]string, 0, len(formData))
	for k := range formData {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("<h2>New Service Request Received</h2>")
	fmt.Fprintf(&b, "<p><strong>Service:</strong> %s</p>", html.EscapeString(serviceName))
	fmt.Fprintf(&b, "<p><strong>Client:</strong> %s (%s)</p>", html.EscapeString(clientName), html.EscapeString(clientEmail))
	b.WriteString("<p><strong>Request Details:</strong></p><ul>")
	for _, k := range keys {
		label := strings.ReplaceAll(k, "_", " ")
		value := fmt.Sprintf("%v", formData[k])
		fmt.Fprintf(&b, "<li><strong>%s:</strong> %s</li>", html.EscapeString(label), html.EscapeString(value))
	}
	b.WriteString("</ul>")
	fmt.Fprintf(&b, "<p><strong>Submitted:</strong> %s</p>", time.Now().UTC().Format(time.RFC1123))
	return b.String()
}

// contactHTML renders the operator alert for a contact-form message.
func contactHTML(name, email, message string) string {
	var b strings.Builder
	b.WriteString("<h2>New Contact Message</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(email))
	b.WriteString("<p><strong>Message:</strong></p>")
	fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(message))
	fmt.Fprintf(&b, "<p><strong>Submitted:</strong> %s</p>", time.Now().UTC().Format(time.RFC1123))
	return b.String()
}
