package email

// BaseTemplate is the base layout for all emails
const BaseTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { margin: 0; padding: 0; font-family: Georgia, 'Times New Roman', serif; background-color: #FAFAF7; color: #0A2E1C; }
        .container { max-width: 600px; margin: 0 auto; padding: 40px 20px; }
        .card { background: #ffffff; padding: 32px; border: 1px solid #E5E1D6; }
        .logo { text-align: center; margin-bottom: 24px; color: #C9A96E; letter-spacing: 0.2em; text-transform: uppercase; }
        h2 { font-size: 24px; font-weight: 400; margin: 0 0 16px; }
        p { color: #374151; font-size: 15px; line-height: 1.6; margin: 0 0 16px; }
        .meta { color: #6B7280; font-size: 13px; }
        .footer { text-align: center; margin-top: 24px; color: #9CA3AF; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">Zenora Wellness</div>
        <div class="card">
            {{.Content}}
        </div>
        <div class="footer">Zenora Wellness FZE · United Arab Emirates</div>
    </div>
</body>
</html>`

// BookingReceivedTemplate is sent to the client after a booking request
const BookingReceivedTemplate = `
<h2>Request received</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for booking a free 15-minute discovery call. You asked for <strong>{{.Date}} at {{.Time}} ({{.Timezone}})</strong>.</p>
<p>We'll confirm your consultation by email shortly with a calendar invite.</p>
<p class="meta">Reference: {{.ID}}</p>`

// BookingNotifyTemplate is sent to the studio inbox
const BookingNotifyTemplate = `
<h2>New consultation request</h2>
<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt;</p>
<p>{{.Date}} at {{.Time}} ({{.Timezone}})</p>
{{if .Message}}<p>{{.Message}}</p>{{end}}
<p class="meta">Booking {{.ID}}</p>`

// ContactReceivedTemplate is sent to the sender of a contact form
const ContactReceivedTemplate = `
<h2>Message received</h2>
<p>Dear {{.Name}},</p>
<p>Thank you for reaching out. A member of our team will be in touch within 24 hours to schedule your complimentary consultation.</p>`

// ContactNotifyTemplate is sent to the studio inbox
const ContactNotifyTemplate = `
<h2>New contact message</h2>
<p><strong>{{.Name}}</strong> &lt;{{.Email}}&gt;{{if .Phone}} · {{.Phone}}{{end}}</p>
{{if .Company}}<p class="meta">{{.Company}}</p>{{end}}
<p>{{.Message}}</p>
<p class="meta">Message {{.ID}}</p>`
