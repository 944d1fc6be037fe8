package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const sendTimeout = 15 * time.Second

// Template names
const (
	TemplateBookingReceived = "booking_received"
	TemplateBookingNotify   = "booking_notify"
	TemplateContactReceived = "contact_received"
	TemplateContactNotify   = "contact_notify"
)

// Service renders templates and sends them from a background worker
type Service struct {
	sender       Sender
	templates    map[string]*template.Template
	baseTemplate *template.Template
	queue        chan *QueuedEmail
	wg           sync.WaitGroup
	closeOnce    sync.Once
}

// QueuedEmail represents an email in the send queue
type QueuedEmail struct {
	To           string
	ToName       string
	Subject      string
	TemplateName string
	Data         interface{}
}

// NewService creates email service and starts its worker
func NewService(sender Sender) *Service {
	s := &Service{
		sender:    sender,
		templates: make(map[string]*template.Template),
		queue:     make(chan *QueuedEmail, 100),
	}

	s.baseTemplate = template.Must(template.New("base").Parse(BaseTemplate))
	s.loadTemplates()

	s.wg.Add(1)
	go s.worker()

	return s
}

func (s *Service) loadTemplates() {
	templates := map[string]string{
		TemplateBookingReceived: BookingReceivedTemplate,
		TemplateBookingNotify:   BookingNotifyTemplate,
		TemplateContactReceived: ContactReceivedTemplate,
		TemplateContactNotify:   ContactNotifyTemplate,
	}

	for name, content := range templates {
		s.templates[name] = template.Must(template.New(name).Parse(content))
	}
}

func (s *Service) worker() {
	defer s.wg.Done()

	for email := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		if err := s.send(ctx, email); err != nil {
			log.Error().Err(err).
				Str("to", email.To).
				Str("template", email.TemplateName).
				Msg("Failed to send email")
		}
		cancel()
	}
}

// Render renders a named template wrapped in the base layout
func (s *Service) Render(templateName string, data interface{}) (string, error) {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return "", fmt.Errorf("template %s not found", templateName)
	}

	var contentBuf bytes.Buffer
	if err := tmpl.Execute(&contentBuf, data); err != nil {
		return "", err
	}

	var htmlBuf bytes.Buffer
	if err := s.baseTemplate.Execute(&htmlBuf, map[string]interface{}{
		"Content": template.HTML(contentBuf.String()),
	}); err != nil {
		return "", err
	}
	return htmlBuf.String(), nil
}

func (s *Service) send(ctx context.Context, email *QueuedEmail) error {
	html, err := s.Render(email.TemplateName, email.Data)
	if err != nil {
		return err
	}

	return s.sender.Send(ctx, &EmailMessage{
		To:          email.To,
		ToName:      email.ToName,
		Subject:     email.Subject,
		HTMLContent: html,
	})
}

// Queue adds an email to the async send queue; a full queue drops the email
func (s *Service) Queue(to, toName, templateName, subject string, data interface{}) {
	select {
	case s.queue <- &QueuedEmail{
		To:           to,
		ToName:       toName,
		Subject:      subject,
		TemplateName: templateName,
		Data:         data,
	}:
	default:
		log.Warn().Str("to", to).Str("template", templateName).Msg("Email queue full, dropping email")
	}
}

// SendSync sends an email synchronously (blocking)
func (s *Service) SendSync(ctx context.Context, to, toName, templateName, subject string, data interface{}) error {
	return s.send(ctx, &QueuedEmail{
		To:           to,
		ToName:       toName,
		Subject:      subject,
		TemplateName: templateName,
		Data:         data,
	})
}

// Close drains the queue and stops the worker
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		close(s.queue)
	})
	s.wg.Wait()
}

// BookingEmail carries the fields rendered in booking emails
type BookingEmail struct {
	Name     string
	Email    string
	Date     string
	Time     string
	Timezone string
	Message  string
	ID       string
}

// ContactEmail carries the fields rendered in contact emails
type ContactEmail struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
	ID      string
}

// SendBookingReceived acknowledges a consultation request to the client
func (s *Service) SendBookingReceived(data BookingEmail) {
	s.Queue(data.Email, data.Name, TemplateBookingReceived, "We received your consultation request", data)
}

// SendBookingNotify tells the studio inbox about a new request
func (s *Service) SendBookingNotify(inbox string, data BookingEmail) {
	s.Queue(inbox, "Zenora Wellness", TemplateBookingNotify, "New consultation request: "+data.Date+" "+data.Time, data)
}

// SendContactReceived acknowledges a contact form message
func (s *Service) SendContactReceived(data ContactEmail) {
	s.Queue(data.Email, data.Name, TemplateContactReceived, "Thank you for reaching out", data)
}

// SendContactNotify forwards a contact form message to the studio inbox
func (s *Service) SendContactNotify(inbox string, data ContactEmail) {
	s.Queue(inbox, "Zenora Wellness", TemplateContactNotify, "New message from "+data.Name, data)
}
