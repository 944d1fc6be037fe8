package wizard

import (
	"strings"

	"github.com/zenora/zenora-api/internal/pkg/validator"
)

// Draft is the in-progress booking selection
type Draft struct {
	Date     string `json:"date"`
	Time     string `json:"time"`
	FullName string `json:"name"`
	Email    string `json:"email"`
	Message  string `json:"message"`
}

type detailsInput struct {
	Name    string `json:"name" validate:"required,notblank,min=2,max=255"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Message string `json:"message" validate:"max=2000"`
}

// Validate returns field errors keyed by name, email and message
func (d Draft) Validate() map[string]string {
	return validator.Validate(&detailsInput{
		Name:    strings.TrimSpace(d.FullName),
		Email:   strings.TrimSpace(d.Email),
		Message: d.Message,
	})
}

func (d Draft) hasContact() bool {
	return strings.TrimSpace(d.FullName) != "" && strings.TrimSpace(d.Email) != ""
}
