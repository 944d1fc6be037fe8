package content

import "time"

// Service is one offering on the services grid
type Service struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Tall        bool   `json:"tall"`
}

// Reason is a "why choose us" card
type Reason struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Stat is a counted-up figure on the about section
type Stat struct {
	Value  int    `json:"value"`
	Suffix string `json:"suffix"`
	Label  string `json:"label"`
}

// Testimonial is a client quote
type Testimonial struct {
	Quote string `json:"quote"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

// ContactInfo is shown on the contact section and footer
type ContactInfo struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Region   string `json:"region"`
	Coverage string `json:"coverage"`
}

// Reveal is a section's scroll animation config, durations in seconds
type Reveal struct {
	Section  string  `json:"section"`
	Start    float64 `json:"start"`
	End      float64 `json:"end,omitempty"`
	Duration float64 `json:"duration"`
	Stagger  float64 `json:"stagger,omitempty"`
	Ease     string  `json:"ease"`
	Scrub    bool    `json:"scrub,omitempty"`
}

// Trigger builds a one-shot trigger for the section
func (r Reveal) Trigger() *RevealTrigger {
	return &RevealTrigger{
		Threshold: r.Start,
		Duration:  seconds(r.Duration),
		Stagger:   seconds(r.Stagger),
		Ease:      r.Ease,
	}
}

// Page is everything the landing page renders from the API
type Page struct {
	Services      []Service     `json:"services"`
	Reasons       []Reason      `json:"reasons"`
	Stats         []Stat        `json:"stats"`
	CountUpSecs   float64       `json:"count_up_seconds"`
	Testimonials  []Testimonial `json:"testimonials"`
	Mission       string        `json:"mission"`
	Contact       ContactInfo   `json:"contact"`
	Reveals       []Reveal      `json:"reveals"`
	BookingIntro  string        `json:"booking_intro"`
	BookingWindow int           `json:"booking_window_days"`
}

// CountUpDuration is how long the about-section statistics count up
const CountUpDuration = 2 * time.Second

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// DefaultPage returns the site content
func DefaultPage(windowDays int) Page {
	return Page{
		Services: []Service{
			{Slug: "executive-health", Title: "Executive Health Optimization", Tall: true,
				Description: "Precision health protocols designed for high-performing executives. Comprehensive biomarker analysis, personalized nutrition, and performance strategies."},
			{Slug: "corporate-strategy", Title: "Corporate Wellness Strategy",
				Description: "End-to-end wellness programs tailored to your organization's culture, goals, and scale. From audit to implementation."},
			{Slug: "metabolic-reset", Title: "Metabolic Reset & Weight Management",
				Description: "Science-backed metabolic assessments and structured reset programs. Sustainable weight management that fits a demanding lifestyle."},
			{Slug: "burnout-recovery", Title: "Stress, Sleep & Burnout Recovery", Tall: true,
				Description: "Evidence-based burnout recovery protocols addressing root causes. Sleep optimization, stress resilience, and cognitive recovery programs."},
			{Slug: "disease-prevention", Title: "Lifestyle Disease Prevention",
				Description: "Proactive screening and prevention programs targeting UAE's most prevalent executive health risks, before they become crises."},
			{Slug: "leadership-workshops", Title: "Corporate Workshops & Leadership Health",
				Description: "Interactive sessions that align leadership teams around a culture of wellbeing. Practical tools for sustainable high performance."},
		},
		Reasons: []Reason{
			{Title: "Evidence-Based Approach", Description: "Every program is grounded in peer-reviewed research, clinical validation, and measurable health outcomes, not trends or fads."},
			{Title: "UAE-Focused Expertise", Description: "Purpose-built for the UAE's unique executive environment: local culture, lifestyle pressures and the health risks specific to the region."},
			{Title: "Executive-Tailored Programs", Description: "Designed around the reality of demanding schedules, frequent travel, and high-stakes decision-making. No compromise, no generic solutions."},
			{Title: "Preventive, Not Reactive", Description: "We identify and address health risks before they become crises, protecting your most valuable long-term investment: your health."},
		},
		Stats: []Stat{
			{Value: 500, Suffix: "+", Label: "Executives Served"},
			{Value: 50, Suffix: "+", Label: "Corporate Partners"},
			{Value: 98, Suffix: "%", Label: "Client Satisfaction"},
		},
		CountUpSecs: CountUpDuration.Seconds(),
		Testimonials: []Testimonial{
			{Name: "Ahmed Al Mansoori", Title: "CEO, Regional Investment Group",
				Quote: "Zenora transformed how our leadership team approaches health. The results were measurable: fewer sick days, sharper decision-making, and a culture we're proud of."},
			{Name: "Sarah K.", Title: "Chief Operating Officer, UAE Tech Firm",
				Quote: "I was skeptical of corporate wellness programs, but Zenora's approach is completely different. Personalized, evidence-based, and respectful of how demanding our schedules are."},
		},
		Mission: "At Zenora Wellness, our mission is to redefine what it means to thrive in the modern world of work, transforming executive health from an afterthought into a strategic advantage. We are committed to delivering evidence-based, deeply personalized wellness experiences that honor the complexity of the human body and the demands of corporate life.",
		Contact: ContactInfo{
			Email:    "hello@zenorawellness.com",
			Phone:    "+971 00 000 0000",
			Region:   "United Arab Emirates",
			Coverage: "Serving executives across Dubai, Abu Dhabi, and all UAE Emirates, with programs available internationally for corporate partners.",
		},
		Reveals: []Reveal{
			{Section: "services-title", Start: 0.80, Duration: 0.9, Ease: EaseOut},
			{Section: "services-cards", Start: 0.75, Duration: 0.8, Stagger: 0.1, Ease: EaseOut},
			{Section: "about-text", Start: 0.75, Duration: 0.9, Stagger: 0.15, Ease: EaseOut},
			{Section: "about-image", Start: 0.75, Duration: 1.1, Ease: EaseOut},
			{Section: "about-stats", Start: 0.80, Duration: CountUpDuration.Seconds(), Ease: EaseOut},
			{Section: "why-cards", Start: 0.78, Duration: 0.8, Stagger: 0.12, Ease: EaseOut},
			{Section: "mission-title", Start: 0.80, Duration: 0.9, Ease: EaseOut},
			{Section: "mission-words", Start: 0.70, End: 0.60, Duration: 0.1, Stagger: 0.04, Ease: EaseOut, Scrub: true},
		},
		BookingIntro:  "Free 15-minute discovery call. Select a date and time that works for you.",
		BookingWindow: windowDays,
	}
}
