package wizard

import "fmt"

// Step is the active wizard screen
type Step int

const (
	StepDate Step = iota
	StepTime
	StepDetails
	StepSuccess
)

func (s Step) String() string {
	switch s {
	case StepDate:
		return "DATE"
	case StepTime:
		return "TIME"
	case StepDetails:
		return "DETAILS"
	case StepSuccess:
		return "SUCCESS"
	default:
		return fmt.Sprintf("Step(%d)", int(s))
	}
}

func (s Step) MarshalText() ([]byte, error) {
	if s < StepDate || s > StepSuccess {
		return nil, fmt.Errorf("invalid step %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	for _, step := range []Step{StepDate, StepTime, StepDetails, StepSuccess} {
		if step.String() == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("unknown step %q", text)
}

// SubmissionState tracks the outbound call made from the DETAILS step
type SubmissionState int

const (
	SubmissionIdle SubmissionState = iota
	SubmissionPending
	SubmissionSucceeded
	SubmissionFailed
)

func (s SubmissionState) String() string {
	switch s {
	case SubmissionIdle:
		return "IDLE"
	case SubmissionPending:
		return "PENDING"
	case SubmissionSucceeded:
		return "SUCCESS"
	case SubmissionFailed:
		return "ERROR"
	default:
		return fmt.Sprintf("SubmissionState(%d)", int(s))
	}
}

func (s SubmissionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *SubmissionState) UnmarshalText(text []byte) error {
	for _, state := range []SubmissionState{SubmissionIdle, SubmissionPending, SubmissionSucceeded, SubmissionFailed} {
		if state.String() == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown submission state %q", text)
}
