package screening

import (
	"slices"

	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

// MessageAssessmentFailed is shown for failures the user cannot fix by editing answers.
const MessageAssessmentFailed = "could not complete the assessment, please try again"

// Stage is the page currently shown.
type Stage string

const (
	StageInput   Stage = "input"
	StageResults Stage = "results"
)

// View is everything a page render needs. Transitions return a new View and never
// modify the one passed in.
type View struct {
	Stage      Stage
	Answers    SurveyResponse
	Assessment *Assessment
	Error      string
}

// SubmitEvent carries the outcome of running an assessment for a submitted form.
type SubmitEvent struct {
	Answers    SurveyResponse
	Assessment *Assessment
	Err        error
}

// NewView is the empty input page.
func NewView() View {
	return View{Stage: StageInput, Answers: DefaultResponse()}
}

// Submit moves Input to Results when the assessment succeeded. A failed assessment keeps
// the input page with the answers preserved for retry.
func Submit(v View, ev SubmitEvent) View {
	if v.Stage != StageInput {
		return v
	}
	if ev.Err != nil || ev.Assessment == nil {
		return View{Stage: StageInput, Answers: ev.Answers, Error: failureMessage(ev.Err)}
	}
	result := *ev.Assessment
	result.Factors = slices.Clone(result.Factors)
	return View{Stage: StageResults, Answers: ev.Answers, Assessment: &result}
}

// Reset discards any result and returns to a fresh input page.
func Reset(View) View {
	return NewView()
}

// failureMessage exposes only validation messages; internal model errors stay in the logs.
func failureMessage(err error) string {
	if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		return err.Error()
	}
	return MessageAssessmentFailed
}
