package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/depression-screener/internal/domain/screening"
	apperrors "github.com/yanqian/depression-screener/pkg/errors"
)

const (
	inputTemplate   = "input.html"
	resultsTemplate = "results.html"
)

// pageData is the template model for both pages.
type pageData struct {
	View      screening.View
	Questions []questionField
}

// questionField pairs a question with the value currently shown for it.
type questionField struct {
	screening.Question
	Value string
}

// IndexPage renders the empty questionnaire.
func (h *Handler) IndexPage(c *gin.Context) {
	c.HTML(http.StatusOK, inputTemplate, newPageData(screening.NewView()))
}

// SubmitPage assesses the posted form and renders the results, or the form again with
// the error and the user's answers when the assessment fails.
func (h *Handler) SubmitPage(c *gin.Context) {
	current := screening.NewView()

	var req surveyRequest
	if err := c.ShouldBind(&req); err != nil {
		view := screening.Submit(current, screening.SubmitEvent{
			Answers: req.toResponse(),
			Err:     apperrors.Wrap(apperrors.CodeInvalidInput, bindingMessage(err), nil),
		})
		h.logger.Warn("survey form rejected", "error", err)
		c.HTML(http.StatusUnprocessableEntity, inputTemplate, newPageData(view))
		return
	}

	answers := req.toResponse()
	assessment, err := h.svc.Assess(c.Request.Context(), answers)
	event := screening.SubmitEvent{Answers: answers, Err: err}
	if err == nil {
		event.Assessment = &assessment
	}
	view := screening.Submit(current, event)

	if view.Stage == screening.StageResults {
		c.HTML(http.StatusOK, resultsTemplate, newPageData(view))
		return
	}

	status := http.StatusInternalServerError
	if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
		status = http.StatusUnprocessableEntity
	}
	c.HTML(status, inputTemplate, newPageData(view))
}

// ResetPage handles "Predict Again": the previous result is dropped and a fresh form
// is shown.
func (h *Handler) ResetPage(c *gin.Context) {
	view := screening.Reset(screening.View{Stage: screening.StageResults})
	c.HTML(http.StatusOK, inputTemplate, newPageData(view))
}

func newPageData(view screening.View) pageData {
	values := answerValues(view.Answers)
	questions := screening.Questions()
	fields := make([]questionField, 0, len(questions))
	for _, q := range questions {
		fields = append(fields, questionField{Question: q, Value: values[q.Key]})
	}
	return pageData{View: view, Questions: fields}
}

func answerValues(r screening.SurveyResponse) map[string]string {
	return map[string]string{
		"age":               strconv.Itoa(r.Age),
		"gender":            string(r.Gender),
		"degree":            r.Degree,
		"academicPressure":  strconv.Itoa(r.AcademicPressure),
		"studySatisfaction": strconv.Itoa(r.StudySatisfaction),
		"financialStress":   strconv.Itoa(r.FinancialStress),
		"familyHistory":     string(r.FamilyHistory),
		"suicidalThoughts":  string(r.SuicidalThoughts),
		"sleepDuration":     string(r.SleepDuration),
		"dietaryHabits":     string(r.DietaryHabits),
		"workStudyHours":    strconv.Itoa(r.WorkStudyHours),
	}
}
