package http

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/yanqian/depression-screener/internal/domain/screening"
)

// surveyRequest binds both the HTML form and the JSON API. Numeric answers are pointers
// so that a legitimate 0 is distinguishable from a missing field.
type surveyRequest struct {
	Age               *int   `form:"age" json:"age" binding:"required,min=18,max=60"`
	Gender            string `form:"gender" json:"gender" binding:"required,oneof=Male Female"`
	Degree            string `form:"degree" json:"degree" binding:"required"`
	AcademicPressure  *int   `form:"academicPressure" json:"academicPressure" binding:"required,min=0,max=5"`
	StudySatisfaction *int   `form:"studySatisfaction" json:"studySatisfaction" binding:"required,min=0,max=5"`
	FinancialStress   *int   `form:"financialStress" json:"financialStress" binding:"required,min=1,max=5"`
	FamilyHistory     string `form:"familyHistory" json:"familyHistory" binding:"required,oneof=Yes No"`
	SuicidalThoughts  string `form:"suicidalThoughts" json:"suicidalThoughts" binding:"required,oneof=Yes No"`
	SleepDuration     string `form:"sleepDuration" json:"sleepDuration" binding:"required"`
	DietaryHabits     string `form:"dietaryHabits" json:"dietaryHabits" binding:"required"`
	WorkStudyHours    *int   `form:"workStudyHours" json:"workStudyHours" binding:"required,min=0,max=12"`
}

// toResponse converts the request, keeping form defaults for anything missing so a
// rejected form can be shown again with what the user did enter.
func (r surveyRequest) toResponse() screening.SurveyResponse {
	out := screening.DefaultResponse()
	setInt(&out.Age, r.Age)
	setInt(&out.AcademicPressure, r.AcademicPressure)
	setInt(&out.StudySatisfaction, r.StudySatisfaction)
	setInt(&out.FinancialStress, r.FinancialStress)
	setInt(&out.WorkStudyHours, r.WorkStudyHours)
	if r.Gender != "" {
		out.Gender = screening.Gender(r.Gender)
	}
	if r.Degree != "" {
		out.Degree = r.Degree
	}
	if r.FamilyHistory != "" {
		out.FamilyHistory = screening.YesNo(r.FamilyHistory)
	}
	if r.SuicidalThoughts != "" {
		out.SuicidalThoughts = screening.YesNo(r.SuicidalThoughts)
	}
	if r.SleepDuration != "" {
		out.SleepDuration = screening.SleepDuration(r.SleepDuration)
	}
	if r.DietaryHabits != "" {
		out.DietaryHabits = screening.DietaryHabits(r.DietaryHabits)
	}
	return out
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

// bindingMessage turns the first binding failure into text for the form banner.
func bindingMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "please answer every question with a valid value"
	}
	fe := fieldErrs[0]
	field := formKey(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("please answer every question: %s is missing", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s has an invalid value", field)
	}
}

// formKey maps a struct field name to its form key (AcademicPressure -> academicPressure).
func formKey(field string) string {
	r, size := utf8.DecodeRuneInString(field)
	if r == utf8.RuneError {
		return field
	}
	return string(unicode.ToLower(r)) + field[size:]
}
