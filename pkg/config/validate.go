package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// checkSection runs struct tag validation and renders every violation as a
// human-readable diagnostic. It reports, never decides severity — that policy
// lives with the Manager and ultimately with each consumer.
func checkSection(section any) (bool, []string) {
	err := validate.Struct(section)
	if err == nil {
		return true, nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false, []string{err.Error()}
	}

	diags := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		diags = append(diags, diagnosticMessage(fe))
	}
	return false, diags
}

func diagnosticMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "file":
		return fmt.Sprintf("%s: no such file: %v", field, fe.Value())
	case "ne":
		return fmt.Sprintf("%s still holds its placeholder value", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed validation: %s", field, fe.Tag())
	}
}

func checkFirebase(c FirebaseConfig) SectionStatus {
	ok, diags := checkSection(c)
	return SectionStatus{Valid: ok, Diagnostics: diags}
}

func checkTelegram(c TelegramConfig) SectionStatus {
	ok, diags := checkSection(c)
	return SectionStatus{Valid: ok, Diagnostics: diags}
}

func checkResearch(c ResearchConfig) SectionStatus {
	ok, diags := checkSection(c)
	// Short backtest windows are a reliability concern, not an error.
	if c.BacktestDays < 30 {
		diags = append(diags, fmt.Sprintf("BacktestDays below 30 may produce unreliable results (got %d)", c.BacktestDays))
	}
	return SectionStatus{Valid: ok, Diagnostics: diags}
}

// checkExchanges performs no validation: empty credentials simply mean the
// provider is unavailable for authenticated calls.
func checkExchanges(map[string]ExchangeKeys) SectionStatus {
	return SectionStatus{Valid: true}
}
