package aigame

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationIssue struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

type ValidationErrorResponse struct {
	Detail []ValidationIssue `json:"detail"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeEvaluateAnswer reads and validates the POST body. A non-nil issue
// list means the request must be rejected with 422.
func decodeEvaluateAnswer(body io.Reader) (AnswerEvaluationRequest, []ValidationIssue) {
	var payload evaluateAnswerPayload
	dec := json.NewDecoder(body)
	if err := dec.Decode(&payload); err != nil {
		return AnswerEvaluationRequest{}, []ValidationIssue{decodeIssue(err)}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return AnswerEvaluationRequest{}, []ValidationIssue{{
			Loc:  []string{"body"},
			Msg:  "invalid JSON body",
			Type: "value_error.jsondecode",
		}}
	}

	if err := validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return AnswerEvaluationRequest{}, []ValidationIssue{{
				Loc:  []string{"body"},
				Msg:  err.Error(),
				Type: "value_error",
			}}
		}
		issues := make([]ValidationIssue, 0, len(verrs))
		for _, fe := range verrs {
			issues = append(issues, ValidationIssue{
				Loc:  []string{"body", fe.Field()},
				Msg:  "field required",
				Type: "value_error.missing",
			})
		}
		return AnswerEvaluationRequest{}, issues
	}

	return payload.toRequest(), nil
}

func decodeIssue(err error) ValidationIssue {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, typeErr.Field)
		}
		return ValidationIssue{
			Loc:  loc,
			Msg:  "str type expected",
			Type: "type_error.str",
		}
	case errors.Is(err, io.EOF):
		return ValidationIssue{
			Loc:  []string{"body"},
			Msg:  "field required",
			Type: "value_error.missing",
		}
	default:
		return ValidationIssue{
			Loc:  []string{"body"},
			Msg:  "invalid JSON body",
			Type: "value_error.jsondecode",
		}
	}
}
