package domain

import dErrors "crewdock/pkg/domain-errors"

// QuestionType classifies a journey requirement question and dictates the
// answer format the validator enforces.
//
// The string literals are a persistence and API contract; they must not
// change. The type is a closed enum so call sites switch exhaustively
// instead of comparing free strings.
type QuestionType string

// Supported question types.
const (
	QuestionTypeText           QuestionType = "text"
	QuestionTypeYesNo          QuestionType = "yes_no"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeRating         QuestionType = "rating"
)

// validQuestionTypes is the single source of truth for valid question types.
var validQuestionTypes = map[QuestionType]bool{
	QuestionTypeText:           true,
	QuestionTypeYesNo:          true,
	QuestionTypeMultipleChoice: true,
	QuestionTypeRating:         true,
}

// ParseQuestionType constructs a QuestionType from external input.
//
// Errors: returns CodeInvalidInput when the value is empty or unsupported.
func ParseQuestionType(s string) (QuestionType, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeInvalidInput, "question type cannot be empty")
	}
	qt := QuestionType(s)
	if !qt.IsValid() {
		return "", dErrors.New(dErrors.CodeInvalidInput, "invalid question type")
	}
	return qt, nil
}

// IsValid checks if the question type is one of the supported enum values.
func (q QuestionType) IsValid() bool {
	return validQuestionTypes[q]
}

// String returns the string representation of the question type.
func (q QuestionType) String() string {
	return string(q)
}

// WantsText reports whether answers of this type are carried in AnswerText.
// The complement (multiple_choice, rating) is carried in AnswerJSON.
func (q QuestionType) WantsText() bool {
	switch q {
	case QuestionTypeText, QuestionTypeYesNo:
		return true
	case QuestionTypeMultipleChoice, QuestionTypeRating:
		return false
	}
	return false
}
