package dto

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// LooseInt decodes from a JSON number or a numeric JSON string ("6").
type LooseInt int

func (n *LooseInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return fmt.Errorf("invalid integer %s: %w", raw, err)
		}
		raw = strings.TrimSpace(unquoted)
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid integer %s", string(data))
	}
	*n = LooseInt(v)
	return nil
}

// CreateQuestionRequest carries a new question. All four fields are required and non-null.
type CreateQuestionRequest struct {
	Question   *string   `json:"question" binding:"required" swaggertype:"string"`
	Answer     *string   `json:"answer" binding:"required" swaggertype:"string"`
	Category   *LooseInt `json:"category" binding:"required" swaggertype:"integer"`
	Difficulty *LooseInt `json:"difficulty" binding:"required" swaggertype:"integer"`
}

type QuizCategory struct {
	ID *LooseInt `json:"id" binding:"required" swaggertype:"integer"` // 0 selects every category
}

// QuizRequest asks for the next quiz question.
type QuizRequest struct {
	QuizCategory      *QuizCategory `json:"quizCategory" binding:"required"`
	PreviousQuestions []uint        `json:"previousQuestions"`
}
