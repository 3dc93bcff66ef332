package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/model"
	"github.com/rs/zerolog/log"
)

func formatQuestion(q model.Question) dto.QuestionResponse {
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, &q); err != nil {
		log.Error().Err(err).Uint("questionID", q.ID).Msg("Failed to format question")
	}
	return resp
}

func formatQuestions(questions []model.Question) []dto.QuestionResponse {
	out := make([]dto.QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, formatQuestion(q))
	}
	return out
}

func formatCategories(categories []model.Category) []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		var resp dto.CategoryResponse
		if err := copier.Copy(&resp, &c); err != nil {
			log.Error().Err(err).Uint("categoryID", c.ID).Msg("Failed to format category")
		}
		out = append(out, resp)
	}
	return out
}
