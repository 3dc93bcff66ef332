package service

import (
	"fmt"

	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/errorz"
	"github.com/lshigami/trivia/internal/random"
	"github.com/lshigami/trivia/internal/repository"
	"github.com/rs/zerolog/log"
)

// AllCategories in a quiz request selects questions from every category.
const AllCategories = 0

type QuizService interface {
	// NextQuestion draws a random question that has not been asked yet.
	// The response carries a nil Question when none are left.
	NextQuestion(req dto.QuizRequest) (*dto.QuizResponse, error)
}

type quizService struct {
	repo repository.QuestionRepository
	rng  random.Source
}

func NewQuizService(repo repository.QuestionRepository, rng random.Source) QuizService {
	return &quizService{repo: repo, rng: rng}
}

func (s *quizService) NextQuestion(req dto.QuizRequest) (*dto.QuizResponse, error) {
	if req.QuizCategory == nil || req.QuizCategory.ID == nil {
		log.Warn().Msg("Quiz request without a category")
		return nil, fmt.Errorf("quizCategory.id is required: %w", errorz.ErrUnprocessable)
	}
	categoryID := int(*req.QuizCategory.ID)
	if categoryID < AllCategories {
		return nil, fmt.Errorf("quiz category %d: %w", categoryID, errorz.ErrUnprocessable)
	}

	candidates, err := s.repo.FindQuizCandidates(uint(categoryID), req.PreviousQuestions)
	if err != nil {
		log.Error().Err(err).Int("categoryID", categoryID).Msg("Failed to load quiz candidates")
		return nil, fmt.Errorf("load quiz candidates: %w: %w", errorz.ErrUnprocessable, err)
	}
	if len(candidates) == 0 {
		log.Info().Int("categoryID", categoryID).Int("asked", len(req.PreviousQuestions)).Msg("Quiz exhausted")
		return &dto.QuizResponse{Success: true}, nil
	}

	picked := formatQuestion(candidates[s.rng.IntN(len(candidates))])
	return &dto.QuizResponse{Success: true, Question: &picked}, nil
}
