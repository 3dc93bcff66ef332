package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/trivia/internal/dto"
	"github.com/lshigami/trivia/internal/errorz"
	"github.com/lshigami/trivia/internal/pagination"
	"github.com/lshigami/trivia/internal/service"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	categorySvc service.CategoryService
	questionSvc service.QuestionService
	quizSvc     service.QuizService
}

func NewController(cSvc service.CategoryService, qSvc service.QuestionService, quizSvc service.QuizService) *Controller {
	return &Controller{
		categorySvc: cSvc,
		questionSvc: qSvc,
		quizSvc:     quizSvc,
	}
}

func (ctrl *Controller) RegisterRoutes(router *gin.Engine) {
	categories := router.Group("/categories")
	{
		categories.GET("", ctrl.GetCategoriesHandler)
		categories.GET("/:id/questions", ctrl.GetCategoryQuestionsHandler)
	}

	questions := router.Group("/questions")
	{
		questions.GET("", ctrl.GetQuestionsHandler)
		questions.POST("", ctrl.CreateQuestionHandler)
		questions.DELETE("/:id", ctrl.DeleteQuestionHandler)
		questions.POST("/search", ctrl.SearchQuestionsHandler)
	}

	router.POST("/quizzes", ctrl.PlayQuizHandler)

	router.NoRoute(NotFound)
}

func page(c *gin.Context) int {
	return pagination.ParsePage(c.Query("page"))
}

// pathID parses an integer path parameter. ok is false when the value is not an integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// GetCategoriesHandler godoc
// @Summary List categories
// @Description Retrieve every trivia category
// @Tags categories
// @Produce json
// @Success 200 {object} dto.CategoryListResponse
// @Failure 404 {object} dto.ErrorResponse "No categories"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /categories [get]
func (ctrl *Controller) GetCategoriesHandler(c *gin.Context) {
	resp, err := ctrl.categorySvc.ListCategories()
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetCategoryQuestionsHandler godoc
// @Summary List questions in a category
// @Description Retrieve a page of questions for one category
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Param page query int false "Page number (10 questions per page)"
// @Success 200 {object} dto.CategoryQuestionsResponse
// @Failure 404 {object} dto.ErrorResponse "No questions in this category"
// @Failure 422 {object} dto.ErrorResponse "Request could not be processed"
// @Router /categories/{id}/questions [get]
func (ctrl *Controller) GetCategoryQuestionsHandler(c *gin.Context) {
	categoryID, ok := pathID(c, "id")
	if !ok {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	resp, err := ctrl.questionSvc.ListQuestionsByCategory(categoryID, page(c))
	if err != nil {
		if !errors.Is(err, errorz.ErrNotFound) {
			log.Error().Err(err).Uint("categoryID", categoryID).Msg("Failed to list category questions")
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetQuestionsHandler godoc
// @Summary List questions
// @Description Retrieve a page of questions ordered by id, with all categories
// @Tags questions
// @Produce json
// @Param page query int false "Page number (10 questions per page)"
// @Success 200 {object} dto.QuestionListResponse
// @Failure 404 {object} dto.ErrorResponse "Page out of range"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions [get]
func (ctrl *Controller) GetQuestionsHandler(c *gin.Context) {
	resp, err := ctrl.questionSvc.ListQuestions(page(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Description Permanently delete a question and return the remaining questions
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Param page query int false "Page number (10 questions per page)"
// @Success 200 {object} dto.QuestionDeletedResponse
// @Failure 422 {object} dto.ErrorResponse "Unknown question or delete failed"
// @Router /questions/{id} [delete]
func (ctrl *Controller) DeleteQuestionHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	resp, err := ctrl.questionSvc.DeleteQuestion(id, page(c))
	if err != nil {
		// Clients rely on 422 for unknown ids.
		if errors.Is(err, errorz.ErrNotFound) {
			_ = c.Error(err)
			abortWithStatus(c, http.StatusUnprocessableEntity)
			return
		}
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CreateQuestionHandler godoc
// @Summary Create a question
// @Description Add a new question. category and difficulty accept numbers or numeric strings.
// @Tags questions
// @Accept json
// @Produce json
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Param page query int false "Page number (10 questions per page)"
// @Success 200 {object} dto.QuestionCreatedResponse
// @Failure 422 {object} dto.ErrorResponse "Missing or null fields"
// @Router /questions [post]
func (ctrl *Controller) CreateQuestionHandler(c *gin.Context) {
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		abortWithError(c, errors.Join(errorz.ErrUnprocessable, err))
		return
	}

	resp, err := ctrl.questionSvc.CreateQuestion(req, page(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SearchQuestionsHandler godoc
// @Summary Search questions
// @Description Case-insensitive substring search over question text. total_questions is the number of matches.
// @Tags questions
// @Produce json
// @Param search query string true "Search term"
// @Param page query int false "Page number (10 questions per page)"
// @Success 200 {object} dto.QuestionSearchResponse
// @Failure 404 {object} dto.ErrorResponse "Missing search parameter"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /questions/search [post]
func (ctrl *Controller) SearchQuestionsHandler(c *gin.Context) {
	term, ok := c.GetQuery("search")
	if !ok {
		abortWithStatus(c, http.StatusNotFound)
		return
	}

	resp, err := ctrl.questionSvc.SearchQuestions(term, page(c))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// PlayQuizHandler godoc
// @Summary Next quiz question
// @Description Draw a random question from a category (0 for all) that is not in previousQuestions. question is null once every eligible question has been asked.
// @Tags quizzes
// @Accept json
// @Produce json
// @Param quiz body dto.QuizRequest true "Quiz category and previously asked question ids"
// @Success 200 {object} dto.QuizResponse
// @Failure 422 {object} dto.ErrorResponse "Malformed quiz request"
// @Router /quizzes [post]
func (ctrl *Controller) PlayQuizHandler(c *gin.Context) {
	var req dto.QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind QuizRequest")
		abortWithError(c, errors.Join(errorz.ErrUnprocessable, err))
		return
	}

	resp, err := ctrl.quizSvc.NextQuestion(req)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
