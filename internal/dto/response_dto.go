package dto

type CategoryResponse struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// QuestionResponse is the formatted question record.
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   uint   `json:"category"`
	Difficulty int    `json:"difficulty"`
}

type CategoryListResponse struct {
	Success         bool               `json:"success"`
	Categories      []CategoryResponse `json:"categories"`
	TotalCategories int                `json:"total_categories"`
}

type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	Categories      []CategoryResponse `json:"categories"`
	CurrentCategory *CategoryResponse  `json:"current_category"` // always null
}

type QuestionDeletedResponse struct {
	Success        bool               `json:"success"`
	Deleted        uint               `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

type QuestionCreatedResponse struct {
	Success        bool               `json:"success"`
	Created        uint               `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

// QuestionSearchResponse reports the number of matches in TotalQuestions.
type QuestionSearchResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int                `json:"total_questions"`
}

type CategoryQuestionsResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int                `json:"total_questions"`
	CurrentCategory []CategoryResponse `json:"current_category"`
}

// QuizResponse carries a null question once the quiz has run out of eligible questions.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"resource not found"`
}
