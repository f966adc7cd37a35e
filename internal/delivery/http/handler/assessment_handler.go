package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soulmatch/soulmatch-backend/internal/domain"
	"github.com/soulmatch/soulmatch-backend/internal/usecase/assessment"
)

type AssessmentHandler struct {
	assessmentUseCase *assessment.AssessmentUseCase
}

func NewAssessmentHandler(assessmentUseCase *assessment.AssessmentUseCase) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentUseCase: assessmentUseCase,
	}
}

// CompleteRequest carries the answers, keyed by question id.
type CompleteRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// GetQuestions returns the fixed question set
// @Summary Assessment questions
// @Tags assessment
// @Produce json
// @Success 200 {array} assessment.Question
// @Router /assessment/questions [get]
func (h *AssessmentHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.assessmentUseCase.Questions())
}

// Complete records the answers and assigns the personality type
// @Summary Complete assessment
// @Tags assessment
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CompleteRequest true "Answers by question id"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /assessment/complete [post]
func (h *AssessmentHandler) Complete(c *gin.Context) {
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	profile, err := h.assessmentUseCase.Complete(c.Request.Context(), req.Answers)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case err == domain.ErrProfileNotFound:
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to complete assessment"})
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}
