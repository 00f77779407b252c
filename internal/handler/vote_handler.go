package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"askhub/internal/auth"
	"askhub/internal/errors"
	"askhub/internal/service"
)

// VoteHandler handles vote endpoints.
type VoteHandler struct {
	voteService service.VoteService
}

// NewVoteHandler creates a new vote handler.
func NewVoteHandler(voteService service.VoteService) *VoteHandler {
	return &VoteHandler{voteService: voteService}
}

// VoteRequest represents a vote cast. Exactly one of question_id/answer_id
// must be set. A value of 0 clears any existing vote.
type VoteRequest struct {
	QuestionID string `json:"question_id,omitempty" validate:"omitempty,uuid"`
	AnswerID   string `json:"answer_id,omitempty" validate:"omitempty,uuid"`
	Value      *int   `json:"value" validate:"required,min=-1,max=1"`
}

// CastVote godoc
// @Summary Cast, change or remove a vote on a question or answer
// @Tags votes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VoteRequest true "Vote data"
// @Success 200 {object} service.VoteResult
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /votes [post]
func (h *VoteHandler) CastVote(c echo.Context) error {
	viewer, err := auth.RequireViewer(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	var req VoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	var target service.VoteTarget
	if req.QuestionID != "" {
		questionID, err := uuid.Parse(req.QuestionID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid question_id",
				Code:  "INVALID_UUID",
			})
		}
		target.QuestionID = &questionID
	}
	if req.AnswerID != "" {
		answerID, err := uuid.Parse(req.AnswerID)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
				Error: "invalid answer_id",
				Code:  "INVALID_UUID",
			})
		}
		target.AnswerID = &answerID
	}

	result, err := h.voteService.CastVote(c.Request().Context(), viewer.ID, target, *req.Value)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, result)
}
