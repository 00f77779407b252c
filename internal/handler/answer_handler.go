package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"askhub/internal/auth"
	"askhub/internal/errors"
	"askhub/internal/model"
	"askhub/internal/service"
)

// AnswerHandler handles answer endpoints, including acceptance.
type AnswerHandler struct {
	answerService service.AnswerService
	acceptService service.AcceptService
}

// NewAnswerHandler creates a new answer handler.
func NewAnswerHandler(answerService service.AnswerService, acceptService service.AcceptService) *AnswerHandler {
	return &AnswerHandler{
		answerService: answerService,
		acceptService: acceptService,
	}
}

// CreateAnswerRequest represents a new answer with its visibility settings.
type CreateAnswerRequest struct {
	Body                 string   `json:"body" validate:"required"`
	VisibilityType       string   `json:"visibility_type,omitempty" validate:"omitempty,oneof=public roles departments specific_users team"`
	VisibleToRoles       []string `json:"visible_to_roles,omitempty"`
	VisibleToDepartments []string `json:"visible_to_departments,omitempty"`
	VisibleToUsers       []uint   `json:"visible_to_users,omitempty"`
}

// AcceptAnswerRequest names the answer to accept.
type AcceptAnswerRequest struct {
	AnswerID string `json:"answer_id" validate:"required,uuid"`
}

// CreateAnswer godoc
// @Summary Post an answer to a question
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param request body CreateAnswerRequest true "Answer data"
// @Success 201 {object} model.Answer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /questions/{id}/answers [post]
func (h *AnswerHandler) CreateAnswer(c echo.Context) error {
	viewer, err := auth.RequireViewer(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid question ID",
			Code:  "INVALID_UUID",
		})
	}

	var req CreateAnswerRequest
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

	answer, err := h.answerService.CreateAnswer(c.Request().Context(), viewer.ID, questionID, service.NewAnswerInput{
		Body:                 req.Body,
		VisibilityType:       model.VisibilityType(req.VisibilityType),
		VisibleToRoles:       req.VisibleToRoles,
		VisibleToDepartments: req.VisibleToDepartments,
		VisibleToUsers:       req.VisibleToUsers,
	})
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, answer)
}

// ListAnswers godoc
// @Summary List a question's answers visible to the requester
// @Tags answers
// @Produce json
// @Param id path string true "Question ID"
// @Success 200 {array} model.Answer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /questions/{id}/answers [get]
func (h *AnswerHandler) ListAnswers(c echo.Context) error {
	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid question ID",
			Code:  "INVALID_UUID",
		})
	}

	// Anonymous viewers are allowed; they only see public answers.
	viewer := auth.ViewerFromContext(c)

	answers, err := h.answerService.ListAnswers(c.Request().Context(), questionID, viewer)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, answers)
}

// GetAnswer godoc
// @Summary Get an answer by ID, if visible to the requester
// @Tags answers
// @Produce json
// @Param id path string true "Answer ID"
// @Success 200 {object} model.Answer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /answers/{id} [get]
func (h *AnswerHandler) GetAnswer(c echo.Context) error {
	answerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid answer ID",
			Code:  "INVALID_UUID",
		})
	}

	viewer := auth.ViewerFromContext(c)

	answer, err := h.answerService.GetAnswer(c.Request().Context(), answerID, viewer)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, answer)
}

// AcceptAnswer godoc
// @Summary Accept an answer for a question
// @Tags answers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Question ID"
// @Param request body AcceptAnswerRequest true "Answer to accept"
// @Success 200 {object} model.Answer
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /questions/{id}/accept [post]
func (h *AnswerHandler) AcceptAnswer(c echo.Context) error {
	viewer, err := auth.RequireViewer(c)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	questionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid question ID",
			Code:  "INVALID_UUID",
		})
	}

	var req AcceptAnswerRequest
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

	answerID, err := uuid.Parse(req.AnswerID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid answer_id",
			Code:  "INVALID_UUID",
		})
	}

	answer, err := h.acceptService.AcceptAnswer(c.Request().Context(), viewer.ID, questionID, answerID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, answer)
}
