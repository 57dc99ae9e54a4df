package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
	"github.com/kirubhashini2006-coder/internship-portal/internal/store"
	"github.com/kirubhashini2006-coder/internship-portal/internal/utilities"
	"github.com/kirubhashini2006-coder/internship-portal/internal/workflow"
)

// StartSession opens a submission session with freshly allocated identifiers.
// @Summary Start a submission session
// @Tags Workflow
// @Produce json
// @Success 201 {object} workflow.Session
// @Router /workflow/sessions [post]
func (pc *PortalController) StartSession(c *gin.Context) {
	c.JSON(http.StatusCreated, pc.Workflow.Start())
}

// GetSession returns the current state of a submission session.
// @Summary Get a submission session
// @Tags Workflow
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} workflow.Session
// @Failure 404 {object} utilities.ErrorResponse "Submission session not found"
// @Router /workflow/sessions/{id} [get]
func (pc *PortalController) GetSession(c *gin.Context) {
	s, err := pc.Workflow.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, s)
}

// UpdateSession merges form fields into the session draft.
// @Summary Update the session draft
// @Description Non-empty fields of the body are merged in; identifier and status fields are ignored and the end date is recomputed
// @Tags Workflow
// @Accept json
// @Produce json
// @Param id path string true "Session id"
// @Param draft body model.ApplicationRecord true "Form fields"
// @Success 200 {object} workflow.Session
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 404 {object} utilities.ErrorResponse "Submission session not found"
// @Failure 409 {object} utilities.ErrorResponse "Session already confirmed"
// @Router /workflow/sessions/{id} [put]
func (pc *PortalController) UpdateSession(c *gin.Context) {
	var patch model.ApplicationRecord
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	s, err := pc.Workflow.Update(c.Param("id"), patch)
	if err != nil {
		pc.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// AdvanceSession moves the session to the undertaking stage.
// @Summary Advance to the undertaking
// @Description Runs the form validation; the first failing rule is returned and the session stays on the form
// @Tags Workflow
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} workflow.Session
// @Failure 404 {object} utilities.ErrorResponse "Submission session not found"
// @Failure 409 {object} utilities.ErrorResponse "Not on the form stage"
// @Failure 422 {object} utilities.ErrorResponse "Validation message for the student"
// @Router /workflow/sessions/{id}/advance [post]
func (pc *PortalController) AdvanceSession(c *gin.Context) {
	s, err := pc.Workflow.Advance(c.Param("id"))
	if err != nil {
		pc.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// BackSession returns the session from the undertaking to the form.
// @Summary Go back to the form
// @Tags Workflow
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} workflow.Session
// @Failure 404 {object} utilities.ErrorResponse "Submission session not found"
// @Failure 409 {object} utilities.ErrorResponse "Not on the undertaking stage"
// @Router /workflow/sessions/{id}/back [post]
func (pc *PortalController) BackSession(c *gin.Context) {
	s, err := pc.Workflow.Back(c.Param("id"))
	if err != nil {
		pc.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// SubmitSession stores the assembled record.
// @Summary Submit the application
// @Tags Workflow
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} workflow.Session
// @Failure 404 {object} utilities.ErrorResponse "Submission session not found"
// @Failure 409 {object} utilities.ErrorResponse "Wrong stage or gate pass number already entered"
// @Failure 500 {object} utilities.ErrorResponse "Persistence error"
// @Router /workflow/sessions/{id}/submit [post]
func (pc *PortalController) SubmitSession(c *gin.Context) {
	s, err := pc.Workflow.Submit(c.Request.Context(), c.Param("id"))
	if err != nil {
		pc.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// AddAnotherStudent prepares the session for the next member of the group.
// @Summary Add another student to the group
// @Description Keeps the training and referral details of the group, blanks the personal fields and allocates fresh identifiers
// @Tags Workflow
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} workflow.Session
// @Failure 404 {object} utilities.ErrorResponse "Submission session not found"
// @Failure 409 {object} utilities.ErrorResponse "Nothing submitted yet"
// @Router /workflow/sessions/{id}/add-another [post]
func (pc *PortalController) AddAnotherStudent(c *gin.Context) {
	s, err := pc.Workflow.AddAnother(c.Param("id"))
	if err != nil {
		pc.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// NewGroupSession resets the session for a fresh group.
// @Summary Start a new group
// @Tags Workflow
// @Produce json
// @Param id path string true "Session id"
// @Success 200 {object} workflow.Session
// @Failure 404 {object} utilities.ErrorResponse "Submission session not found"
// @Router /workflow/sessions/{id}/new-group [post]
func (pc *PortalController) NewGroupSession(c *gin.Context) {
	s, err := pc.Workflow.NewGroup(c.Param("id"))
	if err != nil {
		pc.respondWorkflowError(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

// respondWorkflowError maps workflow errors onto status codes. Validation
// messages reach the student verbatim.
func (pc *PortalController) respondWorkflowError(c *gin.Context, err error) {
	var verr *workflow.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, utilities.ErrorResponse{Error: verr.Reason})
	case errors.Is(err, workflow.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error()})
	case errors.Is(err, workflow.ErrWrongStage), errors.Is(err, store.ErrDuplicateID):
		c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to store record: " + err.Error(),
		})
	}
}
