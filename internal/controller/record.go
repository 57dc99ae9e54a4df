package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kirubhashini2006-coder/internship-portal/internal/idgen"
	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
	"github.com/kirubhashini2006-coder/internship-portal/internal/report"
	"github.com/kirubhashini2006-coder/internship-portal/internal/store"
	"github.com/kirubhashini2006-coder/internship-portal/internal/utilities"
)

type recordListResponse struct {
	Records []model.ApplicationRecord `json:"records"`
	Count   int                       `json:"count"`
}

// ListRecords returns the stored applications, filtered by the query.
// @Summary List application records
// @Description Optional query params: term (matched against gate pass id, application no and student name), from and to (YYYY-MM-DD, against the submission date)
// @Tags Record
// @Produce json
// @Param Authorization header string true "Insert your access key" default(Bearer <your access key>)
// @Param term query string false "Search term"
// @Param from query string false "Submitted on or after"
// @Param to query string false "Submitted on or before (whole day)"
// @Success 200 {object} recordListResponse
// @Failure 401 {object} utilities.ErrorResponse "Invalid access key"
// @Router /records [get]
func (pc *PortalController) ListRecords(c *gin.Context) {
	records := report.Apply(pc.Store.All(), report.Filter{
		Term: c.Query("term"),
		From: c.Query("from"),
		To:   c.Query("to"),
	})

	c.JSON(http.StatusOK, recordListResponse{Records: records, Count: len(records)})
}

// GetRecord returns one application by gate pass id.
// @Summary Get one application record
// @Tags Record
// @Produce json
// @Param Authorization header string true "Insert your access key" default(Bearer <your access key>)
// @Param id path string true "Gate pass id"
// @Success 200 {object} model.ApplicationRecord
// @Failure 404 {object} utilities.ErrorResponse "No record with this gate pass id"
// @Router /records/{id} [get]
func (pc *PortalController) GetRecord(c *gin.Context) {
	rec, ok := pc.Store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{
			Error: store.ErrNotFound.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// CreateRecord inserts a record directly, the office-side entry path that
// bypasses the student workflow. Blank identifiers are allocated.
// @Summary Create an application record directly
// @Description Missing id, application number and created_at are filled in by the office
// @Tags Record
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access key" default(Bearer <your access key>)
// @Param record body model.ApplicationRecord true "Record to store"
// @Success 201 {object} model.ApplicationRecord
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 409 {object} utilities.ErrorResponse "Gate pass number already entered"
// @Failure 500 {object} utilities.ErrorResponse "Persistence error"
// @Router /records [post]
func (pc *PortalController) CreateRecord(c *gin.Context) {
	var rec model.ApplicationRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	if rec.ID == "" {
		rec.ID = idgen.NextGatePassID(pc.Store.IDs())
	}
	if rec.ApplicationNo == "" {
		rec.ApplicationNo = idgen.NextApplicationNo(pc.Store.ApplicationNos())
	}
	if rec.GroupID == "" {
		rec.GroupID = idgen.NewGroupID()
	}
	if rec.Status == "" {
		rec.Status = model.StatusPending
	}
	if rec.CreatedAt == "" {
		rec.CreatedAt = pc.Now().Format(time.RFC3339)
	}

	if err := pc.Store.Append(c.Request.Context(), rec); err != nil {
		if errors.Is(err, store.ErrDuplicateID) {
			c.JSON(http.StatusConflict, utilities.ErrorResponse{Error: err.Error()})
			return
		}
		pc.Log.Error("create record failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to store record: " + err.Error(),
		})
		return
	}

	stored, _ := pc.Store.Get(rec.ID)
	c.JSON(http.StatusCreated, stored)
}

// UpdateRecord replaces the stored record for the gate pass id in the path.
// @Summary Update an application record
// @Description The submission timestamp cannot be changed
// @Tags Record
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access key" default(Bearer <your access key>)
// @Param id path string true "Gate pass id"
// @Param record body model.ApplicationRecord true "Full replacement record"
// @Success 200 {object} model.ApplicationRecord
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 404 {object} utilities.ErrorResponse "No record with this gate pass id"
// @Failure 500 {object} utilities.ErrorResponse "Persistence error"
// @Router /records/{id} [put]
func (pc *PortalController) UpdateRecord(c *gin.Context) {
	var rec model.ApplicationRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}
	rec.ID = c.Param("id")

	if err := pc.Store.Update(c.Request.Context(), rec); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to store record: " + err.Error(),
		})
		return
	}

	stored, _ := pc.Store.Get(rec.ID)
	c.JSON(http.StatusOK, stored)
}

// DeleteRecord removes the record for the gate pass id in the path.
// @Summary Delete an application record
// @Tags Record
// @Produce json
// @Param Authorization header string true "Insert your access key" default(Bearer <your access key>)
// @Param id path string true "Gate pass id"
// @Success 200 {object} utilities.MessageResponse
// @Failure 404 {object} utilities.ErrorResponse "No record with this gate pass id"
// @Failure 500 {object} utilities.ErrorResponse "Persistence error"
// @Router /records/{id} [delete]
func (pc *PortalController) DeleteRecord(c *gin.Context) {
	if err := pc.Store.Remove(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to store record: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Record deleted"})
}
