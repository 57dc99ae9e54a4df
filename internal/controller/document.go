package controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kirubhashini2006-coder/internship-portal/internal/store"
	"github.com/kirubhashini2006-coder/internship-portal/internal/utilities"
)

type documentUpload struct {
	// Data is the scanned copy as a base64 data URL.
	Data string `json:"data" binding:"required"`
}

// UploadDocument attaches a scanned document to a record under the document
// type in the path. Re-uploading the same type replaces the copy on file.
// @Summary Attach a document to a record
// @Tags Document
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access key" default(Bearer <your access key>)
// @Param id path string true "Gate pass id"
// @Param doc_type path string true "Document type, e.g. iom_copy or payment_proof"
// @Param document body documentUpload true "Base64 data URL of the scanned copy"
// @Success 200 {object} model.ApplicationRecord
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 404 {object} utilities.ErrorResponse "No record with this gate pass id"
// @Failure 500 {object} utilities.ErrorResponse "Persistence error"
// @Router /records/{id}/documents/{doc_type} [post]
func (pc *PortalController) UploadDocument(c *gin.Context) {
	var upload documentUpload
	if err := c.ShouldBindJSON(&upload); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Document data must be provided",
		})
		return
	}

	docType := strings.TrimSpace(c.Param("doc_type"))
	if docType == "" {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Document type must be provided",
		})
		return
	}

	rec, ok := pc.Store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: store.ErrNotFound.Error()})
		return
	}

	if rec.Documents == nil {
		rec.Documents = map[string]string{}
	}
	rec.Documents[docType] = upload.Data

	if err := pc.Store.Update(c.Request.Context(), rec); err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: "Failed to store record: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, rec)
}

// DeleteDocument detaches a document from a record.
// @Summary Remove a document from a record
// @Tags Document
// @Produce json
// @Param Authorization header string true "Insert your access key" default(Bearer <your access key>)
// @Param id path string true "Gate pass id"
// @Param doc_type path string true "Document type"
// @Success 200 {object} model.ApplicationRecord
// @Failure 404 {object} utilities.ErrorResponse "No record or no such document"
// @Failure 500 {object} utilities.ErrorResponse "Persistence error"
// @Router /records/{id}/documents/{doc_type} [delete]
func (pc *PortalController) DeleteDocument(c *gin.Context) {
	rec, ok := pc.Store.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{Error: store.ErrNotFound.Error()})
		return
	}

	docType := c.Param("doc_type")
	if _, ok := rec.Documents[docType]; !ok {
		c.JSON(http.StatusNotFound, utilities.ErrorResponse{
			Error: "No document of this type on file",
		})
		return
	}
	delete(rec.Documents, docType)

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

	c.JSON(http.StatusOK, rec)
}
