package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kirubhashini2006-coder/internship-portal/internal/model"
	"github.com/kirubhashini2006-coder/internship-portal/internal/report"
)

type dashboardResponse struct {
	Stats   report.Stats              `json:"stats"`
	Records []model.ApplicationRecord `json:"records"`
}

// Dashboard returns the head-count tiles and the recent records, the view the
// office lands on. Recent means submitted within the last seven days.
// @Summary Dashboard stats and recent records
// @Tags Report
// @Produce json
// @Param Authorization header string true "Insert your access key" default(Bearer <your access key>)
// @Param term query string false "Search term"
// @Param from query string false "Submitted on or after"
// @Param to query string false "Submitted on or before (whole day)"
// @Success 200 {object} dashboardResponse
// @Failure 401 {object} utilities.ErrorResponse "Invalid access key"
// @Router /dashboard [get]
func (pc *PortalController) Dashboard(c *gin.Context) {
	all := pc.Store.All()
	recent, _ := report.Classify(all, pc.Now())
	recent = report.Apply(recent, report.Filter{
		Term: c.Query("term"),
		From: c.Query("from"),
		To:   c.Query("to"),
	})

	c.JSON(http.StatusOK, dashboardResponse{
		Stats:   report.Count(all, pc.Now()),
		Records: recent,
	})
}

// Archive returns the records older than the recency window.
// @Summary Archived records
// @Description Records submitted more than seven days ago, with the same filtering as the record list
// @Tags Report
// @Produce json
// @Param Authorization header string true "Insert your access key" default(Bearer <your access key>)
// @Param term query string false "Search term"
// @Param from query string false "Submitted on or after"
// @Param to query string false "Submitted on or before (whole day)"
// @Success 200 {object} recordListResponse
// @Failure 401 {object} utilities.ErrorResponse "Invalid access key"
// @Router /archive [get]
func (pc *PortalController) Archive(c *gin.Context) {
	_, archived := report.Classify(pc.Store.All(), pc.Now())
	archived = report.Apply(archived, report.Filter{
		Term: c.Query("term"),
		From: c.Query("from"),
		To:   c.Query("to"),
	})

	c.JSON(http.StatusOK, recordListResponse{Records: archived, Count: len(archived)})
}

// FinancialReport returns the fee ledger rollup.
// @Summary Financial summary
// @Description Consolidated fee total with breakdowns by department and category, filtered like the record list
// @Tags Report
// @Produce json
// @Param Authorization header string true "Insert your access key" default(Bearer <your access key>)
// @Param term query string false "Search term"
// @Param from query string false "Submitted on or after"
// @Param to query string false "Submitted on or before (whole day)"
// @Success 200 {object} report.FinancialSummary
// @Failure 401 {object} utilities.ErrorResponse "Invalid access key"
// @Router /reports/financial [get]
func (pc *PortalController) FinancialReport(c *gin.Context) {
	records := report.Apply(pc.Store.All(), report.Filter{
		Term: c.Query("term"),
		From: c.Query("from"),
		To:   c.Query("to"),
	})

	c.JSON(http.StatusOK, report.Aggregate(records))
}
