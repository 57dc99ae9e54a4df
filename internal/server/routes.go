// Package server contain implementation of go-gin-server and each route handlers
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kirubhashini2006-coder/internship-portal/internal/middleware"
)

// RegisterRoutes will register each http endpoint routes to bound Server instance
func (s *Server) RegisterRoutes() http.Handler {
	if s.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     s.cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Access-Key"},
		AllowCredentials: true,
	}))

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		authRoute := v1.Group("/auth")
		{
			authRoute.POST("login", s.auth.Login)
		}

		// Student-facing routes, no access key required
		v1.GET("colleges", s.portal.Colleges)
		v1.GET("options", s.portal.FormOptions)
		wfRoute := v1.Group("/workflow/sessions")
		{
			wfRoute.POST("", s.portal.StartSession)
			wfRoute.GET(":id", s.portal.GetSession)
			wfRoute.PUT(":id", middleware.SizeLimit(s.cfg.MaxUploadBytes), s.portal.UpdateSession)
			wfRoute.POST(":id/advance", s.portal.AdvanceSession)
			wfRoute.POST(":id/back", s.portal.BackSession)
			wfRoute.POST(":id/submit", s.portal.SubmitSession)
			wfRoute.POST(":id/add-another", s.portal.AddAnotherStudent)
			wfRoute.POST(":id/new-group", s.portal.NewGroupSession)
		}

		// Office routes behind the access key
		needAdmin := v1.Group("")
		{
			needAdmin.Use(middleware.RequireAccessKey(s.auth.AccessKey()))

			recordRoute := needAdmin.Group("/records")
			{
				recordRoute.GET("", s.portal.ListRecords)
				recordRoute.POST("", s.portal.CreateRecord)
				recordRoute.GET(":id", s.portal.GetRecord)
				recordRoute.PUT(":id", s.portal.UpdateRecord)
				recordRoute.DELETE(":id", s.portal.DeleteRecord)
				recordRoute.POST(":id/documents/:doc_type", middleware.SizeLimit(s.cfg.MaxUploadBytes), s.portal.UploadDocument)
				recordRoute.DELETE(":id/documents/:doc_type", s.portal.DeleteDocument)
			}

			needAdmin.GET("dashboard", s.portal.Dashboard)
			needAdmin.GET("archive", s.portal.Archive)
			needAdmin.GET("reports/financial", s.portal.FinancialReport)
		}
	}

	return r
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "up",
		"backend": s.cfg.StorageBackend,
	})
}
