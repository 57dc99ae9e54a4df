// Package controller implements the HTTP handlers of the placement portal.
package controller

import (
	"time"

	"go.uber.org/zap"

	"github.com/kirubhashini2006-coder/internship-portal/internal/store"
	"github.com/kirubhashini2006-coder/internship-portal/internal/workflow"
)

// PortalController holds the record store and workflow manager the handlers
// operate on. Now is the clock used by the recency and dashboard views;
// tests freeze it.
type PortalController struct {
	Store    *store.RecordStore
	Workflow *workflow.Manager
	Log      *zap.Logger
	Now      func() time.Time
}

// NewPortalController creates a new instance of PortalController over the
// provided store and workflow manager.
func NewPortalController(st *store.RecordStore, wf *workflow.Manager, log *zap.Logger) *PortalController {
	if log == nil {
		log = zap.NewNop()
	}
	return &PortalController{
		Store:    st,
		Workflow: wf,
		Log:      log,
		Now:      time.Now,
	}
}
