// Package auth implements the office login and the access key it hands out.
package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kirubhashini2006-coder/internship-portal/internal/utilities"
)

// LocalAuthHandler checks the configured office credential and issues the
// access key the admin routes require. The password is kept only as a bcrypt
// hash for the process lifetime.
type LocalAuthHandler struct {
	adminEmail   string
	passwordHash string
	accessKey    string
	log          *zap.Logger
}

// NewLocalAuthHandler hashes the configured password and fixes the access
// key. An empty accessKey gets a random one minted, so a portal without the
// variable set still refuses unauthenticated admin calls.
func NewLocalAuthHandler(adminEmail, adminPassword, accessKey string, log *zap.Logger) (*LocalAuthHandler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	hash, err := utilities.HashPassword(adminPassword)
	if err != nil {
		return nil, err
	}
	if accessKey == "" {
		accessKey = uuid.NewString()
		log.Warn("ACCESS_KEY not configured, minted a random key for this run")
	}
	return &LocalAuthHandler{
		adminEmail:   adminEmail,
		passwordHash: hash,
		accessKey:    accessKey,
		log:          log,
	}, nil
}

// AccessKey returns the key admin requests must present.
func (lh *LocalAuthHandler) AccessKey() string {
	return lh.accessKey
}

type loginInfo struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginResponse struct {
	AccessKey string `json:"access_key"`
}

// Login function handles the office login by receiving email and password
// @Summary Handles office login by receiving email and password
// @Description On success returns the access key for the admin endpoints
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Office credential"
// @Success 200 {object} loginResponse
// @Failure 400 {object} utilities.ErrorResponse "Email and password must be provided"
// @Failure 401 {object} utilities.ErrorResponse "Credential rejected"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) Login(c *gin.Context) {
	var info loginInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Email and password must be provided",
		})
		return
	}

	if !strings.EqualFold(info.Email, lh.adminEmail) || !utilities.VerifyPassword(lh.passwordHash, info.Password) {
		lh.log.Info("login rejected", zap.String("email", info.Email))
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Invalid email or password",
		})
		return
	}

	c.JSON(http.StatusOK, loginResponse{AccessKey: lh.accessKey})
}
