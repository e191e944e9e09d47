package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/Yadavallitejas/tourist-guard/internal/models/request_models"
	"github.com/Yadavallitejas/tourist-guard/internal/services"
	"github.com/Yadavallitejas/tourist-guard/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// RegisterTourist godoc
// @Summary Register a new tourist
// @Description Create a tourist account with profile, emergency contacts and optional photo
// @Tags Accounts
// @Accept mpfd
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/register/tourist [post]
func (a *AccountController) RegisterTourist(c *gin.Context) {
	var req request_models.RegisterTouristRequest
	if err := c.ShouldBind(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	var photo *services.Upload
	if file, err := c.FormFile("photo"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Unreadable photo upload")
			return
		}
		defer f.Close()
		photo = &services.Upload{
			Reader:      f,
			Size:        file.Size,
			ContentType: file.Header.Get("Content-Type"),
			Name:        file.Filename,
		}
	}

	token, err := a.accountService.RegisterTourist(c.Request.Context(), req, photo)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Tourist account created successfully")
}

// RegisterPolice godoc
// @Summary Register a new police user
// @Description Create a police account; requires a valid registration key
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /accounts/register/police [post]
func (a *AccountController) RegisterPolice(c *gin.Context) {
	var req request_models.RegisterPoliceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.RegisterPolice(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Police account created successfully")
}

// Login godoc
// @Summary Login
// @Description Authenticate a user and return a token
// @Tags Accounts
// @Accept json
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /accounts/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"token": token}, "Login successful")
}
