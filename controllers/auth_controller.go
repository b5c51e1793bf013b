// Package controllers controllers/auth_controller.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go-event-portal/backend"
	"go-event-portal/logger"
	"go-event-portal/models"
	"go-event-portal/session"
)

// AuthController handles sign in, registration and sign out.
type AuthController struct {
	Backend backend.Client
}

// NewAuthController creates an AuthController backed by client.
func NewAuthController(client backend.Client) *AuthController {
	return &AuthController{Backend: client}
}

type loginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

type registerForm struct {
	Firstname       string `form:"firstname" binding:"required"`
	Lastname        string `form:"lastname" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=5"`
	ConfirmPassword string `form:"confirmPassword" binding:"required,eqfield=Password"`
	ReferralCode    string `form:"referralCode"`
}

// ---------------- login ----------------

// ShowLogin renders the login form.
func (ac *AuthController) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", page(c, gin.H{"Email": ""}))
}

// PerformLogin authenticates against the backend and starts a session.
func (ac *AuthController) PerformLogin(c *gin.Context) {
	var form loginForm
	trimFormFields(c, "email")
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", page(c, gin.H{
			"FormErrors": validationMessages(err),
			"Email":      form.Email,
		}))
		return
	}

	res, err := ac.Backend.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		logger.Warn.Printf("PerformLogin: login failed for %s: %v", form.Email, err)
		c.HTML(statusFor(err, http.StatusUnauthorized), "login.html", page(c, gin.H{
			"FormErrors": []string{userMessage(err, msgLoginFailed)},
			"Email":      form.Email,
		}))
		return
	}

	acc := session.FromContext(c)
	if err := acc.Login(res.Token, res.User); err != nil {
		status, msg := http.StatusInternalServerError, msgInternal
		if errors.Is(err, session.ErrUnknownRole) {
			status, msg = http.StatusBadGateway, msgUnknownRole
		}
		logger.Error.Printf("PerformLogin: storing session for %s failed: %v", form.Email, err)
		c.HTML(status, "login.html", page(c, gin.H{
			"FormErrors": []string{msg},
			"Email":      form.Email,
		}))
		return
	}

	logger.Info.Printf("PerformLogin: %s signed in as %s", form.Email, res.User.Role)
	welcome := res.Message
	if welcome == "" {
		welcome = "Welcome!"
	}
	session.Flash(c, session.FlashSuccess, welcome)
	c.Redirect(http.StatusFound, landingPath(res))
}

// landingPath prefers the backend's redirect and falls back to the role's
// home page.
func landingPath(res *backend.LoginResult) string {
	if res.RedirectPath != "" {
		return res.RedirectPath
	}
	if role, _ := models.ParseRole(res.User.Role); role == models.RoleAdmin {
		return DashboardPath
	}
	return session.HomePath
}

// ---------------- registration ----------------

// ShowRegister renders the registration form.
func (ac *AuthController) ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", page(c, gin.H{"Form": registerForm{}}))
}

// PerformRegister validates the form and creates the account on the backend.
func (ac *AuthController) PerformRegister(c *gin.Context) {
	var form registerForm
	trimFormFields(c, "firstname", "lastname", "email", "referralCode")
	if err := c.ShouldBind(&form); err != nil {
		c.HTML(http.StatusBadRequest, "register.html", page(c, gin.H{
			"FormErrors": validationMessages(err),
			"Form":       form,
		}))
		return
	}

	res, err := ac.Backend.Register(c.Request.Context(), backend.RegisterRequest{
		Firstname:    form.Firstname,
		Lastname:     form.Lastname,
		Email:        form.Email,
		Password:     form.Password,
		ReferralCode: form.ReferralCode,
	})
	if err != nil {
		logger.Warn.Printf("PerformRegister: registration failed for %s: %v", form.Email, err)
		c.HTML(statusFor(err, http.StatusBadRequest), "register.html", page(c, gin.H{
			"FormErrors": []string{userMessage(err, msgRegisterFailed)},
			"Form":       form,
		}))
		return
	}

	logger.Info.Printf("PerformRegister: account created for %s", form.Email)
	msg := res.Message
	if msg == "" {
		msg = "Account created!"
	}
	session.Flash(c, session.FlashSuccess, msg)
	c.Redirect(http.StatusFound, session.LoginPath)
}

// ---------------- logout ----------------

// Logout clears the session and returns to the login page.
func (ac *AuthController) Logout(c *gin.Context) {
	email, _ := session.FromContext(c).Email()
	if err := session.FromContext(c).Logout(); err != nil {
		logger.Error.Printf("Logout: Error saving session during logout: %v", err)
	} else if email != "" {
		logger.Info.Printf("Logout: %s signed out", email)
	}
	c.Redirect(http.StatusFound, session.LoginPath)
}
