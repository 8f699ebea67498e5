package handler

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/threadcraft/internal/db"
	"github.com/threadcraft/internal/service"
)

const (
	sessionKeyAdminID  = "admin_id"
	sessionKeyUsername = "username"
)

// ShowLoginPage renders the login form.
func ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"title": "Admin Login",
	})
}

// Login verifies the submitted credentials and establishes a session. The
// failure message never says whether the username or the password was wrong.
func (a *API) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	admin, err := a.auth.Authenticate(username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.HTML(http.StatusUnauthorized, "login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}
		c.Error(err)
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin Login",
			"error": "An error occurred during login",
		})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyAdminID, admin.ID)
	session.Set(sessionKeyUsername, admin.Username)
	if err := session.Save(); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"title": "Admin Login",
			"error": "Failed to save session",
		})
		return
	}

	c.Redirect(http.StatusFound, "/admin")
}

// Logout clears the session.
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/admin/login")
}

// ShowDashboard renders the admin dashboard with all sections in display
// order.
func (a *API) ShowDashboard(c *gin.Context) {
	sections, err := a.sections.ListOrdered()
	if err != nil {
		c.Error(err)
		c.String(http.StatusInternalServerError, "An error occurred while loading the dashboard")
		return
	}

	session := sessions.Default(c)
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"title":     "Dashboard",
		"username":  session.Get(sessionKeyUsername),
		"sections":  sections,
		"flashes":   takeFlashes(c),
		"maxLength": db.MaxSectionContentLength,
	})
}

// ChangePassword updates the signed-in administrator's password after
// re-checking the current one.
func (a *API) ChangePassword(c *gin.Context) {
	adminID, ok := currentAdminID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/admin/login")
		return
	}

	current := c.PostForm("current_password")
	next := c.PostForm("new_password")

	if err := a.auth.ChangePassword(adminID, current, next); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			addFlash(c, "Current password is incorrect")
		case errors.Is(err, service.ErrPasswordMissing):
			addFlash(c, "New password is required")
		default:
			c.Error(err)
			addFlash(c, "An error occurred while changing the password")
		}
		c.Redirect(http.StatusFound, "/admin")
		return
	}

	addFlash(c, "Password updated successfully")
	c.Redirect(http.StatusFound, "/admin")
}

// AuthRequired rejects requests without an authenticated session. An expired
// session cookie looks the same as no session at all.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(sessionKeyAdminID) == nil {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func currentAdminID(c *gin.Context) (uint, bool) {
	session := sessions.Default(c)
	id, ok := session.Get(sessionKeyAdminID).(uint)
	return id, ok
}
