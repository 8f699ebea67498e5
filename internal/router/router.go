package router

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/threadcraft/internal/config"
	"github.com/threadcraft/internal/handler"
	"gorm.io/gorm"
)

const (
	// sessionMaxAge bounds admin session inactivity to 30 minutes.
	sessionMaxAge = 30 * 60

	// maxRequestBytes caps the request body at 16 MiB, enforced before any
	// upload reaches the section update path.
	maxRequestBytes = 16 << 20
)

// SetupRouter configures the gin engine and routes.
func SetupRouter(cfg config.AppConfig, gdb *gorm.DB) *gin.Engine {
	r := gin.Default()

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions("threadcraft_session", store))

	r.MaxMultipartMemory = maxRequestBytes
	r.Use(limitRequestBody(maxRequestBytes))

	r.LoadHTMLGlob(cfg.TemplateGlob)
	r.Static("/static", cfg.StaticDir)

	api := handler.NewAPI(gdb, cfg.UploadDir, cfg.UploadURLPath)

	r.GET("/", api.ShowHome)
	r.GET("/healthz", api.HealthCheck)

	admin := r.Group("/admin")
	{
		admin.GET("/login", handler.ShowLoginPage)
		admin.POST("/login", api.Login)
		admin.GET("/logout", handler.Logout)

		auth := admin.Group("")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("", api.ShowDashboard)
			auth.POST("/update/:id", api.UpdateSection)
			auth.POST("/password", api.ChangePassword)
		}
	}

	return r
}

// limitRequestBody rejects request bodies larger than limit before the
// handlers parse them.
func limitRequestBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		c.Next()
	}
}
