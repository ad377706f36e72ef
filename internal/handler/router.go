package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/wordup-api/internal/middleware"
	"github.com/noah-isme/wordup-api/internal/models"
)

// Handlers groups every HTTP handler mounted under the API prefix.
type Handlers struct {
	Auth    *AuthHandler
	Word    *WordHandler
	User    *UserHandler
	Class   *ClassHandler
	Task    *TaskHandler
	Score   *ScoreHandler
	Metrics *MetricsHandler
}

// RegisterRoutes mounts the API on group. Reads are public; mutations require a
// teacher or admin token; account management and status require an admin token.
func RegisterRoutes(api *gin.RouterGroup, h Handlers, tokens middleware.TokenValidator) {
	authRequired := middleware.JWT(tokens)
	staff := []gin.HandlerFunc{authRequired, middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin)}
	adminOnly := []gin.HandlerFunc{authRequired, middleware.RequireRoles(models.RoleAdmin)}

	api.GET("/health", h.Metrics.Health)
	api.GET("/status", append(adminOnly, h.Metrics.Status)...)

	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/register/student", h.Auth.RegisterStudent)
	auth.POST("/register/teacher", h.Auth.RegisterTeacher)
	auth.POST("/register/admin", h.Auth.RegisterAdmin)
	auth.POST("/logout", middleware.OptionalJWT(tokens), h.Auth.Logout)
	auth.GET("/me", authRequired, h.Auth.Me)

	words := api.Group("/words")
	words.GET("/", h.Word.List)
	words.GET("/search", h.Word.Search)
	words.GET("/export", append(staff, h.Word.Export)...)
	words.GET("/:id", h.Word.Get)
	words.POST("/", append(staff, h.Word.Create)...)
	words.POST("/batch", append(staff, h.Word.BatchImport)...)
	words.PUT("/:id", append(staff, h.Word.Update)...)
	words.DELETE("/:id", append(staff, h.Word.Delete)...)

	users := api.Group("/users", adminOnly...)
	users.GET("/all", h.User.ListAll)
	users.GET("/students", h.User.ListStudents)
	users.GET("/teachers", h.User.ListTeachers)
	users.POST("/create", h.User.Create)
	users.PUT("/:type/:id", h.User.Update)
	users.DELETE("/:type/:id", h.User.Delete)

	classes := api.Group("/classes")
	classes.GET("/", h.Class.List)
	classes.POST("/", append(staff, h.Class.Create)...)

	tasks := api.Group("/tasks")
	tasks.GET("/", h.Task.List)
	tasks.POST("/", append(staff, h.Task.Create)...)

	scores := api.Group("/scores")
	scores.GET("/", h.Score.List)
	scores.POST("/", append(staff, h.Score.Create)...)

	api.GET("/wrongbooks/", h.Score.ListWrongBooks)
}
