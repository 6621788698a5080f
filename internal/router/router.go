package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/classora/classora-backend/internal/config"
	"github.com/classora/classora-backend/internal/handler"
	"github.com/classora/classora-backend/internal/middleware"
	"github.com/classora/classora-backend/internal/response"
	"github.com/classora/classora-backend/internal/service"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Auth       *handler.AuthHandler
	Tenant     *handler.TenantHandler
	Student    *handler.StudentHandler
	Teacher    *handler.TeacherHandler
	Class      *handler.ClassHandler
	Attendance *handler.AttendanceHandler
	User       *handler.UserHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(
	authService *service.AuthService,
	handlers *Handlers,
	pool *pgxpool.Pool,
	rdb *redis.Client,
	cfg *config.Config,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Health check with dependency probes.
	router.GET("/health", func(c *gin.Context) {
		ctx := c.Request.Context()
		dbStatus := "ok"
		if err := pool.Ping(ctx); err != nil {
			dbStatus = "down"
		}
		redisStatus := "ok"
		if err := rdb.Ping(ctx).Err(); err != nil {
			redisStatus = "down"
		}
		response.Success(c, http.StatusOK, "OK", gin.H{
			"status":   "ok",
			"database": dbStatus,
			"redis":    redisStatus,
		})
	})

	// Rate limiter for the unauthenticated routes, per IP.
	authLimiter := middleware.NewRateLimiter(rdb, "auth", cfg.AuthRatePerMinute, time.Minute)

	router.POST("/tenants/register", authLimiter.Middleware(), handlers.Tenant.Register)

	auth := router.Group("/auth")
	{
		auth.POST("/login", authLimiter.Middleware(), handlers.Auth.Login)
		auth.GET("/me", middleware.RequireAuth(authService), middleware.RequireTenant(), handlers.Auth.Me)
	}

	// Everything below is tenant-scoped. The same chain guards every group:
	// authenticate, resolve the tenant, then check the role policy per route.
	requireAuth := middleware.RequireAuth(authService)
	requireTenant := middleware.RequireTenant()

	students := router.Group("/students", requireAuth, requireTenant)
	{
		students.GET("/search", middleware.Authorize(middleware.ResourceStudents, middleware.OpList), handlers.Student.Search)
		students.GET("/class/:classId", middleware.Authorize(middleware.ResourceStudents, middleware.OpList), handlers.Student.ListByClass)
		students.GET("", middleware.Authorize(middleware.ResourceStudents, middleware.OpList), handlers.Student.List)
		students.POST("", middleware.Authorize(middleware.ResourceStudents, middleware.OpCreate), handlers.Student.Create)
		students.GET("/:id", middleware.Authorize(middleware.ResourceStudents, middleware.OpRead), handlers.Student.Get)
		students.PUT("/:id", middleware.Authorize(middleware.ResourceStudents, middleware.OpUpdate), handlers.Student.Update)
		students.DELETE("/:id", middleware.Authorize(middleware.ResourceStudents, middleware.OpDelete), handlers.Student.Delete)
	}

	teachers := router.Group("/teachers", requireAuth, requireTenant)
	{
		teachers.GET("/search", middleware.Authorize(middleware.ResourceTeachers, middleware.OpList), handlers.Teacher.Search)
		teachers.GET("/role/:role", middleware.Authorize(middleware.ResourceTeachers, middleware.OpList), handlers.Teacher.ListByRole)
		teachers.GET("", middleware.Authorize(middleware.ResourceTeachers, middleware.OpList), handlers.Teacher.List)
		teachers.POST("", middleware.Authorize(middleware.ResourceTeachers, middleware.OpCreate), handlers.Teacher.Create)
		teachers.GET("/:id", middleware.Authorize(middleware.ResourceTeachers, middleware.OpRead), handlers.Teacher.Get)
		teachers.PUT("/:id", middleware.Authorize(middleware.ResourceTeachers, middleware.OpUpdate), handlers.Teacher.Update)
		teachers.DELETE("/:id", middleware.Authorize(middleware.ResourceTeachers, middleware.OpDelete), handlers.Teacher.Delete)
	}

	classes := router.Group("/classes", requireAuth, requireTenant)
	{
		classes.GET("/teacher/:teacherId", middleware.Authorize(middleware.ResourceClasses, middleware.OpList), handlers.Class.ListByTeacher)
		classes.GET("", middleware.Authorize(middleware.ResourceClasses, middleware.OpList), handlers.Class.List)
		classes.POST("", middleware.Authorize(middleware.ResourceClasses, middleware.OpCreate), handlers.Class.Create)
		classes.GET("/:id", middleware.Authorize(middleware.ResourceClasses, middleware.OpRead), handlers.Class.Get)
		classes.PUT("/:id", middleware.Authorize(middleware.ResourceClasses, middleware.OpUpdate), handlers.Class.Update)
		classes.DELETE("/:id", middleware.Authorize(middleware.ResourceClasses, middleware.OpDelete), handlers.Class.Delete)
	}

	attendance := router.Group("/attendance", requireAuth, requireTenant)
	{
		attendance.GET("", middleware.Authorize(middleware.ResourceAttendance, middleware.OpList), handlers.Attendance.List)
		attendance.POST("", middleware.Authorize(middleware.ResourceAttendance, middleware.OpCreate), handlers.Attendance.Create)
		attendance.GET("/:id", middleware.Authorize(middleware.ResourceAttendance, middleware.OpRead), handlers.Attendance.Get)
		attendance.PUT("/:id", middleware.Authorize(middleware.ResourceAttendance, middleware.OpUpdate), handlers.Attendance.Update)
		attendance.DELETE("/:id", middleware.Authorize(middleware.ResourceAttendance, middleware.OpDelete), handlers.Attendance.Delete)
	}

	users := router.Group("/users", requireAuth, requireTenant)
	{
		users.GET("", middleware.Authorize(middleware.ResourceUsers, middleware.OpList), handlers.User.List)
		users.POST("", middleware.Authorize(middleware.ResourceUsers, middleware.OpCreate), handlers.User.Create)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, "Route not found")
	})

	return router
}
