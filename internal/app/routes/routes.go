package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/learnhub/internal/app/controllers"
	"github.com/yigit/learnhub/internal/app/models"
	"github.com/yigit/learnhub/internal/middleware"
)

// Controllers bundles every HTTP handler set mounted by SetupRouter.
type Controllers struct {
	Auth       *controllers.AuthController
	Course     *controllers.CourseController
	Lecture    *controllers.LectureController
	User       *controllers.UserController
	QuizResult *controllers.QuizResultController
	Statistics *controllers.StatisticsController
	FinalTest  *controllers.FinalTestController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers, authMiddleware *middleware.AuthMiddleware) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", c.Auth.Register)
		auth.POST("/login", c.Auth.Login)
		auth.POST("/refresh", c.Auth.RefreshToken)
	}

	v1.GET("/courses", c.Course.ListCourses)
	v1.GET("/courses/:id", c.Course.GetCourse)
	v1.GET("/teachers", c.User.ListTeachers)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", c.Auth.Me)

		courses := authenticated.Group("/courses")
		{
			courses.POST("/:id/enrollment", c.User.EnrollSelf)
			courses.DELETE("/:id/enrollment", c.User.UnenrollSelf)

			courses.GET("/:id/final-test", c.FinalTest.GetFinalTest)
			courses.POST("/:id/final-test/results", c.FinalTest.SubmitFinalTest)
			courses.GET("/:id/final-test/results", c.FinalTest.ListFinalTestResults)

			// Ownership is checked per course inside the handlers
			staff := courses.Group("")
			staff.Use(authMiddleware.RoleRequired(models.RoleTeacher, models.RoleAdmin))
			{
				staff.POST("", c.Course.CreateCourse)
				staff.PUT("/:id", c.Course.UpdateCourse)
				staff.DELETE("/:id", c.Course.DeleteCourse)
				staff.PUT("/:id/final-test", c.FinalTest.SaveFinalTest)
			}
		}

		lectures := authenticated.Group("/lectures")
		{
			lectures.GET("", c.Lecture.ListLectures)
			lectures.GET("/:id", c.Lecture.GetLecture)
			lectures.POST("/:id/attempts", c.Lecture.SubmitAttempt)

			staff := lectures.Group("")
			staff.Use(authMiddleware.RoleRequired(models.RoleTeacher, models.RoleAdmin))
			{
				staff.POST("", c.Lecture.CreateLecture)
				staff.PUT("/:id", c.Lecture.UpdateLecture)
				staff.DELETE("/:id", c.Lecture.DeleteLecture)
			}
		}

		users := authenticated.Group("/users")
		{
			users.GET("/:email", c.User.GetUser)
			users.PUT("/:email", c.User.UpdateEnrollments)
			users.DELETE("/:email", c.User.DeleteEnrollment)
		}

		quizResults := authenticated.Group("/quiz-results")
		{
			quizResults.POST("", c.QuizResult.CreateQuizResult)
			quizResults.GET("", c.QuizResult.ListQuizResults)
		}

		statistics := authenticated.Group("/statistics")
		{
			statistics.GET("/student", c.Statistics.StudentStatistics)
			statistics.GET("/teacher", c.Statistics.TeacherStatistics)
		}
	}
}
