package academics

import (
	"github.com/gofiber/fiber/v2"

	"github.com/rosemaria96/SmartCampusSystem/app/routes/auth"
)

func SetupAcademicsRoutes(app *fiber.App) {
	api := app.Group("/api/academics")
	api.Use(auth.AuthMiddleware)

	api.Get("/departments", GetDepartmentsAPI)
	api.Post("/departments", CreateDepartmentAPI)

	api.Get("/courses", GetCoursesAPI)
	api.Post("/courses", CreateCourseAPI)
	api.Get("/courses/:id/semesters", GetCourseSemestersAPI)

	api.Get("/semesters/:id/subjects", GetSemesterSubjectsAPI)
	api.Post("/subjects", CreateSubjectAPI)
	api.Post("/subjects/:id/teachers", AssignTeacherAPI)
	api.Get("/teachers", GetTeachersAPI)
	api.Get("/teachers/:id/subjects", GetTeacherSubjectsAPI)
}
