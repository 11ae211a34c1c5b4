// file: internals/features/classes/classes/route/class_session_route.go
package route

import (
	"fitzone_backend/internals/constants"
	controller "fitzone_backend/internals/features/classes/classes/controller"
	authMiddleware "fitzone_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ClassUserRoutes: every authenticated member can browse the catalog in
// their region. Base: /api/u
func ClassUserRoutes(user fiber.Router, db *gorm.DB) {
	classController := controller.NewClassSessionController(db)

	classes := user.Group("/classes")
	classes.Get("/", classController.ListClasses)
	classes.Get("/:id", classController.GetClassByID)
}

// ClassAdminRoutes: staff manage the catalog. Base: /api/a
func ClassAdminRoutes(admin fiber.Router, db *gorm.DB) {
	classController := controller.NewClassSessionController(db)

	classes := admin.Group("/classes",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("class management"), constants.StaffRoles...),
	)

	// staff browse through the same scoped listing the member side uses
	classes.Get("/", classController.ListClasses)
	classes.Get("/:id", classController.GetClassByID)
	classes.Post("/", classController.CreateClass)
	classes.Patch("/:id", classController.UpdateClass)
	classes.Delete("/:id", classController.DeleteClass)
}
