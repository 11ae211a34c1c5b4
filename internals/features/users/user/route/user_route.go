// file: internals/features/users/user/route/user_route.go
package route

import (
	"fitzone_backend/internals/constants"
	controller "fitzone_backend/internals/features/users/user/controller"
	authMiddleware "fitzone_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserAdminRoutes mounts staff-account management under the admin group.
func UserAdminRoutes(admin fiber.Router, db *gorm.DB) {
	userController := controller.NewUserController(db)

	users := admin.Group("/users",
		authMiddleware.OnlyRoles(constants.RoleErrorStaff("user management"), constants.StaffRoles...),
	)

	// managers see their region's members; account creation stays admin-only
	users.Get("/", userController.ListUsers)
	users.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("user creation"), constants.AdminOnly...),
		userController.CreateUser)
}
