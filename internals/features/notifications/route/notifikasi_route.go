// file: internals/features/notifications/route/notifikasi_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	notifikasiController "lingkunganku_backend/internals/features/notifications/controller"
)

func NotifikasiRoutes(router fiber.Router, db *gorm.DB) {
	ctl := notifikasiController.NewNotifikasiController(db)

	notif := router.Group("/notifikasi")
	notif.Get("/", ctl.List)
	notif.Post("/:id/read", ctl.MarkRead)
	notif.Post("/read-all", ctl.MarkAllRead)
	notif.Post("/broadcast", ctl.Broadcast)
}
