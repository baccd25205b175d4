package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	keluargaController "lingkunganku_backend/internals/features/umat/keluarga/controller"
)

// KeluargaUserRoutes: baca data kepala keluarga — semua role yang login.
func KeluargaUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := keluargaController.NewKeluargaUmatController(db)

	g := r.Group("/keluarga")
	g.Get("/", ctl.List)
	g.Get("/:id", ctl.GetByID)
}

// KeluargaAdminRoutes: mutasi data kepala keluarga — pengurus
// (capability ManageMembers dicek di controller).
func KeluargaAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := keluargaController.NewKeluargaUmatController(db)

	g := r.Group("/keluarga")
	g.Post("/", ctl.Create)
	g.Put("/:id", ctl.Update)
	g.Patch("/:id/status", ctl.MutasiStatus)
}
