// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/constants"
	iuranRoute "lingkunganku_backend/internals/features/finance/iuran/route"
	kasRoute "lingkunganku_backend/internals/features/finance/kas/route"
	notifikasiRoute "lingkunganku_backend/internals/features/notifications/route"
	keluargaRoute "lingkunganku_backend/internals/features/umat/keluarga/route"
	authRoute "lingkunganku_backend/internals/features/users/auth/route"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== AUTH BASE =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== PRIVATE (semua user login) =====================
	// Notifikasi + bacaan data umat. Role di klaim JWT harus salah satu role
	// aplikasi; klaim asing ditolak di gate.
	log.Println("[INFO] Setting up PRIVATE group (/api/u)...")
	private := app.Group("/api/u",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles("Role tidak dikenal", constants.AllRoles...),
	)

	// ===================== PENGURUS (/api/a) =====================
	// Gate role pengurus di group; otorisasi granular tetap capability-based
	// per route/controller, sehingga sekretaris tidak bisa menyentuh kas dan
	// sebaliknya.
	log.Println("[INFO] Setting up PENGURUS group (/api/a)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(
			constants.RoleErrorPengurus("administrasi lingkungan"),
			constants.PengurusRoles...),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Keluarga routes...")
	keluargaRoute.KeluargaUserRoutes(private, db)
	keluargaRoute.KeluargaAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Iuran routes...")
	iuranRoute.IuranRoutes(admin, db)

	log.Println("[INFO] Mounting Kas routes...")
	kasRoute.KasRoutes(admin, db)

	log.Println("[INFO] Mounting Notifikasi routes...")
	notifikasiRoute.NotifikasiRoutes(private, db)
}
