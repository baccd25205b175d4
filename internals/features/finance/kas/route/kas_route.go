// file: internals/features/finance/kas/route/kas_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/constants"
	kasController "lingkunganku_backend/internals/features/finance/kas/controller"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"
)

// KasRoutes mendaftarkan endpoint buku kas Lingkungan & IKATA.
// Gate capability dipasang di route; controller tetap memverifikasi ulang.
func KasRoutes(router fiber.Router, db *gorm.DB) {
	ctl := kasController.NewKasTransaksiController(db)

	kas := router.Group("/kas")

	onlyBendahara := authMiddleware.OnlyCapability(
		constants.RoleErrorBendahara("transaksi kas"), constants.CapManageTransaction)
	onlyKetua := authMiddleware.OnlyCapability(
		constants.RoleErrorKetua("persetujuan transaksi"), constants.CapApproveTransaction)
	onlySuperUser := authMiddleware.OnlyRoles(
		constants.RoleErrorSuperUser("unlock transaksi"), constants.SuperUserOnly...)

	// 📒 Transaksi
	kas.Post("/transaksi", onlyBendahara, ctl.Create)
	kas.Get("/transaksi", ctl.List)
	kas.Put("/transaksi/:id", onlyBendahara, ctl.Update)
	kas.Delete("/transaksi/:id", onlyBendahara, ctl.Delete)

	// 🏁 Saldo awal (sekali per kas)
	kas.Post("/saldo-awal", onlyBendahara, ctl.CreateSaldoAwal)

	// ✅ Persetujuan
	kas.Post("/transaksi/:id/approve", onlyKetua, ctl.Approve)
	kas.Post("/transaksi/:id/reject", onlyKetua, ctl.Reject)
	kas.Post("/transaksi/:id/unlock", onlySuperUser, ctl.Unlock)

	// 📊 Meta & laporan
	kas.Get("/categories", ctl.ListCategories)
	kas.Get("/summary", ctl.Summary)
}
