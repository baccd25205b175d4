// file: internals/features/finance/iuran/route/iuran_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"lingkunganku_backend/internals/constants"
	iuranController "lingkunganku_backend/internals/features/finance/iuran/controller"
	authMiddleware "lingkunganku_backend/internals/middlewares/auth"
)

// IuranRoutes mendaftarkan endpoint setelan iuran, pembayaran, dan tunggakan.
// Gate capability dipasang di route; controller tetap memverifikasi ulang.
func IuranRoutes(router fiber.Router, db *gorm.DB) {
	settingCtl := iuranController.NewIuranSettingController(db)
	paymentCtl := iuranController.NewIuranPaymentController(db)
	tunggakanCtl := iuranController.NewTunggakanController(db)

	iuran := router.Group("/iuran")

	onlyPengaturIuran := authMiddleware.OnlyCapability(
		constants.RoleErrorBendahara("nominal iuran"), constants.CapManageDues)
	onlyPencatat := authMiddleware.OnlyCapability(
		constants.RoleErrorBendahara("pembayaran iuran"), constants.CapRecordPayment)

	// 🧾 Setelan nominal per (jenis, tahun)
	iuran.Post("/setting", onlyPengaturIuran, settingCtl.SetDues)
	iuran.Get("/setting", settingCtl.Get)

	// 💰 Pembayaran
	iuran.Post("/payment", onlyPencatat, paymentCtl.Record)
	iuran.Get("/payment", paymentCtl.List)
	iuran.Delete("/payment/:id", onlyPencatat, paymentCtl.Delete)
	iuran.Post("/payment/:id/setor", onlyPencatat, paymentCtl.MarkSubmitted)

	// 📊 Tunggakan
	iuran.Get("/tunggakan", tunggakanCtl.Live)
	iuran.Get("/tunggakan/cache", tunggakanCtl.CacheSummary)
}
