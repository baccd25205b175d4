// file: internals/seeds/runner.go
package seeds

import (
	users "lingkunganku_backend/internals/seeds/users"

	"gorm.io/gorm"
)

// RunAllSeeds dijalankan manual saat setup awal (SEED=true di env).
func RunAllSeeds(db *gorm.DB) {
	//* User
	users.SeedUsersFromJSON(db, "internals/seeds/users/data_users.json")
}
