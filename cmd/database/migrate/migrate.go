package migration

import (
	"WasteLess-API/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Fridge{}); err != nil {
		log.Fatalf("Error migrating fridge database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FridgeUser{}); err != nil {
		log.Fatalf("Error migrating fridge user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Product{}); err != nil {
		log.Fatalf("Error migrating product database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.QRCode{}); err != nil {
		log.Fatalf("Error migrating qr code database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.FridgeItem{}); err != nil {
		log.Fatalf("Error migrating fridge item database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Notification{}); err != nil {
		log.Fatalf("Error migrating notification database: %v", err)
		return err
	}

	// One unsent notification per (item, user, type). The generator relies on
	// this index to stay idempotent under concurrent scans.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_unsent_notification
		ON notifications (item_id, user_id, type) WHERE sent = false;`)

	fmt.Println("Database migration complete")
	return nil
}
