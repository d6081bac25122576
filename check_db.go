package main

import (
	"fmt"
	"log"

	"ussurochki/internal/app/ds"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	db, err := gorm.Open(sqlite.Open("data/ussurochki.db"), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}

	var clients []ds.Client
	err = db.Order("name").Find(&clients).Error
	if err != nil {
		log.Fatal("Failed to get clients:", err)
	}

	fmt.Println("Clients in database:")
	for _, client := range clients {
		var orders int64
		db.Model(&ds.MklOrder{}).Where("client_id = ?", client.ID).Count(&orders)
		fmt.Printf("ID: %d, Name: %s, Phone: %s, Orders: %d\n", client.ID, client.Name, client.Phone, orders)
	}
}
