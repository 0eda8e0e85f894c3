package main

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotelier/internal/database"
	"hotelier/internal/domain"
)

func main() {
	db, err := database.Connect("hotelier.db")
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db,
		&domain.User{},
		&domain.PasswordReset{},
		&domain.Hotel{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM password_resets")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	alice := createUser(db, "Alice", "Durand", "alice@hotelier.local", "password123")
	bob := createUser(db, "Bob", "Martin", "bob@hotelier.local", "password123")

	log.Println("Creating hotels...")
	hotels := []domain.Hotel{
		{UserID: alice.ID, Name: "Hotel Paradise", Address: "12 Paradise Avenue, Cotonou", Email: "contact@paradise.bj", Phone: "+229 21 30 00 01", PricePerNight: 45000, Currency: domain.CurrencyCFA, Status: domain.StatusActive},
		{UserID: alice.ID, Name: "Blue Lagoon Resort", Address: "Route des Pêches, Ouidah", Email: "booking@bluelagoon.bj", Phone: "+229 21 30 00 02", PricePerNight: 120, Currency: domain.CurrencyEUR, Status: domain.StatusActive},
		{UserID: alice.ID, Name: "Downtown Budget Inn", Address: "5 Market Street, Porto-Novo", Email: "stay@budgetinn.bj", Phone: "+229 21 30 00 03", PricePerNight: 55, Currency: domain.CurrencyUSD, Status: domain.StatusInactive},
		{UserID: bob.ID, Name: "Grand Palace", Address: "1 Independence Square, Cotonou", Email: "front@grandpalace.bj", Phone: "+229 21 30 00 04", PricePerNight: 250, Currency: domain.CurrencyUSD, Status: domain.StatusActive},
	}
	for i := range hotels {
		if err := db.Create(&hotels[i]).Error; err != nil {
			log.Fatal("hotel create failed:", err)
		}
	}

	// One tombstoned hotel so trashed listings and statistics have data.
	trashed := domain.Hotel{UserID: alice.ID, Name: "Closed Doors Lodge", Address: "Old Harbour Road, Cotonou", Email: "info@closeddoors.bj", Phone: "+229 21 30 00 05", PricePerNight: 30000, Currency: domain.CurrencyCFA, Status: domain.StatusActive}
	if err := db.Create(&trashed).Error; err != nil {
		log.Fatal("hotel create failed:", err)
	}
	if err := db.Model(&domain.Hotel{}).Where("id = ?", trashed.ID).
		Updates(map[string]interface{}{"status": domain.StatusInactive, "deleted_at": time.Now()}).Error; err != nil {
		log.Fatal("hotel soft delete failed:", err)
	}

	log.Println("Seed complete.")
	log.Println("  alice@hotelier.local / password123")
	log.Println("  bob@hotelier.local / password123")
}

func createUser(db *gorm.DB, firstName, lastName, email, password string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}
	user := domain.User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatal("user create failed:", err)
	}
	return &user
}
