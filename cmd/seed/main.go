package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"stayhub/internal/database"
	"stayhub/internal/domain"
	"stayhub/internal/repository"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "stayhub.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := repository.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM listings")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	users := repository.NewUserRepository(db)
	listings := repository.NewListingRepository(db)
	bookings := repository.NewBookingRepository(db)

	// ================== USERS ==================
	log.Println("Creating users...")

	admin := mustUser(ctx, users, "Platform Admin", "admin@stayhub.io", "admin123", domain.RoleAdmin)

	vendors := []*domain.User{
		mustUser(ctx, users, "Harbor Hotels", "harbor@stayhub.io", "vendor123", domain.RoleVendor),
		mustUser(ctx, users, "Saffron Kitchen", "saffron@stayhub.io", "vendor123", domain.RoleVendor),
	}

	customers := []*domain.User{
		mustUser(ctx, users, "Alice Turner", "alice@example.com", "customer123", domain.RoleCustomer),
		mustUser(ctx, users, "Omar Haddad", "omar@example.com", "customer123", domain.RoleCustomer),
	}

	// ================== LISTINGS ==================
	log.Println("Creating listings...")

	seedListings := []domain.Listing{
		{
			VendorID: vendors[0].ID,
			Type:     domain.ListingHotel,
			Name:     "Harborview Hotel",
			Address: domain.Address{
				Street: "12 Quay Street",
				City:   "Portsmouth",
				State:  "NH",
				Zip:    "03801",
			},
			Contact:      "+1 603 555 0101",
			Description:  "Waterfront rooms with harbor views",
			Facilities:   []string{"wifi", "parking", "breakfast"},
			Pricing:      189.0,
			Availability: true,
			Images:       []string{"/uploads/seed-harborview.jpg"},
		},
		{
			VendorID: vendors[0].ID,
			Type:     domain.ListingHotel,
			Name:     "Harbor Annex Suites",
			Address: domain.Address{
				Street: "14 Quay Street",
				City:   "Portsmouth",
				State:  "NH",
				Zip:    "03801",
			},
			Contact:      "+1 603 555 0102",
			Description:  "Extended stay suites next to the main hotel",
			Facilities:   []string{"wifi", "kitchenette"},
			Pricing:      249.0,
			Availability: true,
			Images:       []string{"/uploads/seed-annex.jpg"},
		},
		{
			VendorID: vendors[1].ID,
			Type:     domain.ListingRestaurant,
			Name:     "Saffron Kitchen",
			Address: domain.Address{
				Street: "88 Market Square",
				City:   "Portsmouth",
				State:  "NH",
				Zip:    "03801",
			},
			Contact:      "+1 603 555 0202",
			Description:  "Modern Middle Eastern dining",
			Facilities:   []string{"outdoor seating", "vegan options"},
			Pricing:      45.0,
			Availability: true,
			Images:       []string{"/uploads/seed-saffron.jpg"},
		},
	}
	for i := range seedListings {
		if err := listings.Create(ctx, &seedListings[i]); err != nil {
			log.Fatal("seed listing failed:", err)
		}
	}

	// ================== BOOKINGS ==================
	log.Println("Creating bookings...")

	statuses := []domain.BookingStatus{domain.BookingPending, domain.BookingConfirmed, domain.BookingCancelled}
	for i := 0; i < 6; i++ {
		l := seedListings[rand.Intn(len(seedListings))]
		c := customers[rand.Intn(len(customers))]

		checkIn := time.Now().AddDate(0, 0, 1+rand.Intn(30)).Truncate(24 * time.Hour)
		b := domain.Booking{
			CustomerID:  c.ID,
			ListingID:   l.ID,
			TotalPrice:  l.Pricing,
			Status:      statuses[rand.Intn(len(statuses))],
			CheckInDate: checkIn,
		}
		if l.Type == domain.ListingHotel {
			b.UnitType = "Rooms"
			checkOut := checkIn.AddDate(0, 0, 1+rand.Intn(4))
			b.CheckOutDate = &checkOut
			b.TotalPrice = l.Pricing * float64(1+rand.Intn(4))
		} else {
			b.UnitType = "Tables"
			b.BookingTime = fmt.Sprintf("%02d:00", 18+rand.Intn(4))
		}

		if err := bookings.Create(ctx, &b); err != nil {
			log.Fatal("seed booking failed:", err)
		}
	}

	log.Println("Seed completed!")
	log.Println("Test accounts:")
	log.Printf("Admin:     %s / admin123", admin.Email)
	log.Println("Vendors:   harbor@stayhub.io, saffron@stayhub.io / vendor123")
	log.Println("Customers: alice@example.com, omar@example.com / customer123")
}

func mustUser(ctx context.Context, repo *repository.UserRepository, name, email, password string, role domain.Role) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("hash failed:", err)
	}

	u := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatal("seed user failed:", err)
	}
	return u
}
