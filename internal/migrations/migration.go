package migrations

import (
	"log"

	"github.com/BackspaceAditya/JustEat/internal/models"
	"github.com/BackspaceAditya/JustEat/internal/repository"
	"github.com/BackspaceAditya/JustEat/internal/services"

	"gorm.io/gorm"
)

// Reset drops and recreates all tables, then seeds demo data.
func Reset(db *gorm.DB) error {
	log.Println("Running database migrations...")

	log.Println("Dropping existing tables...")
	err := db.Migrator().DropTable(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		log.Printf("Warning: Error dropping tables: %v", err)
	}

	log.Println("Creating tables...")
	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return err
	}

	if err := seedDemoData(db); err != nil {
		log.Printf("Warning: Failed to seed demo data: %v", err)
	}

	log.Println("Database migrations completed successfully!")
	return nil
}

// seedDemoData creates a demo customer, a demo restaurant owner with a
// restaurant, and a small menu.
func seedDemoData(db *gorm.DB) error {
	log.Println("Seeding demo data...")

	store := repository.NewStore(db)
	userService := services.NewUserService(store)

	existing, err := store.Users().GetByUsername("demo_customer")
	if err == nil && existing != nil {
		log.Println("Demo data already present")
		return nil
	}

	customer := &models.User{
		Username: "demo_customer",
		Email:    "customer@example.com",
		Role:     string(models.RoleCustomer),
		IsActive: true,
	}
	if err := userService.Register(customer, "customer123"); err != nil {
		return err
	}

	owner := &models.User{
		Username: "demo_owner",
		Email:    "owner@example.com",
		Role:     string(models.RoleRestaurantOwner),
		IsActive: true,
	}
	if err := userService.Register(owner, "owner123"); err != nil {
		return err
	}

	restaurant := &models.Restaurant{
		OwnerID:     owner.ID,
		Name:        "Spice Garden",
		Description: "Home-style Indian kitchen",
		CuisineType: "Indian",
		Address:     "12 Market Street",
		IsActive:    true,
	}
	if err := store.Restaurants().Create(restaurant); err != nil {
		return err
	}

	menu := []models.MenuItem{
		{RestaurantID: restaurant.ID, Name: "Butter Chicken", Description: "Creamy tomato gravy", PriceCents: 1250, Category: "Mains", IsAvailable: true},
		{RestaurantID: restaurant.ID, Name: "Palak Paneer", Description: "Spinach and cottage cheese", PriceCents: 1050, Category: "Mains", IsVegetarian: true, IsAvailable: true},
		{RestaurantID: restaurant.ID, Name: "Garlic Naan", PriceCents: 350, Category: "Breads", IsVegetarian: true, IsAvailable: true},
		{RestaurantID: restaurant.ID, Name: "Mango Lassi", PriceCents: 450, Category: "Drinks", IsVegetarian: true, IsGlutenFree: true, IsAvailable: true},
		{RestaurantID: restaurant.ID, Name: "Gulab Jamun", PriceCents: 400, Category: "Desserts", IsVegetarian: true, IsAvailable: true, IsSpecial: true},
	}
	for i := range menu {
		if err := store.Menu().Create(&menu[i]); err != nil {
			return err
		}
	}

	log.Println("Demo data seeded:")
	log.Println("  customer: demo_customer / customer123")
	log.Println("  owner:    demo_owner / owner123")
	return nil
}
