package database

import (
	"fmt"
	"log"

	"github.com/kilatwash/washpos-api/internal/config"
	"github.com/kilatwash/washpos-api/internal/domain/entity"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Account entities
		&entity.User{},

		// Customer entities
		&entity.MembershipType{},
		&entity.Customer{},
		&entity.CustomerVehicle{},

		// Catalog entities
		&entity.EngineClass{},
		&entity.HelmetType{},
		&entity.CarSize{},
		&entity.ApparelType{},
		&entity.ServiceItem{},
		&entity.PriceMatrix{},
		&entity.FdItem{},
		&entity.Product{},

		// Transaction entities
		&entity.Shift{},
		&entity.WorkOrder{},
		&entity.WorkOrderService{},
		&entity.WorkOrderFd{},
		&entity.WashTransaction{},
		&entity.WashTransactionProduct{},
		&entity.POSTransaction{},
		&entity.POSTransactionItem{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := createPartialIndexes(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// createPartialIndexes adds the uniqueness guarantees GORM tags cannot
// express: at most one active shift per user, at most one completed
// settlement per wash transaction, and one price row per full dimension
// tuple. All hold under concurrent writers.
func createPartialIndexes(db *gorm.DB) error {
	statements := []string{
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_shifts_one_active_per_user
			ON shifts (user_id) WHERE status = 'active'`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_pos_one_completed_per_wash
			ON pos_transactions (wash_transaction_id)
			WHERE status = 'completed' AND wash_transaction_id IS NOT NULL AND deleted_at IS NULL`,
		// NULLS NOT DISTINCT so two rows with the same wildcard tuple
		// collide instead of both inserting.
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_price_matrix_tuple
			ON price_matrix (service_item_id, engine_class_id, helmet_type_id, car_size_id, apparel_type_id)
			NULLS NOT DISTINCT`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create partial index: %w", err)
		}
	}
	return nil
}

// SeedDefaultData seeds the database with default data (dimensions, membership
// tiers, admin user)
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	seedDimension := func(create func(name string) error, table string, names []string) {
		for _, name := range names {
			var count int64
			db.Table(table).Where("name = ?", name).Count(&count)
			if count == 0 {
				if err := create(name); err != nil {
					log.Printf("Warning: failed to seed %s %q: %v", table, name, err)
				}
			}
		}
	}

	seedDimension(func(name string) error {
		return db.Create(&entity.EngineClass{Name: name}).Error
	}, "engine_classes", []string{"< 150cc", "150cc - 250cc", "> 250cc"})

	seedDimension(func(name string) error {
		return db.Create(&entity.HelmetType{Name: name}).Error
	}, "helmet_types", []string{"half face", "full face", "modular"})

	seedDimension(func(name string) error {
		return db.Create(&entity.CarSize{Name: name}).Error
	}, "car_sizes", []string{"small", "medium", "SUV"})

	seedDimension(func(name string) error {
		return db.Create(&entity.ApparelType{Name: name}).Error
	}, "apparel_types", []string{"jacket", "shoes", "bag"})

	memberships := []entity.MembershipType{
		{Name: "Regular", DurationDays: 30, Price: 100000, IsPremium: false},
		{Name: "Premium", DurationDays: 30, Price: 250000, IsPremium: true},
	}
	for i := range memberships {
		var existing entity.MembershipType
		if err := db.Where("name = ?", memberships[i].Name).First(&existing).Error; err != nil {
			if err := db.Create(&memberships[i]).Error; err != nil {
				log.Printf("Warning: failed to create membership type %s: %v", memberships[i].Name, err)
			}
		}
	}

	// Create admin user if configured via environment variables
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail != "" && adminPassword != "" {
		var existingAdmin entity.User
		if err := db.Where("email = ?", adminEmail).First(&existingAdmin).Error; err != nil {
			hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
			if err != nil {
				log.Printf("Warning: failed to hash admin password: %v", err)
			} else {
				if adminName == "" {
					adminName = "Administrator"
				}
				adminUser := entity.User{
					Name:     adminName,
					Email:    adminEmail,
					Password: string(hashedPassword),
					Role:     "admin",
					IsActive: true,
				}
				if err := db.Create(&adminUser).Error; err != nil {
					log.Printf("Warning: failed to create admin user: %v", err)
				} else {
					log.Printf("Admin user created: %s", adminEmail)
				}
			}
		} else {
			log.Printf("Admin user already exists: %s", adminEmail)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
