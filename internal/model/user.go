package model

import "time"

// Role names match the values stored in users.role and carried in JWT claims.
const (
	RoleAdmin                = "ADMIN"
	RoleProcurementManager   = "GESTIONNAIRE_APPROVISIONNEMENT"
	RoleLogisticsSupervisor  = "SUPERVISEUR_LOGISTIQUE"
	RoleProductionManager    = "CHEF_PRODUCTION"
	RoleProductionSupervisor = "SUPERVISEUR_PRODUCTION"
	RoleSalesManager         = "GESTIONNAIRE_COMMERCIAL"
	RoleDeliverySupervisor   = "SUPERVISEUR_LIVRAISONS"
)

// User stores system users with role-based access.
type User struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(40);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (User) TableName() string { return "users" }

// All returns every persisted model, in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&User{},
		&RawMaterial{},
		&Supplier{},
		&SupplyOrder{},
		&Product{},
		&BillOfMaterial{},
		&ProductionOrder{},
		&Customer{},
		&Order{},
		&Delivery{},
	}
}
