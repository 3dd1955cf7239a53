package repositories

import (
	"time"

	"haveli_pos_backend/internal/models"
	"haveli_pos_backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Seed loads the demo venue data: per-unit menus, the restaurant's two
// inventory tiers, the staff roster and the console login accounts.
// Intended for dev/demo runs; a deployment would load its own catalog.
func Seed(catalog CatalogRepository, inventory InventoryRepository, staff StaffRepository, users UserRepository) {
	seedCatalog(catalog)
	seedInventory(inventory)
	seedStaff(staff)
	seedUsers(users)
}

func strPtr(s string) *string  { return &s }
func boolPtr(b bool) *bool     { return &b }
func stockPtr(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func seedCatalog(catalog CatalogRepository) {
	catalog.ReplaceItems(models.UnitRestaurant, []models.MenuItem{
		{ID: uuid.NewString(), Name: "Butter Chicken", LocalName: "बटर चिकन", Price: 320, Unit: models.UnitRestaurant, SubCategory: strPtr("Mains"), IsAvailable: true, IsVeg: boolPtr(false), IsRecommended: true},
		{ID: uuid.NewString(), Name: "Dal Makhani", LocalName: "दाल मखनी", Price: 220, Unit: models.UnitRestaurant, SubCategory: strPtr("Mains"), IsAvailable: true, IsVeg: boolPtr(true), IsRecommended: true},
		{ID: uuid.NewString(), Name: "Paneer Tikka", LocalName: "पनीर टिक्का", Price: 260, Unit: models.UnitRestaurant, SubCategory: strPtr("Starters"), IsAvailable: true, IsVeg: boolPtr(true)},
		{ID: uuid.NewString(), Name: "Tandoori Roti", LocalName: "तंदूरी रोटी", Price: 25, Unit: models.UnitRestaurant, SubCategory: strPtr("Breads"), IsAvailable: true, IsVeg: boolPtr(true)},
		{ID: uuid.NewString(), Name: "Jeera Rice", LocalName: "जीरा चावल", Price: 160, Unit: models.UnitRestaurant, SubCategory: strPtr("Rice"), IsAvailable: true, IsVeg: boolPtr(true)},
		{ID: uuid.NewString(), Name: "Masala Chai", LocalName: "मसाला चाय", Price: 30, Unit: models.UnitRestaurant, SubCategory: strPtr("Beverages"), IsAvailable: true, IsVeg: boolPtr(true)},
	})

	catalog.ReplaceItems(models.UnitBar, []models.MenuItem{
		{ID: uuid.NewString(), Name: "Royal Stag", LocalName: "रॉयल स्टैग", Price: 90, Unit: models.UnitBar, SubCategory: strPtr("Whisky"), IsAvailable: true, Stock: stockPtr(12)},
		{ID: uuid.NewString(), Name: "Blenders Pride", LocalName: "ब्लेंडर्स प्राइड", Price: 120, Unit: models.UnitBar, SubCategory: strPtr("Whisky"), IsAvailable: true, IsRecommended: true, Stock: stockPtr(8),
			VariantPrices: map[models.PourSize]float64{models.PourBottle: 1300}},
		{ID: uuid.NewString(), Name: "Old Monk", LocalName: "ओल्ड मोंक", Price: 70, Unit: models.UnitBar, SubCategory: strPtr("Rum"), IsAvailable: true, Stock: stockPtr(10)},
		{ID: uuid.NewString(), Name: "Kingfisher Strong", LocalName: "किंगफिशर", Price: 180, Unit: models.UnitBar, SubCategory: strPtr("Beer"), IsAvailable: true, Stock: stockPtr(48)},
		{ID: uuid.NewString(), Name: "Masala Peanuts", LocalName: "मसाला मूंगफली", Price: 80, Unit: models.UnitBar, SubCategory: strPtr("Snacks"), IsAvailable: true},
	})

	catalog.ReplaceItems(models.UnitLodging, []models.MenuItem{
		{ID: uuid.NewString(), Name: "Deluxe Room", LocalName: "डीलक्स कमरा", Price: 1800, Unit: models.UnitLodging, SubCategory: strPtr("Rooms"), IsAvailable: true, IsRecommended: true},
		{ID: uuid.NewString(), Name: "Standard Room", LocalName: "साधारण कमरा", Price: 1200, Unit: models.UnitLodging, SubCategory: strPtr("Rooms"), IsAvailable: true},
		{ID: uuid.NewString(), Name: "Extra Mattress", LocalName: "अतिरिक्त गद्दा", Price: 250, Unit: models.UnitLodging, SubCategory: strPtr("Extras"), IsAvailable: true},
	})

	catalog.ReplaceItems(models.UnitBilliards, []models.MenuItem{
		{ID: uuid.NewString(), Name: "Snooker Table (30 min)", LocalName: "स्नूकर टेबल", Price: 150, Unit: models.UnitBilliards, SubCategory: strPtr("Tables"), IsAvailable: true},
		{ID: uuid.NewString(), Name: "Snooker Table (60 min)", LocalName: "स्नूकर टेबल", Price: 280, Unit: models.UnitBilliards, SubCategory: strPtr("Tables"), IsAvailable: true, IsRecommended: true},
		{ID: uuid.NewString(), Name: "Cold Drink", LocalName: "कोल्ड ड्रिंक", Price: 40, Unit: models.UnitBilliards, SubCategory: strPtr("Snacks"), IsAvailable: true},
	})
}

func seedInventory(inventory InventoryRepository) {
	now := time.Now()
	raw := []struct {
		name string
		qty  float64
		unit string
		min  float64
	}{
		{"Basmati Rice", 45, "kg", 10},
		{"Atta (Flour)", 30, "kg", 15},
		{"Dal Arhar", 25, "kg", 5},
		{"Paneer Block", 8, "kg", 5},
		{"Chicken (Whole)", 15, "kg", 8},
		{"Refined Oil", 40, "ltr", 20},
		{"Spices Mix", 5, "kg", 2},
	}
	kitchen := []struct {
		name string
		qty  float64
		unit string
		min  float64
	}{
		{"Makhani Gravy", 12, "ltr", 5},
		{"Chopped Onions", 4, "kg", 2},
		{"Ginger Garlic Paste", 3, "kg", 1},
		{"Marinated Chicken", 6, "kg", 5},
		{"Boiled Potatoes", 5, "kg", 2},
		{"Dough (Atta)", 10, "kg", 5},
	}
	for _, row := range raw {
		qty := decimal.NewFromFloat(row.qty)
		inventory.Insert(models.TierRaw, models.InventoryItem{
			ID: uuid.NewString(), Name: row.name, Quantity: qty, UnitLabel: row.unit,
			MinThreshold: decimal.NewFromFloat(row.min),
			History: []models.InventoryLog{{At: now, Action: models.ActionCreate, Amount: qty, Details: "Initial stock"}},
		})
	}
	for _, row := range kitchen {
		qty := decimal.NewFromFloat(row.qty)
		inventory.Insert(models.TierKitchen, models.InventoryItem{
			ID: uuid.NewString(), Name: row.name, Quantity: qty, UnitLabel: row.unit,
			MinThreshold: decimal.NewFromFloat(row.min),
			History: []models.InventoryLog{{At: now, Action: models.ActionCreate, Amount: qty, Details: "Initial stock"}},
		})
	}
}

func seedStaff(staff StaffRepository) {
	members := []models.StaffMember{
		{ID: uuid.NewString(), Name: "Ramesh", Role: "Head Chef", Unit: models.UnitRestaurant, Phone: "9876543210", Salary: 25000, SalaryPaid: 25000, Status: "Active", Attendance: 26, JoinDate: "2022-11-15"},
		{ID: uuid.NewString(), Name: "Suresh", Role: "Waiter", Unit: models.UnitRestaurant, Phone: "9876543211", Salary: 12000, SalaryPaid: 6000, Status: "Active", Attendance: 24, JoinDate: "2023-04-02"},
		{ID: uuid.NewString(), Name: "Vikram", Role: "Bartender", Unit: models.UnitBar, Phone: "9876543212", Salary: 18000, SalaryPaid: 10000, Status: "Active", Attendance: 25, JoinDate: "2023-02-01"},
		{ID: uuid.NewString(), Name: "Geeta", Role: "Housekeeping", Unit: models.UnitLodging, Phone: "9876543213", Salary: 11000, SalaryPaid: 11000, Status: "Active", Attendance: 27, JoinDate: "2022-08-20"},
		{ID: uuid.NewString(), Name: "Mohan", Role: "Table Marker", Unit: models.UnitBilliards, Phone: "9876543214", Salary: 10000, SalaryPaid: 5000, Status: "On Leave", Attendance: 18, JoinDate: "2023-06-10"},
	}
	for _, m := range members {
		staff.Save(m)
	}
}

func seedUsers(users UserRepository) {
	accounts := []struct {
		username string
		password string
		fullName string
		role     string
		unit     models.BusinessUnit
	}{
		{"admin", utils.Getenv("SEED_ADMIN_PASSWORD", "admin123"), "Owner", "Admin", models.UnitAdmin},
		{"manager", utils.Getenv("SEED_MANAGER_PASSWORD", "manager123"), "Floor Manager", "Manager", models.UnitRestaurant},
		{"staff", utils.Getenv("SEED_STAFF_PASSWORD", "staff123"), "Counter Staff", "Staff", models.UnitBar},
	}
	now := time.Now()
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			// bcrypt only fails on cost/length misuse; skip rather than crash the boot.
			continue
		}
		users.Save(models.User{
			ID:           uuid.NewString(),
			Username:     a.username,
			PasswordHash: string(hash),
			FullName:     a.fullName,
			Role:         a.role,
			Unit:         a.unit,
			CreatedAt:    now,
		})
	}
}
