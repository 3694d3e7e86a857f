// Package seed carga los datos iniciales del terminal una sola vez: operadores
// demo, categorías, catálogo y clientes. La marca "seeded" en app_flags evita
// re-sembrar en arranques posteriores.
package seed

import (
	"time"

	"github.com/jhoicas/cafe-pos-api/internal/domain/entity"
	"github.com/jhoicas/cafe-pos-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// FlagSeeded nombre de la marca de siembra.
const FlagSeeded = "seeded"

// UseCase siembra los datos iniciales.
type UseCase struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	flagRepo     repository.FlagRepository
}

// New construye el sembrador.
func New(
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	flagRepo repository.FlagRepository,
) *UseCase {
	return &UseCase{
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		flagRepo:     flagRepo,
	}
}

// Run siembra una sola vez. Devuelve true si sembró, false si ya estaba hecho.
func (uc *UseCase) Run() (bool, error) {
	seeded, err := uc.flagRepo.IsSet(FlagSeeded)
	if err != nil {
		return false, err
	}
	if seeded {
		return false, nil
	}

	now := time.Now()
	for _, u := range seedUsers(now) {
		if err := uc.userRepo.Create(u); err != nil {
			return false, err
		}
	}
	for _, c := range seedCategories(now) {
		if err := uc.categoryRepo.Create(c); err != nil {
			return false, err
		}
	}
	for _, p := range seedProducts(now) {
		if err := uc.productRepo.Create(p); err != nil {
			return false, err
		}
	}
	for _, c := range seedCustomers(now) {
		if err := uc.customerRepo.Create(c); err != nil {
			return false, err
		}
	}
	if err := uc.flagRepo.Set(FlagSeeded); err != nil {
		return false, err
	}
	return true, nil
}

func seedUsers(now time.Time) []*entity.User {
	return []*entity.User{
		{ID: "user-1", Name: "Admin", Role: entity.RoleAdmin, AccessCode: "111111", CreatedAt: now, UpdatedAt: now},
		{ID: "user-2", Name: "Jessica", Role: entity.RoleWorker, AccessCode: "222222", CreatedAt: now, UpdatedAt: now},
	}
}

func seedCategories(now time.Time) []*entity.Category {
	return []*entity.Category{
		{ID: "cat-1", Name: "Coffee", ImageURL: "https://picsum.photos/id/431/400/400", CreatedAt: now, UpdatedAt: now},
		{ID: "cat-2", Name: "Tea", ImageURL: "https://picsum.photos/id/42/400/400", CreatedAt: now, UpdatedAt: now},
		{ID: "cat-3", Name: "Pastries", ImageURL: "https://picsum.photos/id/368/400/400", CreatedAt: now, UpdatedAt: now},
		{ID: "cat-4", Name: "Sandwiches", ImageURL: "https://picsum.photos/id/1080/400/400", CreatedAt: now, UpdatedAt: now},
	}
}

func seedProducts(now time.Time) []*entity.Product {
	price := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	return []*entity.Product{
		{ID: "prod-1", Name: "Espresso", Description: "Strong and bold coffee shot.", Price: price("10.00"), Stock: 100, CategoryID: "cat-1", ImageURL: "https://picsum.photos/id/225/400/400", CreatedAt: now, UpdatedAt: now},
		{ID: "prod-2", Name: "Latte", Description: "Espresso with steamed milk.", Price: price("15.50"), Stock: 80, CategoryID: "cat-1", ImageURL: "https://picsum.photos/id/305/400/400", CreatedAt: now, UpdatedAt: now},
		{ID: "prod-3", Name: "Croissant", Description: "Buttery and flaky pastry.", Price: price("8.75"), Stock: 50, CategoryID: "cat-3", ImageURL: "https://picsum.photos/id/368/400/400", CreatedAt: now, UpdatedAt: now},
		{ID: "prod-4", Name: "Green Tea", Description: "Healthy and refreshing green tea.", Price: price("9.50"), Stock: 120, CategoryID: "cat-2", ImageURL: "https://picsum.photos/id/42/400/400", CreatedAt: now, UpdatedAt: now},
		{ID: "prod-5", Name: "Turkey Club", Description: "Classic turkey club sandwich.", Price: price("25.50"), Stock: 30, CategoryID: "cat-4", ImageURL: "https://picsum.photos/id/1080/400/400", CreatedAt: now, UpdatedAt: now},
		{ID: "prod-6", Name: "Cappuccino", Description: "Espresso, steamed milk, and foam.", Price: price("15.50"), Stock: 75, CategoryID: "cat-1", ImageURL: "https://picsum.photos/id/326/400/400", CreatedAt: now, UpdatedAt: now},
		{ID: "prod-7", Name: "Muffin", Description: "Blueberry muffin.", Price: price("12.25"), Stock: 60, CategoryID: "cat-3", ImageURL: "https://picsum.photos/id/1071/400/400", CreatedAt: now, UpdatedAt: now},
		{ID: "prod-8", Name: "Black Tea", Description: "Classic English breakfast tea.", Price: price("9.50"), Stock: 110, CategoryID: "cat-2", ImageURL: "https://picsum.photos/id/24/400/400", CreatedAt: now, UpdatedAt: now},
	}
}

func seedCustomers(now time.Time) []*entity.Customer {
	return []*entity.Customer{
		{ID: "cust-1", Name: "John Doe", Phone: "555-1234", LoyaltyPoints: 150, CreatedAt: now, UpdatedAt: now},
		{ID: "cust-2", Name: "Jane Smith", Phone: "555-5678", LoyaltyPoints: 75, CreatedAt: now, UpdatedAt: now},
	}
}
