package seeds

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Development data for a small flower storefront: a fixed catalog, a
// power-law order history, and plausible rows for the external signal
// tables (forecasts, trend interest, keyword mapping).
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE product_keywords, trend_interest, product_forecasts, orders, products, users RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	log.Println("[seed] inserting users")
	if err := seedUsers(ctx, pool, rng, 20); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}

	log.Println("[seed] inserting products")
	if err := seedProducts(ctx, pool, rng); err != nil {
		return fmt.Errorf("seed products: %w", err)
	}

	log.Println("[seed] inserting orders")
	if err := seedOrders(ctx, pool, rng, 300); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	log.Println("[seed] inserting signal feeds")
	if err := seedSignals(ctx, pool, rng); err != nil {
		return fmt.Errorf("seed signals: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

var catalog = []struct {
	id, name, category, keyword string
	priceVND                    int64
}{
	{"p001", "Red Rose Bouquet", "bouquet", "fresh flowers", 350000},
	{"p002", "White Lily Arrangement", "arrangement", "fresh flowers", 420000},
	{"p003", "Bridal Peony Set", "wedding", "wedding flowers", 1200000},
	{"p004", "Imported Tulip Box", "imported", "imported flowers", 650000},
	{"p005", "Sunflower Basket", "basket", "fresh flowers", 280000},
	{"p006", "Orchid Pot", "plant", "orchid", 550000},
	{"p007", "Mixed Daisy Bundle", "bouquet", "cheap flowers", 180000},
	{"p008", "Wedding Arch Package", "wedding", "wedding flowers", 4500000},
	{"p009", "Preserved Rose Dome", "gift", "preserved flowers", 890000},
	{"p010", "Congratulation Stand", "stand", "flower stand", 1500000},
	{"p011", "Baby Breath Bouquet", "bouquet", "cheap flowers", 220000},
	{"p012", "Imported Hydrangea Box", "imported", "imported flowers", 720000},
}

func seedUsers(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	cities := []string{"Hanoi", "Ho Chi Minh City", "Da Nang", "Hue", "Can Tho"}
	names := []string{
		"Lan", "Minh", "Huong", "Quang", "Trang", "Duc", "Mai", "Tuan",
		"Ngoc", "Hieu", "Thao", "Long", "Phuong", "Khanh", "Linh", "Nam",
		"Chi", "Bao", "Van", "Son",
	}

	rows := []string{}
	args := []any{}

	for i := range n {
		id := fmt.Sprintf("u%03d", i+1)
		city := cities[rng.Intn(len(cities))]
		createdAt := time.Now().AddDate(0, 0, -rng.Intn(365))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, id, names[i%len(names)], city, createdAt)
	}

	query := "INSERT INTO users (id, name, city, created_at) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedProducts(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	rows := []string{}
	args := []any{}

	for _, p := range catalog {
		createdAt := time.Now().AddDate(0, 0, -rng.Intn(730))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
		args = append(args, p.id, p.name, p.category, p.priceVND, createdAt)
	}

	query := "INSERT INTO products (id, name, category, price_vnd, created_at) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedOrders(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, n int) error {
	rows := []string{}
	args := []any{}

	for range n {
		// Power-law skew so a few users and products dominate, which gives
		// the similarity neighborhoods something to work with.
		userIdx := int(math.Ceil(math.Pow(rng.Float64(), 1.5) * 20))
		userIdx = max(1, min(userIdx, 20))

		productIdx := int(math.Ceil(math.Pow(rng.Float64(), 1.3) * float64(len(catalog))))
		productIdx = max(1, min(productIdx, len(catalog)))

		quantity := 1 + rng.Intn(5)
		createdAt := time.Now().AddDate(0, 0, -rng.Intn(180))

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, fmt.Sprintf("u%03d", userIdx), catalog[productIdx-1].id, quantity, createdAt)
	}

	query := "INSERT INTO orders (user_id, product_id, quantity, created_at) VALUES " +
		strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func seedSignals(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand) error {
	// Forecast rows: most products get a usable growth number, a couple are
	// flagged as having too little history.
	rows := []string{}
	args := []any{}
	for i, p := range catalog {
		status := "ok"
		var growth any = math.Round((rng.Float64()*80-20)*100) / 100
		if i%5 == 4 {
			status = "insufficient_data"
			growth = nil
		}

		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d)", base+1, base+2, base+3))
		args = append(args, p.id, status, growth)
	}
	query := "INSERT INTO product_forecasts (product_id, status, growth_pct) VALUES " +
		strings.Join(rows, ", ")
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert forecasts: %w", err)
	}

	// Average interest per keyword, 0-100 index.
	keywords := map[string]float64{}
	for _, p := range catalog {
		if _, ok := keywords[p.keyword]; !ok {
			keywords[p.keyword] = math.Round(rng.Float64()*10000) / 100
		}
	}
	rows = rows[:0]
	args = args[:0]
	for kw, avg := range keywords {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
		args = append(args, kw, avg)
	}
	query = "INSERT INTO trend_interest (keyword, avg_interest) VALUES " + strings.Join(rows, ", ")
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert trend interest: %w", err)
	}

	rows = rows[:0]
	args = args[:0]
	for _, p := range catalog {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d)", base+1, base+2))
		args = append(args, p.id, p.keyword)
	}
	query = "INSERT INTO product_keywords (product_id, keyword) VALUES " + strings.Join(rows, ", ")
	if _, err := pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert product keywords: %w", err)
	}

	return nil
}
