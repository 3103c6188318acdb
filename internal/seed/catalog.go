package seed

import "github.com/shopspring/decimal"

type categorySeed struct {
	Name        string
	Description string
	Slug        string
}

type productSeed struct {
	Name           string
	Description    string
	Price          decimal.Decimal
	SKU            string
	Inventory      int
	Images         []string
	Brand          string
	CategorySlug   string
	AverageRating  float64
	TotalReviews   int
	Specifications map[string]any
}

type userSeed struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Admin     bool
	Phone     string
}

type reviewSeed struct {
	ID       string
	SKU      string
	Email    string
	Rating   int
	Title    string
	Comment  string
	Verified bool
}

var categories = []categorySeed{
	{Name: "Electronics", Description: "Electronic devices and gadgets", Slug: "electronics"},
	{Name: "Clothing", Description: "Fashion and apparel", Slug: "clothing"},
	{Name: "Books", Description: "Books and literature", Slug: "books"},
}

var users = []userSeed{
	{FirstName: "Admin", LastName: "User", Email: "admin@ecommerce.com", Password: "admin123", Admin: true},
	{FirstName: "John", LastName: "Doe", Email: "customer@test.com", Password: "customer123", Phone: "+1234567890"},
}

var products = []productSeed{
	{
		Name:        "iPhone 15 Pro",
		Description: "Latest iPhone with Pro features and amazing camera system. Experience cutting-edge technology with advanced photography capabilities.",
		Price:       decimal.RequireFromString("999.99"),
		SKU:         "IPHONE-15-PRO-001",
		Inventory:   50,
		Images: []string{
			"https://images.unsplash.com/photo-1592750475338-74b7b21085ab?w=500",
			"https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=500",
		},
		Brand:         "Apple",
		CategorySlug:  "electronics",
		AverageRating: 4.8,
		TotalReviews:  156,
		Specifications: map[string]any{
			"storage": "128GB",
			"color":   "Space Black",
			"display": "6.1 inch Super Retina XDR",
			"camera":  "48MP Main + 12MP Ultra Wide + 12MP Telephoto",
			"battery": "Up to 23 hours video playback",
		},
	},
	{
		Name:        "MacBook Air M2",
		Description: "Powerful and efficient laptop with M2 chip. Perfect for professionals and creatives who need portable performance.",
		Price:       decimal.RequireFromString("1199.99"),
		SKU:         "MACBOOK-AIR-M2-001",
		Inventory:   25,
		Images: []string{
			"https://images.unsplash.com/photo-1541807084-5c52b6b3adef?w=500",
			"https://images.unsplash.com/photo-1517336714731-489689fd1ca8?w=500",
		},
		Brand:         "Apple",
		CategorySlug:  "electronics",
		AverageRating: 4.9,
		TotalReviews:  89,
		Specifications: map[string]any{
			"processor": "Apple M2 chip",
			"memory":    "8GB unified memory",
			"storage":   "256GB SSD",
			"display":   "13.6-inch Liquid Retina",
			"battery":   "Up to 18 hours",
		},
	},
	{
		Name:        "Samsung Galaxy S24 Ultra",
		Description: "Premium Android smartphone with S Pen and advanced AI features. Professional photography and productivity in your pocket.",
		Price:       decimal.RequireFromString("1199.99"),
		SKU:         "SAMSUNG-S24-ULTRA-001",
		Inventory:   30,
		Images: []string{
			"https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=500",
			"https://images.unsplash.com/photo-1580910051074-3eb694886505?w=500",
		},
		Brand:         "Samsung",
		CategorySlug:  "electronics",
		AverageRating: 4.7,
		TotalReviews:  203,
		Specifications: map[string]any{
			"storage": "256GB",
			"display": "6.8 inch Dynamic AMOLED 2X",
			"camera":  "200MP Main + 50MP Periscope Telephoto",
			"battery": "5000mAh",
			"spen":    "Built-in S Pen",
		},
	},
	{
		Name:        "Classic Cotton T-Shirt",
		Description: "Comfortable 100% cotton t-shirt in various colors. Perfect for everyday wear with a soft, breathable fabric.",
		Price:       decimal.RequireFromString("29.99"),
		SKU:         "TSHIRT-COTTON-001",
		Inventory:   100,
		Images: []string{
			"https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=500",
			"https://images.unsplash.com/photo-1503341504253-dff4815485f1?w=500",
		},
		Brand:         "BasicWear",
		CategorySlug:  "clothing",
		AverageRating: 4.4,
		TotalReviews:  67,
		Specifications: map[string]any{
			"material": "100% Cotton",
			"fit":      "Regular",
			"sizes":    "XS, S, M, L, XL, XXL",
			"care":     "Machine wash cold",
		},
	},
	{
		Name:        "Premium Denim Jeans",
		Description: "High-quality denim jeans with perfect fit and durability. Crafted from premium materials for comfort and style.",
		Price:       decimal.RequireFromString("89.99"),
		SKU:         "JEANS-DENIM-001",
		Inventory:   75,
		Images: []string{
			"https://images.unsplash.com/photo-1542272604-787c3835535d?w=500",
			"https://images.unsplash.com/photo-1565084888279-aca607ecce0c?w=500",
		},
		Brand:         "DenimCo",
		CategorySlug:  "clothing",
		AverageRating: 4.6,
		TotalReviews:  124,
		Specifications: map[string]any{
			"material": "98% Cotton, 2% Elastane",
			"fit":      "Slim Fit",
			"rise":     "Mid Rise",
			"length":   "32 inch inseam",
		},
	},
	{
		Name:        "Winter Wool Sweater",
		Description: "Cozy wool sweater perfect for cold weather. Soft, warm, and stylish for any occasion.",
		Price:       decimal.RequireFromString("79.99"),
		SKU:         "SWEATER-WOOL-001",
		Inventory:   45,
		Images: []string{
			"https://images.unsplash.com/photo-1576566588028-4147f3842f27?w=500",
			"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?w=500",
		},
		Brand:         "CozyWear",
		CategorySlug:  "clothing",
		AverageRating: 4.5,
		TotalReviews:  89,
		Specifications: map[string]any{
			"material": "100% Merino Wool",
			"fit":      "Regular",
			"care":     "Dry clean only",
			"weight":   "Medium weight",
		},
	},
	{
		Name:        "JavaScript: The Good Parts",
		Description: "Essential guide to JavaScript programming by Douglas Crockford. Learn the best practices and avoid common pitfalls.",
		Price:       decimal.RequireFromString("24.99"),
		SKU:         "BOOK-JS-GOOD-PARTS",
		Inventory:   40,
		Images: []string{
			"https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=500",
			"https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500",
		},
		Brand:         "O'Reilly Media",
		CategorySlug:  "books",
		AverageRating: 4.3,
		TotalReviews:  342,
		Specifications: map[string]any{
			"author":    "Douglas Crockford",
			"pages":     176,
			"language":  "English",
			"publisher": "O'Reilly Media",
			"isbn":      "978-0596517748",
		},
	},
	{
		Name:        "Clean Code: A Handbook",
		Description: "A handbook of agile software craftsmanship by Robert C. Martin. Essential reading for any serious programmer.",
		Price:       decimal.RequireFromString("34.99"),
		SKU:         "BOOK-CLEAN-CODE",
		Inventory:   35,
		Images: []string{
			"https://images.unsplash.com/photo-1481627834876-b7833e8f5570?w=500",
			"https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=500",
		},
		Brand:         "Prentice Hall",
		CategorySlug:  "books",
		AverageRating: 4.7,
		TotalReviews:  278,
		Specifications: map[string]any{
			"author":    "Robert C. Martin",
			"pages":     464,
			"language":  "English",
			"publisher": "Prentice Hall",
			"isbn":      "978-0132350884",
		},
	},
}

var reviews = []reviewSeed{
	{ID: "seed-review-iphone-1", SKU: "IPHONE-15-PRO-001", Email: "customer@test.com", Rating: 5, Title: "Best camera I've owned", Comment: "Low light photos are stunning.", Verified: true},
	{ID: "seed-review-macbook-1", SKU: "MACBOOK-AIR-M2-001", Email: "customer@test.com", Rating: 5, Title: "Silent and fast", Comment: "No fan, all day battery.", Verified: true},
	{ID: "seed-review-jeans-1", SKU: "JEANS-DENIM-001", Email: "customer@test.com", Rating: 4, Title: "Great fit", Comment: "Runs slightly small."},
	{ID: "seed-review-cleancode-1", SKU: "BOOK-CLEAN-CODE", Email: "admin@ecommerce.com", Rating: 5, Title: "Required reading", Comment: "Every team should have a copy."},
}
