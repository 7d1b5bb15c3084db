package supabase

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/devteamsyntacticsinc/custom-product-designer/internal/models"
)

type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

// --- Catalog lookups ---

func (d *DatabaseClient) ListProductTypes() ([]models.ProductType, error) {
	rows, err := d.db.Query(`
		SELECT id, name
		FROM product_types
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list product types: %w", err)
	}
	defer rows.Close()

	var types []models.ProductType
	for rows.Next() {
		var t models.ProductType
		if err := rows.Scan(&t.ID, &t.Name); err != nil {
			return nil, fmt.Errorf("failed to scan product type: %w", err)
		}
		types = append(types, t)
	}

	return types, rows.Err()
}

// ListBrands returns every brand, or only the brands associated with the
// given product type when typeID is non-nil.
func (d *DatabaseClient) ListBrands(typeID uuid.UUID) ([]models.Brand, error) {
	var rows *sql.Rows
	var err error
	if typeID == uuid.Nil {
		rows, err = d.db.Query(`
			SELECT id, name
			FROM brands
			ORDER BY name ASC
		`)
	} else {
		rows, err = d.db.Query(`
			SELECT b.id, b.name
			FROM brands b
			JOIN brand_type bt ON bt.brand_id = b.id
			WHERE bt.type_id = $1
			ORDER BY b.name ASC
		`, typeID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var brands []models.Brand
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, b)
	}

	return brands, rows.Err()
}

func (d *DatabaseClient) ListColors() ([]models.Color, error) {
	rows, err := d.db.Query(`
		SELECT id, value
		FROM colors
		ORDER BY value ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	defer rows.Close()

	var colors []models.Color
	for rows.Next() {
		var c models.Color
		if err := rows.Scan(&c.ID, &c.Value); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		colors = append(colors, c)
	}

	return colors, rows.Err()
}

func (d *DatabaseClient) ListSizes() ([]models.Size, error) {
	rows, err := d.db.Query(`
		SELECT id, value
		FROM sizes
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sizes: %w", err)
	}
	defer rows.Close()

	sizes, err := scanSizes(rows)
	if err != nil {
		return nil, err
	}

	models.SortSizes(sizes)
	return sizes, nil
}

// ListAvailableSizes returns the sizes orderable for a product type,
// narrowed to one brand when brandID is non-nil. With only the type
// given, it covers every brand/type association of that type.
func (d *DatabaseClient) ListAvailableSizes(typeID, brandID uuid.UUID) ([]models.Size, error) {
	var rows *sql.Rows
	var err error
	if brandID == uuid.Nil {
		rows, err = d.db.Query(`
			SELECT DISTINCT s.id, s.value
			FROM sizes s
			JOIN size_availability sa ON sa.size_id = s.id
			JOIN brand_type bt ON bt.id = sa.brand_type_id
			WHERE bt.type_id = $1
		`, typeID)
	} else {
		rows, err = d.db.Query(`
			SELECT DISTINCT s.id, s.value
			FROM sizes s
			JOIN size_availability sa ON sa.size_id = s.id
			JOIN brand_type bt ON bt.id = sa.brand_type_id
			WHERE bt.type_id = $1 AND bt.brand_id = $2
		`, typeID, brandID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list available sizes: %w", err)
	}
	defer rows.Close()

	sizes, err := scanSizes(rows)
	if err != nil {
		return nil, err
	}

	models.SortSizes(sizes)
	return sizes, nil
}

func scanSizes(rows *sql.Rows) ([]models.Size, error) {
	var sizes []models.Size
	for rows.Next() {
		var s models.Size
		if err := rows.Scan(&s.ID, &s.Value); err != nil {
			return nil, fmt.Errorf("failed to scan size: %w", err)
		}
		sizes = append(sizes, s)
	}
	return sizes, rows.Err()
}

const productSelect = `
	SELECT p.id, p.product_name, COALESCE(p.image, ''),
	       b.id, b.name,
	       c.id, c.value,
	       pt.id, pt.name
	FROM products p
	LEFT JOIN brands b ON b.id = p.brand_id
	LEFT JOIN colors c ON c.id = p.color_id
	LEFT JOIN product_types pt ON pt.id = p.product_type_id
`

func (d *DatabaseClient) ListProducts() ([]models.Product, error) {
	rows, err := d.db.Query(productSelect + ` ORDER BY p.product_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (d *DatabaseClient) GetProduct(id uuid.UUID) (*models.Product, error) {
	rows, err := d.db.Query(productSelect+` WHERE p.id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get product: %w", err)
		}
		return nil, sql.ErrNoRows
	}

	p, err := scanProduct(rows)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// scanProduct is the single mapping from the joined product row into the
// canonical flat Product view.
func scanProduct(rows *sql.Rows) (models.Product, error) {
	var p models.Product
	var brandID, colorID, typeID sql.Null[uuid.UUID]
	var brandName, colorValue, typeName sql.NullString

	err := rows.Scan(
		&p.ID, &p.ProductName, &p.Image,
		&brandID, &brandName,
		&colorID, &colorValue,
		&typeID, &typeName,
	)
	if err != nil {
		return p, fmt.Errorf("failed to scan product: %w", err)
	}

	if brandID.Valid {
		p.Brand = &models.Brand{ID: brandID.V, Name: brandName.String}
	}
	if colorID.Valid {
		p.Color = &models.Color{ID: colorID.V, Value: colorValue.String}
	}
	if typeID.Valid {
		p.ProductType = &models.ProductType{ID: typeID.V, Name: typeName.String}
	}

	return p, nil
}

// --- Order persistence ---

func (d *DatabaseClient) CreateCustomer(contact models.ContactInformation) (*models.Customer, error) {
	var customer models.Customer
	err := d.db.QueryRow(`
		INSERT INTO customers (name, email, contact_number, address)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, contact_number, address, created_at
	`, contact.FullName, contact.Email, contact.ContactNumber, contact.Address).Scan(
		&customer.ID, &customer.Name, &customer.Email,
		&customer.ContactNumber, &customer.Address, &customer.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &customer, nil
}

// GetBrandTypeID resolves the association row for a brand/type pair.
// A pair with no association is an error; orders cannot reference it.
func (d *DatabaseClient) GetBrandTypeID(brandID, typeID uuid.UUID) (uuid.UUID, error) {
	var id uuid.UUID
	err := d.db.QueryRow(`
		SELECT id
		FROM brand_type
		WHERE brand_id = $1 AND type_id = $2
	`, brandID, typeID).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to resolve brand type: %w", err)
	}

	return id, nil
}

func (d *DatabaseClient) CreateProductOrder(customerID, brandTypeID, colorID uuid.UUID) (*models.ProductOrder, error) {
	var order models.ProductOrder
	err := d.db.QueryRow(`
		INSERT INTO product_orders (customer_id, brand_type_id, color_id)
		VALUES ($1, $2, $3)
		RETURNING id, customer_id, brand_type_id, color_id, created_at
	`, customerID, brandTypeID, colorID).Scan(
		&order.ID, &order.CustomerID, &order.BrandTypeID, &order.ColorID, &order.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create product order: %w", err)
	}

	return &order, nil
}

func (d *DatabaseClient) CreateOrderSizes(lines []models.OrderSize) error {
	for _, line := range lines {
		_, err := d.db.Exec(`
			INSERT INTO product_sizes (product_order_id, size_id, quantity)
			VALUES ($1, $2, $3)
		`, line.ProductOrderID, line.SizeID, line.Quantity)
		if err != nil {
			return fmt.Errorf("failed to create order size line: %w", err)
		}
	}
	return nil
}

func (d *DatabaseClient) CreateOrderAsset(asset models.OrderAsset) error {
	_, err := d.db.Exec(`
		INSERT INTO product_images (product_order_id, url, placement)
		VALUES ($1, $2, $3)
	`, asset.ProductOrderID, asset.URL, asset.Placement)
	if err != nil {
		return fmt.Errorf("failed to create order asset: %w", err)
	}
	return nil
}

// --- Dashboard ---

func (d *DatabaseClient) CountOrders() (int, error)       { return d.count("product_orders") }
func (d *DatabaseClient) CountCustomers() (int, error)    { return d.count("customers") }
func (d *DatabaseClient) CountBrandTypes() (int, error)   { return d.count("brand_type") }
func (d *DatabaseClient) CountBrands() (int, error)       { return d.count("brands") }
func (d *DatabaseClient) CountColors() (int, error)       { return d.count("colors") }
func (d *DatabaseClient) CountProductTypes() (int, error) { return d.count("product_types") }

func (d *DatabaseClient) count(table string) (int, error) {
	var n int
	err := d.db.QueryRow(`SELECT COUNT(*) FROM ` + table).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return n, nil
}

func (d *DatabaseClient) RecentOrders(limit int) ([]models.RecentOrder, error) {
	rows, err := d.db.Query(`
		SELECT o.id, COALESCE(c.name, ''), o.created_at
		FROM product_orders o
		LEFT JOIN customers c ON c.id = o.customer_id
		ORDER BY o.created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent orders: %w", err)
	}
	defer rows.Close()

	var orders []models.RecentOrder
	for rows.Next() {
		var o models.RecentOrder
		if err := rows.Scan(&o.ID, &o.CustomerName, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent order: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (d *DatabaseClient) RecentCustomers(limit int) ([]models.RecentCustomer, error) {
	rows, err := d.db.Query(`
		SELECT id, name, email, created_at
		FROM customers
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent customers: %w", err)
	}
	defer rows.Close()

	var customers []models.RecentCustomer
	for rows.Next() {
		var c models.RecentCustomer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan recent customer: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

// --- Users ---

func (d *DatabaseClient) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := d.db.QueryRow(`
		SELECT u.id, u.name, u.email, u.password, COALESCE(r.name, 'user'), u.created_at
		FROM users u
		LEFT JOIN roles r ON r.id = u.role_id
		WHERE u.email = $1
	`, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
