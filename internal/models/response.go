package models

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type OrderSubmitResponse struct {
	Success    bool   `json:"success"`
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
}

type DashboardStats struct {
	TotalOrders    int `json:"totalOrders"`
	TotalUsers     int `json:"totalUsers"`
	ActiveProducts int `json:"activeProducts"`
	TotalBrands    int `json:"totalBrands"`
	TotalColors    int `json:"totalColors"`
	TotalTypes     int `json:"totalTypes"`
}

type ActivityItem struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

type DashboardData struct {
	Stats          DashboardStats `json:"stats"`
	RecentActivity []ActivityItem `json:"recentActivity"`
}

type DashboardResponse struct {
	Success bool          `json:"success"`
	Data    DashboardData `json:"data"`
}

type LoginUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Success bool      `json:"success"`
	User    LoginUser `json:"user"`
}
