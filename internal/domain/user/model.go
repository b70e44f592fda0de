package user

import "time"

type User struct {
	ID      string `firestore:"id" json:"id"`
	Name    string `firestore:"name,omitempty" json:"name,omitempty"`
	Email   string `firestore:"email,omitempty" json:"email,omitempty"`
	Phone   string `firestore:"phone,omitempty" json:"phone,omitempty"`
	Address string `firestore:"address,omitempty" json:"address,omitempty"`

	IsActive bool   `firestore:"isActive" json:"isActive"`
	Role     string `firestore:"role" json:"role"` // customer / admin

	// Denormalized counters maintained by the consumer app; read-only here.
	OrdersCount int     `firestore:"ordersCount,omitempty" json:"ordersCount"`
	TotalSpent  float64 `firestore:"totalSpent,omitempty" json:"totalSpent"`

	CreatedAt time.Time `firestore:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// FromDoc applies the read-time defaults: isActive is true unless explicitly
// false, role defaults to customer.
func FromDoc(id string, data map[string]any) User {
	u := User{ID: id, IsActive: true, Role: "customer"}
	if v, ok := data["name"].(string); ok {
		u.Name = v
	}
	if v, ok := data["email"].(string); ok {
		u.Email = v
	}
	if v, ok := data["phone"].(string); ok {
		u.Phone = v
	}
	if v, ok := data["address"].(string); ok {
		u.Address = v
	}
	if v, ok := data["isActive"].(bool); ok {
		u.IsActive = v
	}
	if v, ok := data["role"].(string); ok && v != "" {
		u.Role = v
	}
	if v, ok := data["ordersCount"].(int64); ok {
		u.OrdersCount = int(v)
	}
	if v, ok := data["totalSpent"].(float64); ok {
		u.TotalSpent = v
	}
	if v, ok := data["createdAt"].(time.Time); ok {
		u.CreatedAt = v
	}
	return u
}
