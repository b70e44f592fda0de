package order

import "time"

type UserInfo struct {
	Name  string `firestore:"name,omitempty" json:"name,omitempty"`
	Email string `firestore:"email,omitempty" json:"email,omitempty"`
	Phone string `firestore:"phone,omitempty" json:"phone,omitempty"`
}

type ItemExtra struct {
	Name     string  `firestore:"name" json:"name"`
	Price    float64 `firestore:"price" json:"price"`
	Quantity int     `firestore:"quantity,omitempty" json:"quantity,omitempty"`
}

type Item struct {
	MenuItemID   string      `firestore:"menuItemId" json:"menuItemId"`
	MenuItemName string      `firestore:"menuItemName" json:"menuItemName"`
	Price        float64     `firestore:"price" json:"price"`
	SelectedType string      `firestore:"selectedType,omitempty" json:"selectedType,omitempty"`
	Quantity     int         `firestore:"quantity" json:"quantity"`
	Extras       []ItemExtra `firestore:"extras,omitempty" json:"extras,omitempty"`
}

type Courier struct {
	Name  string `firestore:"name,omitempty" json:"name,omitempty"`
	Phone string `firestore:"phone,omitempty" json:"phone,omitempty"`
}

// Order documents are created by the consumer app; this surface only reads
// them and moves status forward.
type Order struct {
	ID           string   `firestore:"id" json:"id"`
	UserID       string   `firestore:"userId" json:"userId"`
	UserInfo     UserInfo `firestore:"userInfo" json:"userInfo"`
	RestaurantID string   `firestore:"restaurantId" json:"restaurantId"`
	Items        []Item   `firestore:"items" json:"items"`

	Subtotal    float64 `firestore:"subtotal" json:"subtotal"`
	DeliveryFee float64 `firestore:"deliveryFee" json:"deliveryFee"`
	ServiceFee  float64 `firestore:"serviceFee" json:"serviceFee"`
	Discount    float64 `firestore:"discount,omitempty" json:"discount,omitempty"`
	Total       float64 `firestore:"total" json:"total"`

	Status string `firestore:"status" json:"status"`

	DeliveryAddress              string `firestore:"deliveryAddress,omitempty" json:"deliveryAddress,omitempty"`
	DeliveryLocationHostelID     string `firestore:"deliveryLocationHostelId,omitempty" json:"deliveryLocationHostelId,omitempty"`
	DeliveryLocationUniversityID string `firestore:"deliveryLocationUniversityId,omitempty" json:"deliveryLocationUniversityId,omitempty"`
	DeliveryLocationLabel        string `firestore:"deliveryLocationLabel,omitempty" json:"deliveryLocationLabel,omitempty"`
	DeliveryNotes                string `firestore:"deliveryNotes,omitempty" json:"deliveryNotes,omitempty"`

	PaymentMethod string   `firestore:"paymentMethod,omitempty" json:"paymentMethod,omitempty"`
	PromoCode     string   `firestore:"promoCode,omitempty" json:"promoCode,omitempty"`
	Courier       *Courier `firestore:"courier,omitempty" json:"courier,omitempty"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

type UpdateStatusInput struct {
	Status string `json:"status"`
}
