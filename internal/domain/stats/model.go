package stats

type DashboardStats struct {
	Orders      OrderStats      `json:"orders"`
	Restaurants RestaurantStats `json:"restaurants"`
	MenuItems   int             `json:"menuItems"`
	Users       UserStats       `json:"users"`
}

type OrderStats struct {
	Total int `json:"total"`
}

type RestaurantStats struct {
	Total int `json:"total"`
	Open  int `json:"open"`
}

type UserStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Admins int `json:"admins"`
}
