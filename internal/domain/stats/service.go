package stats

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"campusbites/backend/internal/store"
)

type Service struct {
	client *firestore.Client
}

func NewService(client *firestore.Client) *Service {
	return &Service{client: client}
}

// GetDashboardStats scans the collections and counts in memory. The data set
// is small enough that aggregate queries aren't worth the index plumbing.
func (s *Service) GetDashboardStats(ctx context.Context) (*DashboardStats, error) {
	out := &DashboardStats{}

	ordersIter := s.client.Collection(store.ColOrders).Documents(ctx)
	for {
		_, err := ordersIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("count orders: %w", err)
		}
		out.Orders.Total++
	}

	restIter := s.client.Collection(store.ColRestaurants).Documents(ctx)
	for {
		doc, err := restIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("count restaurants: %w", err)
		}
		out.Restaurants.Total++
		data := doc.Data()
		if open, _ := data["isOpen"].(bool); open {
			out.Restaurants.Open++
		}
	}

	menuIter := s.client.Collection(store.ColMenuItems).Documents(ctx)
	for {
		_, err := menuIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("count menu items: %w", err)
		}
		out.MenuItems++
	}

	usersIter := s.client.Collection(store.ColUsers).Documents(ctx)
	for {
		doc, err := usersIter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("count users: %w", err)
		}
		out.Users.Total++
		data := doc.Data()
		active, ok := data["isActive"].(bool)
		if !ok || active {
			out.Users.Active++
		}
		if role, _ := data["role"].(string); role == "admin" {
			out.Users.Admins++
		}
	}

	return out, nil
}
