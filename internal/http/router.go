package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"campusbites/backend/internal/config"
	"campusbites/backend/internal/domain/ads"
	"campusbites/backend/internal/domain/campus"
	"campusbites/backend/internal/domain/menu"
	"campusbites/backend/internal/domain/order"
	"campusbites/backend/internal/domain/restaurant"
	"campusbites/backend/internal/domain/stats"
	"campusbites/backend/internal/domain/university"
	"campusbites/backend/internal/domain/user"
	"campusbites/backend/internal/handlers"
	"campusbites/backend/internal/middleware"
	"campusbites/backend/internal/scheduler"

	"firebase.google.com/go/v4/auth"
	"github.com/go-chi/chi/v5"
)

type RouterDeps struct {
	Cfg           config.Config
	AuthClient    *auth.Client
	RestaurantSvc *restaurant.Service
	UniversitySvc *university.Service
	CampusSvc     *campus.Service
	MenuSvc       *menu.Service
	OrderSvc      *order.Service
	AdsSvc        *ads.Service
	UserSvc       *user.Service
	StatsSvc      *stats.Service
	AutoCloser    *scheduler.AutoCloser
	Uploads       *handlers.Uploads
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(d.Cfg.AllowedOrigins))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		WriteJSON(w, 200, map[string]any{"ok": true, "ts": time.Now().UTC().Format(time.RFC3339)})
	})

	// Everything below is the admin dashboard: valid token + admin claim.
	r.Group(func(pr chi.Router) {
		pr.Use(middleware.WithAuth(d.AuthClient))

		pr.Get("/v1/me", func(w http.ResponseWriter, r *http.Request) {
			au, _ := middleware.GetAuthUser(r.Context())
			WriteJSON(w, 200, map[string]any{
				"uid":    au.UID,
				"email":  au.Email,
				"claims": au.Claims,
			})
		})

		pr.Group(func(ar chi.Router) {
			ar.Use(middleware.RequireAdmin)

			// ===== Restaurant routes =====
			ar.Get("/v1/restaurants", func(w http.ResponseWriter, r *http.Request) {
				out, err := d.RestaurantSvc.List(r.Context())
				if err != nil {
					status, msg := mapRestaurantError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"restaurants": out})
			})

			ar.Get("/v1/restaurants/search", func(w http.ResponseWriter, r *http.Request) {
				q := strings.TrimSpace(r.URL.Query().Get("q"))
				limit := 20
				if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
					if l, err := strconv.Atoi(limitStr); err == nil {
						limit = l
					}
				}
				out, err := d.RestaurantSvc.Search(r.Context(), q, limit)
				if err != nil {
					status, msg := mapRestaurantError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"restaurants": out})
			})

			ar.Get("/v1/restaurants/{restaurantId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "restaurantId")
				if id == "" {
					Fail(w, 400, "missing restaurantId")
					return
				}
				out, err := d.RestaurantSvc.Get(r.Context(), id)
				if err != nil {
					status, msg := mapRestaurantError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			ar.Put("/v1/restaurants/{restaurantId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "restaurantId")
				if id == "" {
					Fail(w, 400, "missing restaurantId")
					return
				}

				var in restaurant.UpdateInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				in.Trim()

				out, err := d.RestaurantSvc.Update(r.Context(), id, in)
				if err != nil {
					status, msg := mapRestaurantError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			// Open/close toggle for one shop.
			ar.Post("/v1/restaurants/{restaurantId}/open", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "restaurantId")
				if id == "" {
					Fail(w, 400, "missing restaurantId")
					return
				}

				var body struct {
					Open bool `json:"open"`
				}
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					Fail(w, 400, "invalid json")
					return
				}

				if err := d.RestaurantSvc.SetOpen(r.Context(), id, body.Open); err != nil {
					status, msg := mapRestaurantError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"ok": true, "isOpen": body.Open})
			})

			// Close every open restaurant at once; the same operation the
			// auto-close scheduler fires.
			ar.Post("/v1/restaurants/closeAll", func(w http.ResponseWriter, r *http.Request) {
				closed, err := d.RestaurantSvc.CloseAllOpen(r.Context())
				if err != nil {
					// Partial failure: report what did close.
					WriteJSON(w, 500, map[string]any{"closed": closed, "message": err.Error()})
					return
				}
				WriteJSON(w, 200, map[string]any{"ok": true, "closed": closed})
			})

			ar.Delete("/v1/restaurants/{restaurantId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "restaurantId")
				if id == "" {
					Fail(w, 400, "missing restaurantId")
					return
				}
				if err := d.RestaurantSvc.Delete(r.Context(), id); err != nil {
					status, msg := mapRestaurantError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
			})

			// ===== University routes =====
			ar.Get("/v1/universities", func(w http.ResponseWriter, r *http.Request) {
				out, err := d.UniversitySvc.List(r.Context())
				if err != nil {
					status, msg := mapUniversityError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"universities": out})
			})

			ar.Post("/v1/universities", func(w http.ResponseWriter, r *http.Request) {
				var in university.CreateInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				in.Trim()

				out, err := d.UniversitySvc.Create(r.Context(), in)
				if err != nil {
					status, msg := mapUniversityError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 201, out)
			})

			ar.Get("/v1/universities/{universityId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "universityId")
				if id == "" {
					Fail(w, 400, "missing universityId")
					return
				}
				out, err := d.UniversitySvc.Get(r.Context(), id)
				if err != nil {
					status, msg := mapUniversityError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			ar.Put("/v1/universities/{universityId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "universityId")
				if id == "" {
					Fail(w, 400, "missing universityId")
					return
				}

				var in university.UpdateInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				in.Trim()

				out, err := d.UniversitySvc.Update(r.Context(), id, in)
				if err != nil {
					status, msg := mapUniversityError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			// Deleting a university also scrubs its short name from every
			// restaurant's locations.
			ar.Delete("/v1/universities/{universityId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "universityId")
				if id == "" {
					Fail(w, 400, "missing universityId")
					return
				}
				if err := d.UniversitySvc.Delete(r.Context(), id); err != nil {
					status, msg := mapUniversityError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
			})

			ar.Post("/v1/universities/{universityId}/hostels", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "universityId")
				if id == "" {
					Fail(w, 400, "missing universityId")
					return
				}

				var body struct {
					Hostel string `json:"hostel"`
				}
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					Fail(w, 400, "invalid json")
					return
				}

				out, err := d.UniversitySvc.AddHostel(r.Context(), id, body.Hostel)
				if err != nil {
					status, msg := mapUniversityError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 201, out)
			})

			ar.Delete("/v1/universities/{universityId}/hostels", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "universityId")
				hostel := strings.TrimSpace(r.URL.Query().Get("name"))
				if id == "" || hostel == "" {
					Fail(w, 400, "missing universityId or hostel name")
					return
				}

				out, err := d.UniversitySvc.RemoveHostel(r.Context(), id, hostel)
				if err != nil {
					status, msg := mapUniversityError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			// ===== Campus assignment routes =====
			ar.Get("/v1/universities/{universityId}/assignments", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "universityId")
				if id == "" {
					Fail(w, 400, "missing universityId")
					return
				}
				out, err := d.CampusSvc.ListAssignments(r.Context(), id)
				if err != nil {
					status, msg := mapCampusError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			ar.Post("/v1/universities/{universityId}/assignments/{restaurantId}/toggle", func(w http.ResponseWriter, r *http.Request) {
				universityId := chi.URLParam(r, "universityId")
				restaurantId := chi.URLParam(r, "restaurantId")
				if universityId == "" || restaurantId == "" {
					Fail(w, 400, "missing universityId or restaurantId")
					return
				}

				out, err := d.CampusSvc.ToggleAssignment(r.Context(), restaurantId, universityId)
				if err != nil {
					status, msg := mapCampusError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			// ===== Menu item routes =====
			ar.Get("/v1/menu-items", func(w http.ResponseWriter, r *http.Request) {
				restaurantId := strings.TrimSpace(r.URL.Query().Get("restaurantId"))
				out, err := d.MenuSvc.List(r.Context(), restaurantId)
				if err != nil {
					status, msg := mapMenuError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"menuItems": out})
			})

			ar.Post("/v1/menu-items", func(w http.ResponseWriter, r *http.Request) {
				var in menu.CreateInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				in.Trim()

				out, err := d.MenuSvc.Create(r.Context(), in)
				if err != nil {
					status, msg := mapMenuError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 201, out)
			})

			ar.Get("/v1/menu-items/{itemId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "itemId")
				if id == "" {
					Fail(w, 400, "missing itemId")
					return
				}
				out, err := d.MenuSvc.Get(r.Context(), id)
				if err != nil {
					status, msg := mapMenuError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			ar.Put("/v1/menu-items/{itemId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "itemId")
				if id == "" {
					Fail(w, 400, "missing itemId")
					return
				}

				var in menu.UpdateInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				in.Trim()

				out, err := d.MenuSvc.Update(r.Context(), id, in)
				if err != nil {
					status, msg := mapMenuError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			ar.Delete("/v1/menu-items/{itemId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "itemId")
				if id == "" {
					Fail(w, 400, "missing itemId")
					return
				}
				if err := d.MenuSvc.Delete(r.Context(), id); err != nil {
					status, msg := mapMenuError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
			})

			// ===== Order routes =====
			ar.Get("/v1/orders", func(w http.ResponseWriter, r *http.Request) {
				out, err := d.OrderSvc.List(r.Context())
				if err != nil {
					status, msg := mapOrderError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"orders": out})
			})

			ar.Get("/v1/orders/{orderId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "orderId")
				if id == "" {
					Fail(w, 400, "missing orderId")
					return
				}
				out, err := d.OrderSvc.Get(r.Context(), id)
				if err != nil {
					status, msg := mapOrderError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			ar.Put("/v1/orders/{orderId}/status", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "orderId")
				if id == "" {
					Fail(w, 400, "missing orderId")
					return
				}

				var in order.UpdateStatusInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}

				out, err := d.OrderSvc.UpdateStatus(r.Context(), id, in)
				if err != nil {
					status, msg := mapOrderError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			ar.Delete("/v1/orders/{orderId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "orderId")
				if id == "" {
					Fail(w, 400, "missing orderId")
					return
				}
				if err := d.OrderSvc.Delete(r.Context(), id); err != nil {
					status, msg := mapOrderError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
			})

			// ===== Ad routes =====
			ar.Get("/v1/ads", func(w http.ResponseWriter, r *http.Request) {
				out, err := d.AdsSvc.List(r.Context())
				if err != nil {
					status, msg := mapAdsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"ads": out})
			})

			ar.Post("/v1/ads", func(w http.ResponseWriter, r *http.Request) {
				var in ads.CreateInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				in.Trim()

				out, err := d.AdsSvc.Create(r.Context(), in)
				if err != nil {
					status, msg := mapAdsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 201, out)
			})

			ar.Get("/v1/ads/{adId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "adId")
				if id == "" {
					Fail(w, 400, "missing adId")
					return
				}
				out, err := d.AdsSvc.Get(r.Context(), id)
				if err != nil {
					status, msg := mapAdsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			ar.Put("/v1/ads/{adId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "adId")
				if id == "" {
					Fail(w, 400, "missing adId")
					return
				}

				var in ads.UpdateInput
				if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
					Fail(w, 400, "invalid json")
					return
				}
				in.Trim()

				out, err := d.AdsSvc.Update(r.Context(), id, in)
				if err != nil {
					status, msg := mapAdsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			// Ads are tombstoned, not removed; GET keeps returning 404.
			ar.Delete("/v1/ads/{adId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "adId")
				if id == "" {
					Fail(w, 400, "missing adId")
					return
				}
				if err := d.AdsSvc.Delete(r.Context(), id); err != nil {
					status, msg := mapAdsError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
			})

			// ===== User routes =====
			ar.Get("/v1/users", func(w http.ResponseWriter, r *http.Request) {
				out, err := d.UserSvc.List(r.Context())
				if err != nil {
					status, msg := mapUserError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"users": out})
			})

			ar.Get("/v1/users/{userId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "userId")
				if id == "" {
					Fail(w, 400, "missing userId")
					return
				}
				out, err := d.UserSvc.Get(r.Context(), id)
				if err != nil {
					status, msg := mapUserError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			ar.Post("/v1/users/{userId}/active", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "userId")
				if id == "" {
					Fail(w, 400, "missing userId")
					return
				}

				var body struct {
					Active bool `json:"active"`
				}
				if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
					Fail(w, 400, "invalid json")
					return
				}

				out, err := d.UserSvc.SetActive(r.Context(), id, body.Active)
				if err != nil {
					status, msg := mapUserError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, out)
			})

			ar.Delete("/v1/users/{userId}", func(w http.ResponseWriter, r *http.Request) {
				id := chi.URLParam(r, "userId")
				if id == "" {
					Fail(w, 400, "missing userId")
					return
				}
				if err := d.UserSvc.Delete(r.Context(), id); err != nil {
					status, msg := mapUserError(err)
					Fail(w, status, msg)
					return
				}
				WriteJSON(w, 200, map[string]any{"ok": true, "deleted": id})
			})

			// ===== Dashboard stats =====
			ar.Get("/v1/stats/dashboard", func(w http.ResponseWriter, r *http.Request) {
				out, err := d.StatsSvc.GetDashboardStats(r.Context())
				if err != nil {
					Fail(w, 500, err.Error())
					return
				}
				WriteJSON(w, 200, out)
			})

			// ===== Auto-close settings =====
			if d.AutoCloser != nil {
				ar.Get("/v1/settings/autoclose", func(w http.ResponseWriter, r *http.Request) {
					WriteJSON(w, 200, d.AutoCloser.Config())
				})

				ar.Put("/v1/settings/autoclose", func(w http.ResponseWriter, r *http.Request) {
					var in scheduler.Config
					if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
						Fail(w, 400, "invalid json")
						return
					}
					if err := d.AutoCloser.UpdateConfig(r.Context(), in); err != nil {
						if scheduler.IsErrBadConfig(err) {
							Fail(w, 400, err.Error())
							return
						}
						Fail(w, 500, err.Error())
						return
					}
					WriteJSON(w, 200, d.AutoCloser.Config())
				})
			}

			// ===== Upload routes =====
			if d.Uploads != nil {
				ar.Post("/v1/uploads/signed-url", d.Uploads.CreateSignedUploadURL)
				ar.Post("/v1/uploads/signed-urls", d.Uploads.CreateSignedUploadURLs)
			}
		})
	})

	return r
}

func mapRestaurantError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case restaurant.IsErrNotFound(err):
		return 404, err.Error()
	case restaurant.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapUniversityError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case university.IsErrNotFound(err):
		return 404, err.Error()
	case university.IsErrBadRequest(err):
		return 400, err.Error()
	case university.IsErrConflict(err):
		return 409, err.Error()
	default:
		return 500, err.Error()
	}
}

// Campus operations surface errors from both sides of the association.
func mapCampusError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case university.IsErrNotFound(err), restaurant.IsErrNotFound(err):
		return 404, err.Error()
	case university.IsErrBadRequest(err), restaurant.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapMenuError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case menu.IsErrNotFound(err):
		return 404, err.Error()
	case menu.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapOrderError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case order.IsErrNotFound(err):
		return 404, err.Error()
	case order.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapAdsError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case ads.IsErrNotFound(err):
		return 404, err.Error()
	case ads.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}

func mapUserError(err error) (int, string) {
	if err == nil {
		return 500, "unknown error"
	}
	switch {
	case user.IsErrNotFound(err):
		return 404, err.Error()
	case user.IsErrBadRequest(err):
		return 400, err.Error()
	default:
		return 500, err.Error()
	}
}
