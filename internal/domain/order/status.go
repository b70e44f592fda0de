package order

// Status is one of the canonical order states. Older documents written by
// earlier dashboard builds carry "on-the-way" instead of StatusOutForDelivery;
// CanonicalStatus maps that alias on read, and writes accept canonical values
// only.
type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusCancelled      Status = "cancelled"
)

// AllStatuses is the authoritative vocabulary, in display order.
var AllStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
	StatusDelivered,
	StatusCancelled,
}

var legacyAliases = map[string]Status{
	"on-the-way": StatusOutForDelivery,
}

var validStatuses = func() map[Status]bool {
	m := make(map[Status]bool, len(AllStatuses))
	for _, s := range AllStatuses {
		m[s] = true
	}
	return m
}()

// CanonicalStatus normalizes a stored status string. Unknown values pass
// through unchanged: documents with drifted vocabularies still render, they
// just can't be written back as-is.
func CanonicalStatus(raw string) Status {
	if raw == "" {
		return StatusPending
	}
	if alias, ok := legacyAliases[raw]; ok {
		return alias
	}
	return Status(raw)
}

// IsValidStatus reports whether s may be written.
func IsValidStatus(s Status) bool {
	return validStatuses[s]
}
