package importer

import "github.com/shopspring/decimal"

// Log actions emitted by the restaurant import
const (
	ActionCreatedRestaurant = "created_restaurant"
	ActionCreatedMenu       = "created_menu"
	ActionCreated           = "created"
	ActionUpdated           = "updated"
	ActionUnchanged         = "unchanged"
	ActionLinked            = "linked"
	ActionFound             = "found"
	ActionRestaurantError   = "restaurant_error"
	ActionMenuError         = "menu_error"
	ActionItemError         = "item_error"
	ActionLinkError         = "link_error"
	ActionInvalidJSON       = "invalid_json"
)

// LogPrice is a decimal that encodes as a bare JSON number, matching the
// numeric prices accepted in import documents. decimal.Decimal's default
// encoding would quote it.
type LogPrice struct {
	decimal.Decimal
}

func (p LogPrice) MarshalJSON() ([]byte, error) {
	return []byte(p.String()), nil
}

// NewLogPrice wraps a price for inclusion in a log entry; nil stays nil so
// the field is omitted.
func NewLogPrice(d *decimal.Decimal) *LogPrice {
	if d == nil {
		return nil
	}
	return &LogPrice{*d}
}

// LogEntry records one action or error observed while processing an import
// document. Fields that do not apply to the action are omitted from the JSON
// encoding entirely. Error holds either a single message string (parse
// failures) or a list of validation messages (record failures).
type LogEntry struct {
	Restaurant string    `json:"restaurant,omitempty"`
	Menu       string    `json:"menu,omitempty"`
	Item       string    `json:"item,omitempty"`
	Action     string    `json:"action"`
	Price      *LogPrice `json:"price,omitempty"`
	Error      any       `json:"error,omitempty"`
}

// Result is the outcome of one import run. Success reflects whether the
// document parsed and the transaction committed, not whether every record
// applied cleanly; record-level failures appear as error entries in Logs.
type Result struct {
	Success bool       `json:"success"`
	Logs    []LogEntry `json:"logs"`
}
