package records

// Storage keys. Each names one serialized blob in the kv backend.
const (
	KeyAuth      = "restroboost_auth"
	KeyUsers     = "restroboost_users"
	KeyInventory = "restroboost_inventory"
	KeyMenu      = "restroboost_menu"
	KeyFeedback  = "restroboost_feedback"
	KeyOrders    = "restroboost_orders"
)

// BusinessKeys are the collections cleared by a demo reset. Users and the
// session pointer are deliberately absent.
var BusinessKeys = []string{KeyInventory, KeyMenu, KeyFeedback, KeyOrders}
