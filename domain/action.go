package domain

// Action types observed from the storefront.
const (
	ActionView      = "view"
	ActionAddToCart = "add to cart"
	ActionPurchase  = "purchase"
)
