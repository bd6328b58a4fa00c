package enums

import "fmt"

// OrderStatus tracks a placed order. The simple checkout flow only ever
// produces completed orders.
type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
)

var validOrderStatuses = []OrderStatus{OrderStatusCompleted}

func (o OrderStatus) String() string {
	return string(o)
}

func (o OrderStatus) IsValid() bool {
	for _, candidate := range validOrderStatuses {
		if candidate == o {
			return true
		}
	}
	return false
}

func ParseOrderStatus(value string) (OrderStatus, error) {
	for _, candidate := range validOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order status %q", value)
}
