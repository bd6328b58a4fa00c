package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// OrderItem is the snapshot of one cart line at the moment of purchase.
type OrderItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Image     string `json:"image,omitempty"`
}

// OrderItems is stored as a JSON array in a text column so the same schema
// works on postgres and sqlite.
type OrderItems []OrderItem

// Value serializes the items to JSON text.
func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(o)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan decodes the JSON text column into the slice.
func (o *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}
	raw, err := asJSON(value)
	if err != nil {
		return err
	}
	var decoded OrderItems
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return err
	}
	*o = decoded
	return nil
}

// Count returns the total quantity across all lines.
func (o OrderItems) Count() int {
	total := 0
	for _, item := range o {
		total += item.Quantity
	}
	return total
}

func asJSON(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	default:
		return nil, fmt.Errorf("unsupported scan type %T", value)
	}
}
