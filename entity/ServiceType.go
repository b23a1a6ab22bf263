package entity

import "fmt"

// ServiceType says how the order is served. A table number is only valid
// for dine-in; takeaway orders keep the zero sentinel.
type ServiceType string

const (
	DineIn   ServiceType = "DINE_IN"
	Takeaway ServiceType = "TAKEAWAY"
)

func ParseServiceType(s string) (ServiceType, error) {
	switch st := ServiceType(s); st {
	case DineIn, Takeaway:
		return st, nil
	}
	return "", fmt.Errorf("unknown service type %q", s)
}
