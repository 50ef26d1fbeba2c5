package tasklist

import "fmt"

// Placement selects where new tasks are inserted
type Placement int

const (
	PlaceFront Placement = iota
	PlaceBack
)

// String returns the config spelling of the placement
func (p Placement) String() string {
	switch p {
	case PlaceFront:
		return "front"
	case PlaceBack:
		return "back"
	default:
		return "unknown"
	}
}

// ParsePlacement parses "front" or "back"
func ParsePlacement(s string) (Placement, error) {
	switch s {
	case "front":
		return PlaceFront, nil
	case "back":
		return PlaceBack, nil
	default:
		return PlaceFront, fmt.Errorf("unknown placement %q (want front or back)", s)
	}
}

// Addressing selects how rows refer back to their task
type Addressing int

const (
	// AddressKey uses stable slot keys that survive insertions elsewhere.
	AddressKey Addressing = iota
	// AddressIndex uses plain positions; a row's address shifts when
	// tasks are inserted ahead of it.
	AddressIndex
)

// String returns the config spelling of the addressing scheme
func (a Addressing) String() string {
	switch a {
	case AddressKey:
		return "key"
	case AddressIndex:
		return "index"
	default:
		return "unknown"
	}
}

// ParseAddressing parses "key" or "index"
func ParseAddressing(s string) (Addressing, error) {
	switch s {
	case "key":
		return AddressKey, nil
	case "index":
		return AddressIndex, nil
	default:
		return AddressKey, fmt.Errorf("unknown addressing %q (want key or index)", s)
	}
}
