package freight

// ShipmentType is the declared cargo category. Unknown values price as
// STANDARD rather than failing, matching the tariff table.
type ShipmentType string

const (
	TypeStandard  ShipmentType = "STANDARD"
	TypeExpress   ShipmentType = "EXPRESS"
	TypeFragile   ShipmentType = "FRAGILE"
	TypeHazardous ShipmentType = "HAZARDOUS"
)

// Urgency is the shipper-declared priority tier.
type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
	UrgencyUrgent Urgency = "URGENT"
)

func ValidShipmentType(t ShipmentType) bool {
	switch t {
	case TypeStandard, TypeExpress, TypeFragile, TypeHazardous:
		return true
	}
	return false
}

func ValidUrgency(u Urgency) bool {
	switch u {
	case UrgencyLow, UrgencyMedium, UrgencyHigh, UrgencyUrgent:
		return true
	}
	return false
}
