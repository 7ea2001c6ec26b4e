package constants

// SenderType is the coarse category of the party that sent a document.
type SenderType string

const (
	SenderCourt     SenderType = "Gericht"
	SenderAuthority SenderType = "Behörde"
	SenderInsurer   SenderType = "Versicherung"
	SenderOther     SenderType = "Sonstiger Dritter"
)

// senderPriority is the order in which keyword sets are checked.
var senderPriority = []SenderType{
	SenderCourt,
	SenderAuthority,
	SenderInsurer,
}

// SenderPriority returns the checked sender types in evaluation order.
// SenderOther is not part of it; it is the result when nothing matches.
func SenderPriority() []SenderType {
	out := make([]SenderType, len(senderPriority))
	copy(out, senderPriority)
	return out
}
