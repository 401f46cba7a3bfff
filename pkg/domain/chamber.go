package domain

// Chamber is a legislative body acting on a bill
type Chamber string

// enum of chambers
const (
	House   Chamber = "House"
	Senate  Chamber = "Senate"
	Unknown Chamber = "Unknown"
)

// Code returns the single-letter chamber code used in member URLs, "H" or "S"
func (c Chamber) Code() string {
	switch c {
	case House:
		return "H"
	case Senate:
		return "S"
	default:
		return ""
	}
}

// ChamberFromCode maps "H"/"S" to a chamber, anything else is Unknown
func ChamberFromCode(code string) Chamber {
	switch code {
	case "H", "h":
		return House
	case "S", "s":
		return Senate
	default:
		return Unknown
	}
}

// Party is a member's political party
type Party string

// enum of parties
const (
	Republican Party = "Republican"
	Democrat   Party = "Democrat"
)

// PartyFromCode maps "R"/"D" to a party, returns empty party for anything else
func PartyFromCode(code string) Party {
	switch code {
	case "R":
		return Republican
	case "D":
		return Democrat
	default:
		return ""
	}
}
