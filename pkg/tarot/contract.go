package tarot

// Contract is the bid won by the taker
type Contract int

// contract constants, ordered by strength
const (
	Pass Contract = iota
	Petite
	Garde
	GardeSans
	GardeContre
)

// Contracts returns every contract, Pass included, in increasing order
func Contracts() []Contract {
	return []Contract{Pass, Petite, Garde, GardeSans, GardeContre}
}

// Multiplier returns the factor applied to the contract points
func (c Contract) Multiplier() float64 {
	switch c {
	case Petite:
		return 1
	case Garde:
		return 2
	case GardeSans:
		return 4
	case GardeContre:
		return 6
	default:
		return 0
	}
}

// Above returns the contracts strictly stronger than c
func (c Contract) Above() []Contract {
	above := make([]Contract, 0, len(Contracts()))
	for _, other := range Contracts() {
		if other.Multiplier() > c.Multiplier() {
			above = append(above, other)
		}
	}

	return above
}

func (c Contract) String() string {
	switch c {
	case Pass:
		return "Pass"
	case Petite:
		return "Petite"
	case Garde:
		return "Garde"
	case GardeSans:
		return "Garde Sans"
	case GardeContre:
		return "Garde Contre"
	default:
		return "unknown"
	}
}
