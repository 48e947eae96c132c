package tarot

// Role is the part a player takes in a deal
type Role int

// role constants. RoleNone means the dog is not resolved yet.
const (
	RoleNone Role = iota
	RoleTaker
	RoleAlly
	RoleDefenser
)

func (r Role) String() string {
	switch r {
	case RoleTaker:
		return "taker"
	case RoleAlly:
		return "ally of taker"
	case RoleDefenser:
		return "defenser"
	default:
		return "none"
	}
}

// Team is either the attack (taker and ally) or the defense
type Team int

// team constants
const (
	TeamNone Team = iota
	TeamAttack
	TeamDefense
)

func (t Team) String() string {
	switch t {
	case TeamAttack:
		return "attack"
	case TeamDefense:
		return "defense"
	default:
		return "none"
	}
}
