package domain

import "time"

// Tier is a pricing/eligibility capability a member can hold
type Tier string

const (
	TierResident Tier = "resident"
	TierALTA     Tier = "alta"
	TierUSTA     Tier = "usta"
)

// TierSet holds the independent tier flags of a user
type TierSet struct {
	Resident bool
	ALTA     bool
	USTA     bool
}

// Discounted reports whether any tier grants the discounted rate
func (t TierSet) Discounted() bool {
	return t.Resident || t.ALTA || t.USTA
}

// Tiers lists the held tiers in a stable order
func (t TierSet) Tiers() []Tier {
	tiers := make([]Tier, 0, 3)
	if t.Resident {
		tiers = append(tiers, TierResident)
	}
	if t.ALTA {
		tiers = append(tiers, TierALTA)
	}
	if t.USTA {
		tiers = append(tiers, TierUSTA)
	}
	return tiers
}

// User represents a member or staff account
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Tiers        TierSet
	IsStaff      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TierUpdate is a partial update of tier flags. Nil fields are left unchanged.
type TierUpdate struct {
	Resident *bool
	ALTA     *bool
	USTA     *bool
}

// IsEmpty reports whether the update carries no fields
func (u TierUpdate) IsEmpty() bool {
	return u.Resident == nil && u.ALTA == nil && u.USTA == nil
}

// Apply returns t with the update applied
func (u TierUpdate) Apply(t TierSet) TierSet {
	if u.Resident != nil {
		t.Resident = *u.Resident
	}
	if u.ALTA != nil {
		t.ALTA = *u.ALTA
	}
	if u.USTA != nil {
		t.USTA = *u.USTA
	}
	return t
}

// FieldNames lists the wire names of the fields present in the update
func (u TierUpdate) FieldNames() []string {
	names := make([]string, 0, 3)
	if u.Resident != nil {
		names = append(names, "is_resident")
	}
	if u.ALTA != nil {
		names = append(names, "is_alta_member")
	}
	if u.USTA != nil {
		names = append(names, "is_usta_member")
	}
	return names
}
