package domain

// Role is immutable reference data resolved by RoleName.
type Role struct {
	ID   int64  `db:"role_id" json:"role_id"`
	Name string `db:"role_name" json:"role_name"`
}

// Profession is immutable reference data resolved by Name.
type Profession struct {
	ID   int64  `db:"profession_id" json:"profession_id"`
	Name string `db:"profession_name" json:"profession_name"`
}
