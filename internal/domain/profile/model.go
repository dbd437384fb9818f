package profile

import "time"

// Profile maps to the profile table. The id is the external identity
// provider's user id, not a generated key.
type Profile struct {
	ID        string    `db:"id" json:"id"`
	Email     string    `db:"email" json:"email"`
	FullName  *string   `db:"full_name" json:"full_name"`
	Age       *int      `db:"age" json:"age"`
	Gender    *string   `db:"gender" json:"gender"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type UpsertRequest struct {
	Email    string  `json:"email" validate:"required,email"`
	FullName *string `json:"full_name"`
	Age      *int    `json:"age" validate:"omitempty,min=0,max=150"`
	Gender   *string `json:"gender"`
}

// UpsertResult reports whether the write created a new row.
type UpsertResult struct {
	Profile *Profile
	Created bool
}
