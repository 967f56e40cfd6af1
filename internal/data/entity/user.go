package entity

// User is created on a visitor's first booking and looked up by email on
// every later one. Name and phone follow the latest submitted values.
type User struct {
	Base
	Name  string `db:"name"`
	Email string `db:"email"`
	Phone string `db:"phone"`
}
