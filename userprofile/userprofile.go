// Package userprofile implements the User type used throughout the examples.
package userprofile

// User represents a member's profile information.
type User struct {
	Name     string
	Username string
	Email    string
	ID       int32
	Indian   bool
}

// NewUser is responsible for creating an instance of the User type.
func NewUser(name string, username string, email string, id int32, indian bool) *User {

	return &User{Name: name, Username: username, Email: email, ID: id, Indian: indian}
}
