package users

// User is the account record returned by the Spotilike backend. The session
// layer treats it as an opaque blob: no field is validated, and fields the
// backend adds later are simply ignored on decode.
type User struct {
	ID        int64  `json:"id,omitempty"`         // Unique identifier for the user
	Username  string `json:"username,omitempty"`   // Display / login name
	Email     string `json:"email,omitempty"`      // User's email address
	FirstName string `json:"first_name,omitempty"` // First name of the user
	LastName  string `json:"last_name,omitempty"`  // Last name of the user
}
