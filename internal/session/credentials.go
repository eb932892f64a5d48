package session

// credential is an entry in the static credential table.
type credential struct {
	password string
	user     User
}

// credentials is the static credential table. There is no real user
// database: the two accounts below are the only ones that exist.
var credentials = []credential{
	{
		password: "123",
		user: User{
			ID:       "1",
			Username: "manager",
			Role:     RoleManager,
			Name:     "John Manager",
			Email:    "john.manager@productflow.com",
			Phone:    "+1 (555) 123-4567",
		},
	},
	{
		password: "123",
		user: User{
			ID:       "2",
			Username: "keeper",
			Role:     RoleStoreKeeper,
			Name:     "Jane Keeper",
			Email:    "jane.keeper@productflow.com",
			Phone:    "+1 (555) 987-6543",
		},
	},
}

// lookupCredential returns the user matching the given username and
// password, or false if none matches. Comparison is exact.
func lookupCredential(username, password string) (User, bool) {
	for _, c := range credentials {
		if c.user.Username == username && c.password == password {
			return c.user, true
		}
	}
	return User{}, false
}
