package accounts

// Store is the single authoritative collection of accounts. The user,
// employee and pending listings are filtered views over it, so there are no
// parallel owning collections to keep consistent. Not safe for concurrent
// use; the whole system is single-threaded.
type Store struct {
	live    []*Account
	pending []*Account
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) AddLive(a *Account) {
	s.live = append(s.live, a)
}

func (s *Store) AddPending(a *Account) {
	s.pending = append(s.pending, a)
}

// Users returns every live account, admins included, in insertion order.
// The slice is a copy; the accounts are shared.
func (s *Store) Users() []*Account {
	users := make([]*Account, len(s.live))
	copy(users, s.live)
	return users
}

// Employees returns the live employee accounts in insertion order.
func (s *Store) Employees() []*Account {
	var employees []*Account
	for _, a := range s.live {
		if !a.IsAdmin() {
			employees = append(employees, a)
		}
	}
	return employees
}

// Pending returns the registrations awaiting approval. These are invisible
// to authentication and to every listing.
func (s *Store) Pending() []*Account {
	pending := make([]*Account, len(s.pending))
	copy(pending, s.pending)
	return pending
}

// FindByUsername scans live accounts only.
func (s *Store) FindByUsername(username string) *Account {
	for _, a := range s.live {
		if a.Username == username {
			return a
		}
	}
	return nil
}

// UsernameTaken reports whether a username is held by any live or pending
// account. Registration and direct addition both enforce uniqueness here.
func (s *Store) UsernameTaken(username string) bool {
	if s.FindByUsername(username) != nil {
		return true
	}
	for _, a := range s.pending {
		if a.Username == username {
			return true
		}
	}
	return false
}

// RemoveByID deletes the live account with the given ID and reports whether
// it was found. Identity removal: two accounts with identical fields never
// collide.
func (s *Store) RemoveByID(id string) bool {
	for i, a := range s.live {
		if a.ID == id {
			s.live = append(s.live[:i], s.live[i+1:]...)
			return true
		}
	}
	return false
}

// TakePendingAt removes and returns the pending registration at the 1-based
// index. An index of zero or out of range returns nil without mutation.
func (s *Store) TakePendingAt(index int) *Account {
	if index < 1 || index > len(s.pending) {
		return nil
	}
	a := s.pending[index-1]
	s.pending = append(s.pending[:index-1], s.pending[index:]...)
	return a
}

func (s *Store) HasAdmin() bool {
	for _, a := range s.live {
		if a.IsAdmin() {
			return true
		}
	}
	return false
}

// Count is the number of live accounts. Replaces the reference
// implementation's global instance counter.
func (s *Store) Count() int {
	return len(s.live)
}
