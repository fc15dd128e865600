package store

// AdminLogin sets and persists the admin session flag when the authenticator accepts
// the credential. A rejected credential changes nothing.
func (s *Store) AdminLogin(credential string) bool {
	if !s.auth.Verify(credential) {
		return false
	}

	s.mu.Lock()
	s.isAdmin = true
	s.persist(CollectionAdminSession)
	s.mu.Unlock()

	s.notify(CollectionAdminSession)
	return true
}

// AdminLogout clears the flag and deletes its persisted key.
func (s *Store) AdminLogout() {
	s.mu.Lock()
	s.isAdmin = false
	s.persist(CollectionAdminSession)
	s.mu.Unlock()

	s.notify(CollectionAdminSession)
}

func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isAdmin
}
