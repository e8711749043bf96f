package profile

// Repository defines durable storage for the single buyer profile.
type Repository interface {
	// Load reads the persisted profile. Returns ErrNotFound when nothing has
	// been saved yet; any other error means the stored record is unreadable.
	Load() (*UserProfile, error)

	// Save overwrites the persisted profile wholesale.
	Save(p *UserProfile) error
}
