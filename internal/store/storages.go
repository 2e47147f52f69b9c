package store

// Storages bundles all repository implementations behind their interfaces
// so the service layer receives a single dependency.
type Storages struct {
	UserRepository UserRepository
	TodoRepository TodoRepository
}

func NewStorages(db *DB) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, db.logger),
		TodoRepository: NewTodoRepository(db, db.logger),
	}
}
