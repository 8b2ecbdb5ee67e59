package ports

// Store hands out repositories bound to one database handle. Unlike a unit of
// work it never opens a transaction spanning repositories: each call commits
// on its own.
type Store interface {
	ShipmentRepository() ShipmentRepository
	UserRepository() UserRepository
	CompanyRepository() CompanyRepository
	RepairRepository() RepairRepository
}
