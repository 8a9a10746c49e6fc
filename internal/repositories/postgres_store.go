package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// NewPostgresStore wires the pgx-backed repositories into a Store.
func NewPostgresStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Requests:    NewRequestRepository(pool),
		Equipment:   NewEquipmentRepository(pool),
		Teams:       NewTeamRepository(pool),
		Users:       NewUserRepository(pool),
		WorkCenters: NewWorkCenterRepository(pool),
	}
}
