package shared

// Minimal snapshots for command read operations

type RoomSnapshot struct {
	ID     int64
	Number int
	Type   string
	Price  float64
}

type ClientSnapshot struct {
	ID    int64
	Name  string
	Email string
}
