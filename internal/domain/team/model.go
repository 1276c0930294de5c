package team

// Team is one club as stored, including its presentation fields.
type Team struct {
	ID      int64
	Name    string
	Image   string
	Stadium string
	Color   string
}
