package domain

// Room is a rehearsal room from the association's fixed catalog.
type Room struct {
	ID       string
	Name     string
	Sector   string
	Capacity int
}
