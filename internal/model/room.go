package model

// Room is a named exam room with a fixed seating capacity.
type Room struct {
	Name     string `json:"name" yaml:"name"`
	Capacity int    `json:"capacity" yaml:"capacity"`
}

// TotalCapacity sums the capacity of every room.
func TotalCapacity(rooms []Room) int {
	total := 0
	for _, r := range rooms {
		total += r.Capacity
	}
	return total
}

// Seat is a student placed in a room with its 1-based rank inside that room.
type Seat struct {
	Rank    int     `json:"rank"`
	Student Student `json:"student"`
}

// RoomRoster is the ordered list of seats of one room.
type RoomRoster struct {
	Room  Room   `json:"room"`
	Seats []Seat `json:"seats"`
}

// Assignment maps rooms, in definition order, to their rosters.
type Assignment struct {
	Rooms []RoomRoster `json:"rooms"`
}

// Lookup returns the roster of the named room.
func (a *Assignment) Lookup(name string) (RoomRoster, bool) {
	for _, rr := range a.Rooms {
		if rr.Room.Name == name {
			return rr, true
		}
	}
	return RoomRoster{}, false
}

// StudentCount is the number of seated students across all rooms.
func (a *Assignment) StudentCount() int {
	n := 0
	for _, rr := range a.Rooms {
		n += len(rr.Seats)
	}
	return n
}

// PostingEntry is one line of the public posting list.
type PostingEntry struct {
	Rank    int     `json:"rank"`
	Student Student `json:"student"`
	Room    string  `json:"room"`
}
