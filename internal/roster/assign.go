// Package roster places students into exam rooms and builds the posting list.
package roster

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"examdocs/internal/collation"
	"examdocs/internal/model"
)

// NewRand returns a freshly seeded source. Every call yields an independent permutation stream.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// NewSeededRand returns a deterministic source for reproducible assignments.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Assign shuffles students and cuts the permutation into contiguous slices, one per room,
// in room order. Each slice is sorted by identifier and ranked from 1.
// The capacities must add up to len(students); nothing is truncated or padded.
func Assign(students []model.Student, rooms []model.Room, rng *rand.Rand) (*model.Assignment, error) {
	for _, room := range rooms {
		if room.Capacity < 1 {
			return nil, fmt.Errorf("%w: room %q has %d", ErrInvalidCapacity, room.Name, room.Capacity)
		}
	}
	total := model.TotalCapacity(rooms)
	if total != len(students) {
		return nil, &CapacityMismatchError{Expected: len(students), Got: total}
	}
	if rng == nil {
		rng = NewRand()
	}

	shuffled := slices.Clone(students)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	out := &model.Assignment{Rooms: make([]model.RoomRoster, 0, len(rooms))}
	ptr := 0
	for _, room := range rooms {
		part := slices.Clone(shuffled[ptr : ptr+room.Capacity])
		ptr += room.Capacity

		slices.SortStableFunc(part, func(a, b model.Student) int {
			return a.ID.Compare(b.ID)
		})

		seats := make([]model.Seat, len(part))
		for i, s := range part {
			seats[i] = model.Seat{Rank: i + 1, Student: s}
		}
		out.Rooms = append(out.Rooms, model.RoomRoster{Room: room, Seats: seats})
	}
	return out, nil
}

// Posting concatenates every room in order and sorts by the collation key of the family name.
// Students with equal keys keep their concatenation order. Ranks start at 1.
func Posting(a *model.Assignment) []model.PostingEntry {
	type keyed struct {
		key   string
		entry model.PostingEntry
	}

	rows := make([]keyed, 0, a.StudentCount())
	for _, rr := range a.Rooms {
		for _, seat := range rr.Seats {
			rows = append(rows, keyed{
				key:   collation.Key(seat.Student.FamilyName),
				entry: model.PostingEntry{Student: seat.Student, Room: rr.Room.Name},
			})
		}
	}

	slices.SortStableFunc(rows, func(x, y keyed) int {
		switch {
		case x.key < y.key:
			return -1
		case x.key > y.key:
			return 1
		}
		return 0
	})

	out := make([]model.PostingEntry, len(rows))
	for i, r := range rows {
		r.entry.Rank = i + 1
		out[i] = r.entry
	}
	return out
}
