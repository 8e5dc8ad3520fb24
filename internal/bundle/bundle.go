// Package bundle packs the generated documents of one exam into a zip archive.
package bundle

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/klauspost/compress/zip"

	"examdocs/internal/model"
)

const (
	// Filename is the download name of a bundle.
	Filename = "exam_documents.zip"
	// ContentType of a bundle.
	ContentType = "application/zip"

	PostingListName = "PostingList.pdf"
)

// Documents renders the three document types. *render.Renderer satisfies it.
type Documents interface {
	Attendance(room string, seats []model.Seat) ([]byte, error)
	DoorList(room string, seats []model.Seat) ([]byte, error)
	PostingList(entries []model.PostingEntry) ([]byte, error)
}

// Manifest describes what went into a bundle.
type Manifest struct {
	Files    []string `json:"files"`
	Rooms    int      `json:"rooms"`
	Students int      `json:"students"`
}

var unsafeName = strings.NewReplacer("/", "_", "\\", "_", ":", "_", "*", "_", "?", "_", "\"", "_", "<", "_", ">", "_", "|", "_")

// AttendanceName is the archive entry of a room's attendance sheet.
func AttendanceName(room string) string {
	return "Attendance_" + unsafeName.Replace(room) + ".pdf"
}

// DoorListName is the archive entry of a room's door list.
func DoorListName(room string) string {
	return "DoorList_" + unsafeName.Replace(room) + ".pdf"
}

// Build renders an attendance sheet and a door list per room, in room order,
// followed by the posting list, and writes them as one zip to w.
func Build(w io.Writer, docs Documents, a *model.Assignment, posting []model.PostingEntry) (*Manifest, error) {
	zw := zip.NewWriter(w)
	m := &Manifest{Rooms: len(a.Rooms), Students: a.StudentCount()}
	used := make(map[string]bool)
	modified := time.Now()

	add := func(name string, render func() ([]byte, error)) error {
		name = dedupe(used, name)
		data, err := render()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		f, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate, Modified: modified})
		if err != nil {
			return fmt.Errorf("create %s: %w", name, err)
		}
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
		m.Files = append(m.Files, name)
		return nil
	}

	for _, rr := range a.Rooms {
		if err := add(AttendanceName(rr.Room.Name), func() ([]byte, error) {
			return docs.Attendance(rr.Room.Name, rr.Seats)
		}); err != nil {
			return nil, err
		}
		if err := add(DoorListName(rr.Room.Name), func() ([]byte, error) {
			return docs.DoorList(rr.Room.Name, rr.Seats)
		}); err != nil {
			return nil, err
		}
	}
	if err := add(PostingListName, func() ([]byte, error) {
		return docs.PostingList(posting)
	}); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return m, nil
}

// dedupe suffixes a name when two rooms sanitize to the same entry. Every
// returned name is recorded so a suffixed name is never handed out twice.
func dedupe(used map[string]bool, name string) string {
	candidate := name
	base := strings.TrimSuffix(name, ".pdf")
	for n := 2; used[candidate]; n++ {
		candidate = fmt.Sprintf("%s_%d.pdf", base, n)
	}
	used[candidate] = true
	return candidate
}
