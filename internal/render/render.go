// Package render lays out attendance sheets, door lists and the posting list as PDF.
package render

import (
	"fmt"
	"strconv"

	"examdocs/internal/model"
)

// DefaultPageSize is the number of students per page: two columns of 25.
const DefaultPageSize = 50

// Options tune a Renderer.
type Options struct {
	// Font is used when non-nil; otherwise text is transliterated for Helvetica.
	Font *Font
	// PageSize is the number of rows per page, split over two columns.
	PageSize int
}

// Renderer produces documents for one exam. The metadata is fixed at construction.
type Renderer struct {
	info model.ExamInfo
	opts Options
}

// New returns a renderer for the given exam.
func New(info model.ExamInfo, opts Options) *Renderer {
	if opts.PageSize <= 0 {
		opts.PageSize = DefaultPageSize
	}
	if opts.PageSize%2 != 0 {
		opts.PageSize++
	}
	return &Renderer{info: info, opts: opts}
}

type column struct {
	title string
	width float64
	align string
	value func(model.Seat) string
}

const columnGap = 2.0

var (
	serialColumn = column{title: "S.N", width: 8, align: "C", value: func(s model.Seat) string { return strconv.Itoa(s.Rank) }}
	numberColumn = column{title: "No", width: 20, align: "C", value: func(s model.Seat) string { return s.Student.ID.String() }}

	attendanceColumns = []column{
		serialColumn,
		numberColumn,
		{title: "Full Name", width: 42, align: "L", value: func(s model.Seat) string { return " " + s.Student.FullName() }},
		{title: "Signature", width: 25, align: "", value: func(model.Seat) string { return "" }},
	}
	doorListColumns = []column{
		serialColumn,
		numberColumn,
		{title: "Full Name", width: 70, align: "L", value: func(s model.Seat) string { return " " + s.Student.FullName() }},
	}
)

// Attendance renders the signature sheet of a room.
func (r *Renderer) Attendance(room string, seats []model.Seat) ([]byte, error) {
	return r.attendance(room, seats).finalize()
}

// DoorList renders the list posted on the room door.
func (r *Renderer) DoorList(room string, seats []model.Seat) ([]byte, error) {
	return r.doorList(room, seats).finalize()
}

// PostingList renders the combined alphabetical roster.
func (r *Renderer) PostingList(entries []model.PostingEntry) ([]byte, error) {
	return r.postingList(entries).finalize()
}

func (r *Renderer) attendance(room string, seats []model.Seat) *page {
	p := newPage(r.opts.Font, "Attendance "+room)
	r.twoColumnPages(p, seats, attendanceColumns,
		func() { r.attendanceHeader(p, room) },
		func() { r.attendanceFooter(p) },
	)
	return p
}

func (r *Renderer) doorList(room string, seats []model.Seat) *page {
	p := newPage(r.opts.Font, "Door List "+room)
	r.twoColumnPages(p, seats, doorListColumns,
		func() { r.doorListHeader(p, room) },
		nil,
	)
	return p
}

// twoColumnPages fills pages of PageSize seats: the first half down the left column,
// the second half down the right. Short pages are padded with empty bordered cells.
func (r *Renderer) twoColumnPages(p *page, seats []model.Seat, cols []column, header, footer func()) {
	perPage := r.opts.PageSize
	half := perPage / 2
	pages := max(1, (len(seats)+perPage-1)/perPage)

	for pageNo := 0; pageNo < pages; pageNo++ {
		p.addPage()
		header()
		tableHeader(p, cols)

		start := pageNo * perPage
		end := min(start+perPage, len(seats))

		p.font("", 7.5)
		for i := 0; i < half; i++ {
			seatRow(p, seats, start+i, end, cols, 0)
			p.cell(columnGap, 6.5, "", "0", 0, "")
			seatRow(p, seats, start+i+half, end, cols, 1)
		}

		if footer != nil {
			footer()
		}
	}
}

func tableHeader(p *page, cols []column) {
	p.font("B", 8)
	for side := 0; side < 2; side++ {
		for _, c := range cols {
			p.cell(c.width, 7, c.title, "1", 0, "C")
		}
		if side == 0 {
			p.cell(columnGap, 7, "", "0", 0, "")
		}
	}
	p.ln(7)
}

// seatRow writes one column-side of a row; ln is 1 on the right side to end the line.
func seatRow(p *page, seats []model.Seat, idx, end int, cols []column, ln int) {
	for i, c := range cols {
		next := 0
		if i == len(cols)-1 {
			next = ln
		}
		if idx < end {
			p.cell(c.width, 6.5, c.value(seats[idx]), "1", next, c.align)
		} else {
			p.cell(c.width, 6.5, "", "1", next, "")
		}
	}
}

func (r *Renderer) attendanceHeader(p *page, room string) {
	in := r.info
	p.font("B", 10)
	p.cell(0, 5, fmt.Sprintf("%s %s", in.University, in.Faculty), "", 1, "C")
	p.cell(0, 5, fmt.Sprintf("%s %s ATTENDANCE RECORD", in.Department, in.ExamType), "", 1, "C")
	p.ln(5)

	labelled := func(label string, lw float64, value string, vw float64, ln int) {
		p.font("B", 9)
		p.cell(lw, 8, " "+label, "1", 0, "")
		p.font("", 9)
		p.cell(vw, 8, " "+value, "1", ln, "")
	}
	labelled("Course", 25, in.Course, 168, 1)
	labelled("Room", 25, room, 40, 0)
	labelled("Date", 20, in.Date, 45, 0)
	labelled("Time", 21, in.Time, 42, 1)
	p.ln(3)
}

func (r *Renderer) attendanceFooter(p *page) {
	p.ln(4)
	p.font("", 9)
	p.cell(0, 5, "In this room ................. students sat the exam and handed in their papers.", "", 1, "")
	p.ln(2)

	const boxW, boxH, boxGap = 62.4, 25.0, 1.9
	y := p.pdf.GetY()
	titles := []string{"Proctor 1", "Proctor 2", "Instructor"}
	for j, title := range titles {
		x := leftMargin + float64(j)*(boxW+boxGap)
		p.pdf.Rect(x, y, boxW, boxH, "D")
		p.pdf.SetXY(x, y+1)
		p.font("B", 9)
		p.cell(boxW, 5, title, "0", 1, "C")
		p.font("", 8)
		p.pdf.SetX(x)
		if j == len(titles)-1 {
			p.cell(boxW, 5, " "+r.info.Instructor, "0", 1, "C")
		} else {
			p.cell(boxW, 5, " Full Name:", "0", 1, "L")
		}
		p.pdf.SetX(x)
		p.cell(boxW, 5, " Signature:", "0", 1, "L")
	}
}

func (r *Renderer) doorListHeader(p *page, room string) {
	in := r.info
	p.font("B", 14)
	p.cell(0, 8, in.University, "", 1, "C")
	p.ln(2)
	p.font("B", 12)
	p.cell(0, 7, in.Faculty, "", 1, "C")
	p.ln(2)
	p.font("B", 11)
	p.cell(0, 6, fmt.Sprintf("%s - %s %s", in.Department, in.Course, in.ExamType), "", 1, "C")
	p.ln(3)
	p.font("B", 13)
	p.cell(0, 8, "Room List - "+room, "", 1, "C")
	p.ln(8)
}

var postingColumns = []struct {
	title string
	width float64
	align string
}{
	{"Rank", 15, "C"},
	{"No", 25, "C"},
	{"Given Name", 50, ""},
	{"Family Name", 50, ""},
	{"Room", 25, "C"},
}

func (r *Renderer) postingList(entries []model.PostingEntry) *page {
	p := newPage(r.opts.Font, "Posting List")
	p.addPage()
	p.font("B", 12)
	p.cell(0, 10, fmt.Sprintf("%s %s SEATING PLAN", r.info.Course, r.info.ExamType), "", 1, "C")
	p.ln(5)

	header := func() {
		p.font("B", 9)
		for i, c := range postingColumns {
			ln := 0
			if i == len(postingColumns)-1 {
				ln = 1
			}
			p.cell(c.width, 8, c.title, "1", ln, "C")
		}
		p.font("", 7.5)
	}
	header()

	const rowH = 7.0
	for _, e := range entries {
		if !p.fits(rowH) {
			p.addPage()
			header()
		}
		values := []string{
			strconv.Itoa(e.Rank),
			e.Student.ID.String(),
			" " + e.Student.GivenName,
			" " + e.Student.FamilyName,
			" " + e.Room,
		}
		for i, c := range postingColumns {
			ln := 0
			if i == len(postingColumns)-1 {
				ln = 1
			}
			p.cell(c.width, rowH, values[i], "1", ln, c.align)
		}
	}
	return p
}
