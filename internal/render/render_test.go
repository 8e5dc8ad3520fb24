package render

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"examdocs/internal/model"
)

var testInfo = model.ExamInfo{
	University: "Kırıkkale Üniversitesi",
	Faculty:    "Mühendislik Fakültesi",
	Department: "Bilgisayar Mühendisliği",
	Course:     "Algoritmalar",
	ExamType:   "Final Exam",
	Instructor: "Dr. Öğr. Üyesi Ada Şahin",
	Date:       "12.01.2026",
	Time:       "10:00",
}

func seats(n int) []model.Seat {
	out := make([]model.Seat, n)
	for i := range out {
		out[i] = model.Seat{
			Rank: i + 1,
			Student: model.Student{
				ID:         model.IntID(int64(20260000 + i)),
				GivenName:  "Çağrı",
				FamilyName: fmt.Sprintf("Işık %d", i),
			},
		}
	}
	return out
}

func TestAttendance_Pages(t *testing.T) {
	r := New(testInfo, Options{})

	tests := []struct {
		seats int
		pages int
	}{
		{0, 1},
		{1, 1},
		{50, 1},
		{51, 2},
		{120, 3},
	}
	for _, tt := range tests {
		p := r.attendance("A1", seats(tt.seats))
		require.NoError(t, p.pdf.Error())
		assert.Equal(t, tt.pages, p.pages(), "%d seats", tt.seats)
	}
}

func TestDoorList_Pages(t *testing.T) {
	r := New(testInfo, Options{PageSize: 20})
	p := r.doorList("B2", seats(41))
	require.NoError(t, p.pdf.Error())
	assert.Equal(t, 3, p.pages())
}

func TestPostingList_Pages(t *testing.T) {
	r := New(testInfo, Options{})

	entries := make([]model.PostingEntry, 100)
	for i := range entries {
		entries[i] = model.PostingEntry{Rank: i + 1, Student: seats(1)[0].Student, Room: "A1"}
	}

	short := r.postingList(entries[:10])
	assert.Equal(t, 1, short.pages())

	long := r.postingList(entries)
	require.NoError(t, long.pdf.Error())
	assert.Greater(t, long.pages(), 1)
}

func TestRenderer_Output(t *testing.T) {
	r := New(testInfo, Options{})

	att, err := r.Attendance("A1", seats(3))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(att, []byte("%PDF-")))

	door, err := r.DoorList("A1", seats(3))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(door, []byte("%PDF-")))

	post, err := r.PostingList([]model.PostingEntry{{Rank: 1, Student: seats(1)[0].Student, Room: "A1"}})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(post, []byte("%PDF-")))
}

func TestNew_PageSize(t *testing.T) {
	assert.Equal(t, DefaultPageSize, New(testInfo, Options{}).opts.PageSize)
	assert.Equal(t, 8, New(testInfo, Options{PageSize: 7}).opts.PageSize)
}

func TestASCIIText(t *testing.T) {
	assert.Equal(t, "Cagri Isik", asciiText("Çağrı Işık"))
	assert.Equal(t, "IGDIR SEHIR OGUZ", asciiText("IĞDIR ŞEHİR OĞUZ"))
	assert.Equal(t, "Kazim ?", asciiText("Kâzım €"))
}

func TestLoadFont(t *testing.T) {
	f, err := LoadFont("DejaVu", "", "")
	assert.NoError(t, err)
	assert.Nil(t, f)

	_, err = LoadFont("DejaVu", filepath.Join(t.TempDir(), "missing.ttf"), "bold.ttf")
	assert.Error(t, err)
}
