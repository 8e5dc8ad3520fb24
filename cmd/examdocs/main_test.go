package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"examdocs/internal/config"
	"examdocs/internal/model"
	"examdocs/internal/roster"
	"examdocs/internal/session"
	"examdocs/internal/spreadsheet"
)

const examYAML = `university: Ankara University
faculty: Engineering
department: Computer Engineering
course: MATH101
exam_type: Final
instructor: Dr. Yılmaz
date: "2026-06-01"
time: "10:00"
rooms:
  - name: A101
    capacity: 2
`

func writeStudents(t *testing.T, dir string, n int) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	header := []any{"No", "Given Name", "Family Name"}
	require.NoError(t, f.SetSheetRow(sheet, "A1", &header))
	for i := 0; i < n; i++ {
		row := []any{100 + i, fmt.Sprintf("Ada%d", i), fmt.Sprintf("Şahin%d", i)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	path := filepath.Join(dir, "students.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := &config.AppConfig{
		Timezone: "UTC",
		Exam:     config.ExamConfig{MaxRoomCapacity: 300, PageSize: 50},
	}
	root := newRootCmd(cfg)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestParseRoom(t *testing.T) {
	tests := []struct {
		in      string
		want    model.Room
		wantErr bool
	}{
		{in: "A101:40", want: model.Room{Name: "A101", Capacity: 40}},
		{in: " Lab 2 : 15", want: model.Room{Name: "Lab 2", Capacity: 15}},
		{in: "Hall:B:30", want: model.Room{Name: "Hall:B", Capacity: 30}},
		{in: "A101", wantErr: true},
		{in: "A101:many", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseRoom(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadExamFile(t *testing.T) {
	dir := t.TempDir()

	exam, err := loadExamFile(writeFile(t, dir, "exam.yaml", examYAML))
	require.NoError(t, err)
	assert.Equal(t, "MATH101", exam.Course)
	assert.Equal(t, "Final", exam.ExamType)
	assert.Equal(t, "10:00", exam.Time)
	assert.Equal(t, []model.Room{{Name: "A101", Capacity: 2}}, exam.Rooms)

	exam, err = loadExamFile(writeFile(t, dir, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Empty(t, exam.Rooms)

	exam, err = loadExamFile("")
	require.NoError(t, err)
	assert.NotNil(t, exam)

	_, err = loadExamFile(writeFile(t, dir, "typo.yaml", "coarse: MATH101\n"))
	assert.ErrorContains(t, err, "failed to parse exam file")

	_, err = loadExamFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to open exam file")
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	students := writeStudents(t, dir, 3)
	exam := writeFile(t, dir, "exam.yaml", examYAML)
	output := filepath.Join(dir, "bundle.zip")

	out, err := execute(t, "generate", "--students", students, "--exam", exam, "--room", "B202:1", "--seed", "42", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "2 rooms, 3 students, 5 files")

	zr, err := zip.OpenReader(output)
	require.NoError(t, err)
	defer zr.Close()
	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.Equal(t, []string{
		"Attendance_A101.pdf", "DoorList_A101.pdf",
		"Attendance_B202.pdf", "DoorList_B202.pdf",
		"PostingList.pdf",
	}, names)
}

func TestGenerateCommand_Errors(t *testing.T) {
	dir := t.TempDir()
	students := writeStudents(t, dir, 3)
	exam := writeFile(t, dir, "exam.yaml", examYAML)
	output := filepath.Join(dir, "bundle.zip")

	_, err := execute(t, "generate", "--students", students, "--exam", exam, "-o", output)
	assert.ErrorIs(t, err, roster.ErrCapacityMismatch)
	assert.ErrorContains(t, err, "capacity mismatch: expected 3, got 2")
	assert.NoFileExists(t, output)

	_, err = execute(t, "generate", "--students", students, "--exam", exam, "--room", "A101:1", "-o", output)
	assert.ErrorIs(t, err, session.ErrDuplicateRoom)

	_, err = execute(t, "generate", "--students", students, "--exam", exam, "--room", "Huge:301", "-o", output)
	assert.ErrorIs(t, err, session.ErrInvalidCapacity)

	_, err = execute(t, "generate", "--students", students, "--room", "A101:3", "-o", output)
	assert.ErrorIs(t, err, model.ErrMissingFields)

	_, err = execute(t, "generate", "--exam", exam)
	assert.ErrorContains(t, err, `required flag(s) "students" not set`)
}

func TestTemplateCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "template.xlsx")

	out, err := execute(t, "template", "-o", output)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote "+output)

	f, err := excelize.OpenFile(output)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{spreadsheet.TemplateSheet}, f.GetSheetList())
}
