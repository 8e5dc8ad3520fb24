package spreadsheet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"examdocs/internal/model"
)

// workbook builds an in-memory xlsx with the given rows on its first sheet.
func workbook(t *testing.T, rows [][]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestRead(t *testing.T) {
	buf := workbook(t, [][]any{
		{"No", "Given Name", "Family Name", "Program"},
		{20231003, "Ayşe", "Yılmaz", "CENG"},
		{"B-17", " Mehmet ", "Öztürk"},
		{},
		{20231001, "Zeynep", "Çelik"},
	})

	got, err := Read(buf)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, model.IntID(20231003), got[0].ID)
	assert.Equal(t, "Ayşe", got[0].GivenName)
	assert.Equal(t, "Yılmaz", got[0].FamilyName)
	assert.Equal(t, []string{"CENG"}, got[0].Extra)

	assert.Equal(t, model.IdentifierText, got[1].ID.Kind)
	assert.Equal(t, "B-17", got[1].ID.String())
	assert.Equal(t, "Mehmet", got[1].GivenName)
	assert.Nil(t, got[1].Extra)

	assert.Equal(t, "20231001", got[2].ID.String())
}

func TestRead_TooFewColumns(t *testing.T) {
	buf := workbook(t, [][]any{
		{"No", "Name"},
		{1, "Ayşe Yılmaz"},
	})

	got, err := Read(buf)
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrMalformedTable)

	var mt *MalformedTableError
	require.ErrorAs(t, err, &mt)
	assert.Equal(t, 2, mt.Columns)
}

func TestRead_EmptyWorkbook(t *testing.T) {
	_, err := Read(workbook(t, nil))
	assert.ErrorIs(t, err, ErrMalformedTable)
}

func TestRead_HeaderOnly(t *testing.T) {
	got, err := Read(workbook(t, [][]any{{"No", "Given Name", "Family Name"}}))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRead_NotAWorkbook(t *testing.T) {
	_, err := Read(strings.NewReader("No,Given Name,Family Name\n1,a,b\n"))
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestTemplate(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Template(&buf))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{TemplateSheet}, f.GetSheetList())
	rows, err := f.GetRows(TemplateSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, TemplateHeader, rows[0])

	// the template round-trips through Read as an empty table
	var again bytes.Buffer
	require.NoError(t, Template(&again))
	students, err := Read(&again)
	require.NoError(t, err)
	assert.Empty(t, students)
}
