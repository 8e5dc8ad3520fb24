package spreadsheet

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

const (
	// TemplateSheet is the sheet name of the downloadable template.
	TemplateSheet = "Students"
	// TemplateFilename is the name offered to the browser.
	TemplateFilename = "exam_student_list_template.xlsx"
	// ContentType of xlsx workbooks.
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// TemplateHeader is the header row users paste their student list under.
var TemplateHeader = []string{"No", "Given Name", "Family Name"}

// Template writes an empty student list workbook.
func Template(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), TemplateSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	for i, h := range TemplateHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(TemplateSheet, cell, h); err != nil {
			return fmt.Errorf("set header %s: %w", cell, err)
		}
	}
	if err := f.SetColWidth(TemplateSheet, "A", "A", 16); err != nil {
		return err
	}
	if err := f.SetColWidth(TemplateSheet, "B", "C", 24); err != nil {
		return err
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write template: %w", err)
	}
	return nil
}
