package render

import "github.com/xuri/excelize/v2"

const (
	accentColor    = "4472C4"
	headerFontSize = 11
	cellFontSize   = 10
	titleFontSize  = 14
	mutedColor     = "666666"
)

// styleSet holds the style IDs registered in one workbook.
type styleSet struct {
	header   int
	center   int
	left     int
	title    int
	subtitle int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func newStyleSet(f *excelize.File) (styleSet, error) {
	var (
		s   styleSet
		err error
	)

	s.header, err = f.NewStyle(&excelize.Style{
		Border: thinBorder(),
		Fill:   excelize.Fill{Type: "pattern", Color: []string{accentColor}, Pattern: 1},
		Font:   &excelize.Font{Bold: true, Size: headerFontSize, Color: "FFFFFF"},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return s, err
	}

	s.center, err = f.NewStyle(&excelize.Style{
		Border:    thinBorder(),
		Font:      &excelize.Font{Size: cellFontSize},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return s, err
	}

	s.left, err = f.NewStyle(&excelize.Style{
		Border: thinBorder(),
		Font:   &excelize.Font{Size: cellFontSize},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
			WrapText:   true,
		},
	})
	if err != nil {
		return s, err
	}

	s.title, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: titleFontSize},
	})
	if err != nil {
		return s, err
	}

	s.subtitle, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: cellFontSize, Color: mutedColor},
	})
	return s, err
}
