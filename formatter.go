package gridview

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter turns a cell value into the text drawn in the cell.
type Formatter interface {
	Format(value any) string
}

// FormatterFunc adapts a function to Formatter.
type FormatterFunc func(value any) string

func (f FormatterFunc) Format(value any) string {
	return f(value)
}

// SimpleFormatter prints values with fmt.Sprint. Nil values are blank.
type SimpleFormatter struct{}

func (SimpleFormatter) Format(value any) string {
	if value == nil {
		return ""
	}
	return fmt.Sprint(value)
}

// CheckboxFormatter draws boolean values as check boxes.
type CheckboxFormatter struct{}

func (CheckboxFormatter) Format(value any) string {
	if checked, _ := value.(bool); checked {
		return SemigraphicsCheckboxOn
	}
	return SemigraphicsCheckboxOff
}

// NumberFormatter prints numbers with the digit grouping and decimal
// separator of a language. Values that are not numbers fall back to
// SimpleFormatter.
type NumberFormatter struct {
	printer  *message.Printer
	decimals int
}

// NewNumberFormatter returns a formatter for tag that prints floating point
// values with exactly decimals fraction digits.
func NewNumberFormatter(tag language.Tag, decimals int) NumberFormatter {
	return NumberFormatter{
		printer:  message.NewPrinter(tag),
		decimals: max(decimals, 0),
	}
}

func (f NumberFormatter) Format(value any) string {
	if f.printer == nil {
		f.printer = message.NewPrinter(language.English)
	}
	switch v := value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return f.printer.Sprint(number.Decimal(v))
	case float32, float64:
		return f.printer.Sprint(number.Decimal(v,
			number.MinFractionDigits(f.decimals),
			number.MaxFractionDigits(f.decimals),
		))
	}
	return SimpleFormatter{}.Format(value)
}
