// Package dates converts stored date values into the two string forms the
// dashboard needs: a localized display form and the YYYY-MM-DD form used
// by date inputs. Null or invalid dates always map to the empty string.
package dates

import "time"

// Spanish month abbreviations as rendered by an es-CO medium date.
var monthAbbr = [...]string{
	"ene", "feb", "mar", "abr", "may", "jun",
	"jul", "ago", "sep", "oct", "nov", "dic",
}

// Display formats a date as "02 ene 2026". The zero time yields "".
func Display(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02 ") + monthAbbr[t.Month()-1] + t.Format(" 2006")
}

// Editable formats a date as "2006-01-02" for HTML date inputs. The zero
// time yields "".
func Editable(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// DisplayPtr is Display for nullable dates.
func DisplayPtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Display(*t)
}

// EditablePtr is Editable for nullable dates.
func EditablePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return Editable(*t)
}
