package aggregate

import (
	"fmt"
	"strings"

	"github.com/okian/djtour/internal/domain/model"
)

// Field names a categorical column that rows can be grouped by.
type Field string

const (
	FieldEntity    Field = "entity"
	FieldGenre     Field = "genre"
	FieldEventType Field = "event_type"
	FieldVenue     Field = "venue"
	FieldCity      Field = "city"
	FieldCountry   Field = "country"
)

// ParseField maps a column name to a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(strings.ToLower(strings.TrimSpace(s))); f {
	case FieldEntity, FieldGenre, FieldEventType, FieldVenue, FieldCity, FieldCountry:
		return f, nil
	case "dj_name", "entity_name":
		return FieldEntity, nil
	case "venue_name":
		return FieldVenue, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownField, s)
	}
}

// value extracts the field from e. Unknown fields group everything under "".
func (f Field) value(e model.Event) string {
	switch f {
	case FieldEntity:
		return e.EntityName
	case FieldGenre:
		return e.Genre
	case FieldEventType:
		return e.EventType
	case FieldVenue:
		return e.VenueName
	case FieldCity:
		return e.City
	case FieldCountry:
		return e.Country
	default:
		return ""
	}
}
