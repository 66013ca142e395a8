package intent

import "strings"

type SearchType string

const (
	SearchByName     SearchType = "NAME"
	SearchByCategory SearchType = "CATEGORY"
	SearchByVenue    SearchType = "VENUE"
	SearchByDate     SearchType = "DATE"
	SearchGeneral    SearchType = "GENERAL"
)

func ParseSearchType(raw string) SearchType {
	switch t := SearchType(strings.ToUpper(strings.TrimSpace(raw))); t {
	case SearchByName, SearchByCategory, SearchByVenue, SearchByDate:
		return t
	default:
		return SearchGeneral
	}
}

// SearchIntent is a classified free-text query. Value is empty for DATE and GENERAL.
type SearchIntent struct {
	Type  SearchType
	Value string
}

// GeneralSearch is what every unclassifiable query degrades to.
func GeneralSearch() SearchIntent {
	return SearchIntent{Type: SearchGeneral}
}

// SearchIntentPayload is the JSON shape the classifier is asked to return.
type SearchIntentPayload struct {
	SearchType  *string `json:"searchType"`
	SearchValue *string `json:"searchValue"`
}

// Intent resolves the payload. A missing type, an unknown type, or a missing
// value for a type that needs one all fall back to a general search.
func (p SearchIntentPayload) Intent() SearchIntent {
	if p.SearchType == nil {
		return GeneralSearch()
	}
	t := ParseSearchType(*p.SearchType)

	var value string
	if p.SearchValue != nil {
		value = strings.TrimSpace(*p.SearchValue)
	}

	switch t {
	case SearchByName, SearchByCategory, SearchByVenue:
		if value == "" {
			return GeneralSearch()
		}
		return SearchIntent{Type: t, Value: value}
	case SearchByDate:
		return SearchIntent{Type: SearchByDate}
	default:
		return GeneralSearch()
	}
}
