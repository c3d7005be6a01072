package expense

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Report is a server-computed aggregation over a period.
type Report struct {
	Total      float64
	Categories []CategoryAmount
}

// CategoryAmount is one line of a report's category summary.
type CategoryAmount struct {
	Category string
	Amount   float64
}

// UnmarshalJSON decodes the wire shape {total, categorySummary} keeping
// the category lines in the order the server wrote them. A plain map
// would lose that order.
func (r *Report) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("report: expected object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		switch key {
		case "total":
			if err := dec.Decode(&r.Total); err != nil {
				return fmt.Errorf("report: total: %w", err)
			}
		case "categorySummary":
			if err := r.decodeSummary(dec); err != nil {
				return err
			}
		default:
			var skip json.RawMessage
			if err := dec.Decode(&skip); err != nil {
				return err
			}
		}
	}

	_, err = dec.Token() // closing }
	return err
}

func (r *Report) decodeSummary(dec *json.Decoder) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("report: expected categorySummary object, got %v", tok)
	}
	r.Categories = r.Categories[:0]
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, _ := keyTok.(string)
		var amount float64
		if err := dec.Decode(&amount); err != nil {
			return fmt.Errorf("report: category %q: %w", key, err)
		}
		r.Categories = append(r.Categories, CategoryAmount{Category: key, Amount: amount})
	}
	_, err = dec.Token()
	return err
}
