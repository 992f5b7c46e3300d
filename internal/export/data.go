package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/yarbel/yesodot/internal/elements"
)

// Record is the flat export shape of one element, with the derived particle
// counts the views show.
type Record struct {
	Number        int    `json:"number" yaml:"number"`
	Symbol        string `json:"symbol" yaml:"symbol"`
	Name          string `json:"name" yaml:"name"`
	HebrewName    string `json:"hebrew_name" yaml:"hebrew_name"`
	Category      string `json:"category" yaml:"category"`
	Phase         string `json:"phase" yaml:"phase"`
	AtomicMass    string `json:"atomic_mass" yaml:"atomic_mass"`
	Shells        []int  `json:"shells" yaml:"shells,flow"`
	Neutrons      int    `json:"neutrons" yaml:"neutrons"`
	Electrons     int    `json:"electrons" yaml:"electrons"`
	HebrewSummary string `json:"hebrew_summary" yaml:"hebrew_summary"`
}

func record(el *elements.Element) Record {
	return Record{
		Number:        el.Number,
		Symbol:        el.Symbol,
		Name:          el.Name,
		HebrewName:    el.HebrewName,
		Category:      string(el.Category),
		Phase:         string(el.Phase),
		AtomicMass:    el.AtomicMass,
		Shells:        el.Shells,
		Neutrons:      el.Neutrons(),
		Electrons:     el.Electrons(),
		HebrewSummary: el.HebrewSummary,
	}
}

// Records builds export rows for the given elements, or the whole table
// when els is nil.
func Records(els []*elements.Element) []Record {
	if els == nil {
		els = elements.All()
	}
	out := make([]Record, len(els))
	for i, el := range els {
		out[i] = record(el)
	}
	return out
}

// WriteJSON writes the elements as an indented JSON array.
func WriteJSON(w io.Writer, els []*elements.Element) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Records(els))
}

// WriteYAML writes the elements as a YAML sequence.
func WriteYAML(w io.Writer, els []*elements.Element) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(Records(els))
}

// WriteCSV writes the elements as CSV with a header row. Shell occupancies
// are space-separated inside one column.
func WriteCSV(w io.Writer, els []*elements.Element) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"number", "symbol", "name", "hebrew_name", "category", "phase", "atomic_mass", "shells", "neutrons", "electrons"}); err != nil {
		return err
	}
	for _, r := range Records(els) {
		shells := ""
		for i, s := range r.Shells {
			if i > 0 {
				shells += " "
			}
			shells += strconv.Itoa(s)
		}
		row := []string{
			strconv.Itoa(r.Number),
			r.Symbol,
			r.Name,
			r.HebrewName,
			r.Category,
			r.Phase,
			r.AtomicMass,
			shells,
			strconv.Itoa(r.Neutrons),
			strconv.Itoa(r.Electrons),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
