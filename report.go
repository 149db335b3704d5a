package tempeval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/jamesainslie/go-tempeval/action"
	"github.com/jamesainslie/go-tempeval/metrics"
)

// CategoryReport holds counts and scores for one category.
type CategoryReport struct {
	Category action.Category
	Counts   metrics.Counts
	Scores   metrics.Scores
}

// FileReport holds the results for one input file.
type FileReport struct {
	Name       string
	Records    int
	Total      metrics.Counts
	Scores     metrics.Scores
	Categories []CategoryReport // in category order
}

// Category returns the breakdown for cat.
func (f FileReport) Category(cat action.Category) (CategoryReport, bool) {
	for _, c := range f.Categories {
		if c.Category == cat {
			return c, true
		}
	}
	return CategoryReport{}, false
}

// Report collects file reports in the order they were added.
type Report struct {
	Files []FileReport
}

// Add appends f, replacing any earlier file with the same name in place.
func (r *Report) Add(f FileReport) {
	for i := range r.Files {
		if r.Files[i].Name == f.Name {
			r.Files[i] = f
			return
		}
	}
	r.Files = append(r.Files, f)
}

// Get returns the report for the named file.
func (r *Report) Get(name string) (FileReport, bool) {
	for _, f := range r.Files {
		if f.Name == name {
			return f, true
		}
	}
	return FileReport{}, false
}

// EncodeOptions controls report encoding.
type EncodeOptions struct {
	Indent int  // spaces per level; 0 selects 4
	Counts bool // include raw per-category counters
}

func (o EncodeOptions) indent() int {
	if o.Indent <= 0 {
		return 4
	}
	return o.Indent
}

// WriteJSON writes the report as an indented JSON object keyed by file name.
func (r *Report) WriteJSON(w io.Writer, opts EncodeOptions) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", strings.Repeat(" ", opts.indent()))
	if err := enc.Encode(r.tree(opts)); err != nil {
		return fmt.Errorf("encoding json report: %w", err)
	}
	return nil
}

// WriteYAML writes the report as YAML with the same layout as WriteJSON.
func (r *Report) WriteYAML(w io.Writer, opts EncodeOptions) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(opts.indent())
	if err := enc.Encode(r.tree(opts)); err != nil {
		return fmt.Errorf("encoding yaml report: %w", err)
	}
	return enc.Close()
}

func (r *Report) tree(opts EncodeOptions) orderedMap {
	out := make(orderedMap, 0, len(r.Files))
	for _, f := range r.Files {
		out = append(out, entry{f.Name, f.tree(opts)})
	}
	return out
}

func (f FileReport) tree(opts EncodeOptions) orderedMap {
	precision := make(orderedMap, 0, len(f.Categories))
	recall := make(orderedMap, 0, len(f.Categories))
	f1 := make(orderedMap, 0, len(f.Categories))
	counts := make(orderedMap, 0, len(f.Categories))
	for _, c := range f.Categories {
		key := string(c.Category)
		precision = append(precision, entry{key, c.Scores.Precision})
		recall = append(recall, entry{key, c.Scores.Recall})
		f1 = append(f1, entry{key, c.Scores.F1})
		counts = append(counts, entry{key, c.Counts})
	}

	out := orderedMap{
		{"precision", f.Scores.Precision},
		{"recall", f.Scores.Recall},
		{"f1", f.Scores.F1},
		{"action-wise precision", precision},
		{"action-wise recall", recall},
		{"action-wise f1", f1},
	}
	if opts.Counts {
		out = append(out, entry{"action-wise counts", counts})
	}
	return out
}

type entry struct {
	key   string
	value any
}

// orderedMap encodes as a JSON or YAML mapping that keeps insertion order.
type orderedMap []entry

func (m orderedMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(e.value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", e.key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m orderedMap) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range m {
		var value yaml.Node
		if err := value.Encode(e.value); err != nil {
			return nil, fmt.Errorf("key %q: %w", e.key, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.key},
			&value,
		)
	}
	return node, nil
}
