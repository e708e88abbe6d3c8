package services

// Option is one dropdown entry. An empty Value means "no filter".
type Option struct {
	Label string
	Value string
}

// CategoryRegistry is an insertion ordered map from raw species value to its
// display label. The first entry is always the "all" option.
type CategoryRegistry struct {
	keys   []string
	labels map[string]string
}

func NewCategoryRegistry(allLabel string) *CategoryRegistry {
	r := &CategoryRegistry{}
	r.Reset(allLabel)
	return r
}

func (r *CategoryRegistry) Reset(allLabel string) {
	r.keys = []string{""}
	r.labels = map[string]string{"": allLabel}
}

// Observe records a species value and reports whether it was new.
func (r *CategoryRegistry) Observe(raw, label string) bool {
	if _, ok := r.labels[raw]; ok {
		return false
	}
	r.keys = append(r.keys, raw)
	r.labels[raw] = label
	return true
}

func (r *CategoryRegistry) Has(raw string) bool {
	_, ok := r.labels[raw]
	return ok
}

func (r *CategoryRegistry) Len() int {
	return len(r.keys)
}

func (r *CategoryRegistry) Options() []Option {
	out := make([]Option, len(r.keys))
	for i, key := range r.keys {
		out[i] = Option{Label: r.labels[key], Value: key}
	}
	return out
}
