package catalog

import (
	"strings"

	"storefront/internal/models"
)

// Selector placeholders, shown as the first, empty-valued entry.
const (
	BrandPlaceholder  = "Select Device Brand"
	ModelPlaceholder  = "Select Model Name"
	SearchPlaceholder = "Searching all models..."
	OptionPlaceholder = "Select Service / Part"
)

// NoOption marks an unset option selector.
const NoOption = -1

// Values of Selection.Changed naming the control the user just touched.
const (
	ChangedBrand  = "brand"
	ChangedModel  = "model"
	ChangedOption = "option"
	ChangedSearch = "search"
)

// Option is one service/part entry for a (brand, model) pair.
type Option struct {
	Label string `json:"label"`
	Price string `json:"price"`
}

// ModelOption is a model entry; Hidden entries stay in the list but are not
// shown while a search filter is active.
type ModelOption struct {
	Name   string `json:"name"`
	Hidden bool   `json:"hidden,omitempty"`
}

// Selection is the current value of every selector plus the search box.
// Option is an index into the option list, NoOption when unset.
type Selection struct {
	Brand   string `json:"brand" form:"brand"`
	Model   string `json:"model" form:"model"`
	Option  int    `json:"option" form:"option"`
	Search  string `json:"search" form:"search"`
	Changed string `json:"changed,omitempty" form:"changed"`
}

// View is the fully derived state of the selectors and the result panel.
type View struct {
	Brand  string `json:"brand"`
	Model  string `json:"model"`
	Option int    `json:"option"`
	Search string `json:"search,omitempty"`

	Brands           []string      `json:"brands"`
	Models           []ModelOption `json:"models"`
	ModelPlaceholder string        `json:"model_placeholder"`
	ModelEnabled     bool          `json:"model_enabled"`
	Options          []Option      `json:"options"`
	OptionEnabled    bool          `json:"option_enabled"`

	Service       string `json:"service,omitempty"`
	Price         string `json:"price,omitempty"`
	ResultVisible bool   `json:"result_visible"`
}

// Brands returns the distinct non-empty brands in first-seen order.
func Brands(records []models.ServiceRecord) []string {
	return distinct(records, func(r models.ServiceRecord) (string, bool) {
		return r.Brand, true
	})
}

// Models returns the distinct models offered for brand in first-seen order.
func Models(records []models.ServiceRecord, brand string) []string {
	return distinct(records, func(r models.ServiceRecord) (string, bool) {
		return r.Model, r.Brand == brand
	})
}

// AllModels returns every distinct model across brands in first-seen order.
func AllModels(records []models.ServiceRecord) []string {
	return distinct(records, func(r models.ServiceRecord) (string, bool) {
		return r.Model, true
	})
}

// Options returns one entry per record matching (brand, model). Entries are
// not deduplicated.
func Options(records []models.ServiceRecord, brand, model string) []Option {
	out := make([]Option, 0)
	for _, r := range records {
		if r.Brand == brand && r.Model == model {
			out = append(out, Option{Label: r.Option, Price: r.Price})
		}
	}
	return out
}

// BrandForModel returns the brand of the first record carrying model.
func BrandForModel(records []models.ServiceRecord, model string) (string, bool) {
	for _, r := range records {
		if r.Model == model {
			return r.Brand, true
		}
	}
	return "", false
}

// FilterModels marks names not containing query (case-insensitive) as hidden.
// An empty query hides nothing.
func FilterModels(names []string, query string) []ModelOption {
	q := strings.ToLower(query)
	out := make([]ModelOption, 0, len(names))
	for _, n := range names {
		out = append(out, ModelOption{
			Name:   n,
			Hidden: q != "" && !strings.Contains(strings.ToLower(n), q),
		})
	}
	return out
}

// Resolve walks the cascade for sel. A changed parent resets its children and
// a child that is not offered under its parent is reset the same way.
func Resolve(records []models.ServiceRecord, sel Selection) View {
	brand, model, option := sel.Brand, sel.Model, sel.Option
	query := sel.Search

	switch sel.Changed {
	case ChangedBrand:
		// the rebuilt model list starts unfiltered
		model, option, query = "", NoOption, ""
	case ChangedModel:
		option = NoOption
	}

	v := View{
		Search:           query,
		Brands:           Brands(records),
		ModelPlaceholder: ModelPlaceholder,
		Options:          []Option{},
		Models:           []ModelOption{},
	}

	if brand != "" && !contains(v.Brands, brand) {
		brand, model, option = "", "", NoOption
	}

	searching := query != ""
	if brand == "" && searching && sel.Changed == ChangedSearch {
		// the search path replaces the model list, dropping any choice
		model, option = "", NoOption
	}

	if brand == "" && model != "" {
		if b, ok := BrandForModel(records, model); ok {
			brand = b
		} else {
			model, option = "", NoOption
		}
	}

	var names []string
	switch {
	case brand != "":
		names = Models(records, brand)
		v.ModelEnabled = true
	case searching:
		names = AllModels(records)
		v.ModelPlaceholder = SearchPlaceholder
		v.ModelEnabled = true
	}
	if model != "" && !contains(names, model) {
		model, option = "", NoOption
	}
	v.Models = FilterModels(names, query)

	if model != "" {
		v.Options = Options(records, brand, model)
		v.OptionEnabled = true
	}
	if option < 0 || option >= len(v.Options) {
		option = NoOption
	}
	if option != NoOption {
		picked := v.Options[option]
		v.Service = picked.Label
		v.Price = picked.Price
		v.ResultVisible = picked.Price != ""
	}

	v.Brand, v.Model, v.Option = brand, model, option
	return v
}

func distinct(records []models.ServiceRecord, pick func(models.ServiceRecord) (string, bool)) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, r := range records {
		val, ok := pick(r)
		if !ok || val == "" {
			continue
		}
		if _, dup := seen[val]; dup {
			continue
		}
		seen[val] = struct{}{}
		out = append(out, val)
	}
	return out
}

func contains(ss []string, want string) bool {
	for _, s := range ss {
		if s == want {
			return true
		}
	}
	return false
}
