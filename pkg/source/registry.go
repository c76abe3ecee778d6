package source

import (
	"sort"

	pkgerrors "github.com/GenomicMedLab/wags-tails/pkg/errors"
)

// Factory builds a retrieval engine for one built-in source.
type Factory func(opts Options) (*Engine, error)

// factories maps source names to their engine factories. Custom sources are
// built directly with NewCustom and are not listed here.
var factories = map[string]Factory{
	"chembl":     NewChembl,
	"chemidplus": NewChemIDplus,
	"do":         NewDO,
	"drugbank":   NewDrugBank,
	"drugsatfda": NewDrugsAtFDA,
	"hemonc":     NewHemOnc,
	"hpo":        NewHpo,
	"mondo":      NewMondo,
	"ncit":       NewNcit,
	"oncotree":   NewOncoTree,
	"rxnorm":     NewRxNorm,
}

// New builds the retrieval engine for a built-in source by name.
func New(name string, opts Options) (*Engine, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, pkgerrors.Wrapf(pkgerrors.ErrUnknownSource, "%q", name)
	}
	return factory(opts)
}

// Names returns the built-in source names in sorted order.
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
