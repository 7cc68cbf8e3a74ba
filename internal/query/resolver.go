// ABOUTME: Soft-reference resolution from researcher ids to display names
// ABOUTME: Dangling ids render as a placeholder, never as an error

package query

import (
	"context"

	"github.com/gidas-utn/gidas-admin/internal/model"
)

// NombreDesconocido is rendered for references to researchers that no
// longer exist (or never did). References are soft: nothing prevents a
// Docencia or TrabajoReunion row from outliving its researcher.
const NombreDesconocido = "(desconocido)"

// InvestigadorIndex maps researcher ids to display names.
type InvestigadorIndex map[string]string

// Nombre resolves an id, falling back to the placeholder.
func (idx InvestigadorIndex) Nombre(id string) string {
	if n, ok := idx[id]; ok {
		return n
	}
	return NombreDesconocido
}

// InvestigadorIndex fetches the researcher list and builds the id→name
// lookup used to render soft references.
func (qs *Queries) InvestigadorIndex(ctx context.Context) (InvestigadorIndex, error) {
	res, err := qs.Personal(model.TipoInvestigador).Get(ctx)
	if err != nil {
		return nil, err
	}
	idx := make(InvestigadorIndex, len(res.List))
	for _, p := range res.List {
		idx[p.ID] = p.NombreApellido
	}
	return idx, nil
}
