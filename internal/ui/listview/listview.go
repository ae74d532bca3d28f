// Package listview deriva la vista filtrada de la colección de mascotas.
// Cada Render reconstruye la lista completa: no hay diff ni memo.
package listview

import (
	"sort"
	"strings"

	"pet-manager/internal/domain/pets"
)

// AllSpecies es el valor del filtro que no restringe por especie.
const AllSpecies = "all"

type View struct {
	Items []pets.Pet
	Count int
	Empty bool

	Search string
	Filter string
}

// Port es la parte de la vista que materializa la lista.
type Port interface {
	RenderList(items []pets.Pet)
	ShowEmptyState(empty bool)
	SetCount(n int)
}

// Render aplica búsqueda (nombre o especie, sin mayúsculas) y filtro de especie.
func Render(items []pets.Pet, search, speciesFilter string) View {
	term := strings.ToLower(search)
	filter := strings.TrimSpace(speciesFilter)
	if filter == "" {
		filter = AllSpecies
	}

	out := make([]pets.Pet, 0, len(items))
	for _, p := range items {
		if matchesSearch(p, term) && matchesSpecies(p, filter) {
			out = append(out, p)
		}
	}

	return View{
		Items:  out,
		Count:  len(out),
		Empty:  len(out) == 0,
		Search: search,
		Filter: filter,
	}
}

// Draw vuelca v en el port: o la lista con su contador, o el estado vacío.
func Draw(port Port, v View) {
	if v.Empty {
		port.RenderList(nil)
		port.ShowEmptyState(true)
		port.SetCount(0)
		return
	}
	port.ShowEmptyState(false)
	port.RenderList(v.Items)
	port.SetCount(v.Count)
}

// Species devuelve las especies distintas (sin mayúsculas), ordenadas, para el select del filtro.
func Species(items []pets.Pet) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0)
	for _, p := range items {
		s := strings.ToLower(strings.TrimSpace(p.Species))
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func matchesSearch(p pets.Pet, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Species), term)
}

func matchesSpecies(p pets.Pet, filter string) bool {
	if strings.EqualFold(filter, AllSpecies) {
		return true
	}
	return strings.EqualFold(p.Species, filter)
}
