// ABOUTME: Immutable in-memory destination catalog with id and name lookup
// ABOUTME: Loaded once at startup from a YAML file or the built-in seed list
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/creative-h/agentQ-Travel-Planner/internal/models"
)

var validate = validator.New()

// Catalog holds the full set of destinations known to the engine.
// It is read-only after construction and safe for concurrent reads.
type Catalog struct {
	destinations []models.Destination
	byID         map[int]models.Destination
}

// New builds a catalog from the given destinations, validating each record.
// Destinations are kept in ascending id order.
func New(destinations []models.Destination) (*Catalog, error) {
	if len(destinations) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one destination")
	}

	byID := make(map[int]models.Destination, len(destinations))
	ordered := make([]models.Destination, len(destinations))
	copy(ordered, destinations)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, d := range ordered {
		if err := validate.Struct(d); err != nil {
			return nil, fmt.Errorf("invalid destination %q: %w", d.Name, err)
		}
		if _, exists := byID[d.ID]; exists {
			return nil, fmt.Errorf("duplicate destination id %d", d.ID)
		}
		byID[d.ID] = d
	}

	return &Catalog{destinations: ordered, byID: byID}, nil
}

// catalogFile is the YAML shape of an external catalog file.
type catalogFile struct {
	Destinations []models.Destination `koanf:"destinations"`
}

// Load reads a catalog from a YAML file. An empty path selects the
// built-in seed catalog.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("loading catalog file %s: %w", path, err)
	}

	var cf catalogFile
	if err := k.Unmarshal("", &cf); err != nil {
		return nil, fmt.Errorf("unmarshaling catalog file %s: %w", path, err)
	}
	return New(cf.Destinations)
}

// Default returns a catalog built from the seed destination list.
func Default() (*Catalog, error) {
	return New(seedDestinations())
}

// Len returns the number of destinations in the catalog.
func (c *Catalog) Len() int {
	return len(c.destinations)
}

// All returns the destinations in catalog (ascending id) order.
func (c *Catalog) All() []models.Destination {
	out := make([]models.Destination, len(c.destinations))
	copy(out, c.destinations)
	return out
}

// FindByID returns the destination with the given id.
func (c *Catalog) FindByID(id int) (models.Destination, bool) {
	d, ok := c.byID[id]
	return d, ok
}

// FindByNameContains returns destinations whose name contains the given
// text, case-insensitively, in catalog order. An empty result means the
// name is unknown.
func (c *Catalog) FindByNameContains(text string) []models.Destination {
	needle := strings.ToLower(text)
	var matches []models.Destination
	for _, d := range c.destinations {
		if strings.Contains(strings.ToLower(d.Name), needle) {
			matches = append(matches, d)
		}
	}
	return matches
}
