package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"maps"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed catalog.toml
var defaultCatalog []byte

var ErrEmptyCatalog = errors.New("catalog has no services or countries")

// Catalog неизменяемые справочники сервисов и стран.
type Catalog struct {
	services  map[string]string
	countries map[string]string
}

type file struct {
	Services  map[string]string `toml:"services"`
	Countries map[string]string `toml:"countries"`
}

// Default справочник, встроенный в бинарник.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic("invalid embedded catalog: " + err.Error())
	}
	return c
}

// Load читает справочник из файла, пустой путь означает встроенный.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.Services) == 0 || len(f.Countries) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Catalog{services: f.Services, countries: f.Countries}, nil
}

func (c *Catalog) HasService(code string) bool {
	_, ok := c.services[code]
	return ok
}

func (c *Catalog) HasCountry(code string) bool {
	_, ok := c.countries[code]
	return ok
}

// ServiceName возвращает название сервиса или сам код, если он неизвестен.
func (c *Catalog) ServiceName(code string) string {
	if name, ok := c.services[code]; ok {
		return name
	}
	return code
}

func (c *Catalog) CountryName(code string) string {
	if name, ok := c.countries[code]; ok {
		return name
	}
	return code
}

func (c *Catalog) Services() map[string]string {
	return maps.Clone(c.services)
}

func (c *Catalog) Countries() map[string]string {
	return maps.Clone(c.countries)
}
