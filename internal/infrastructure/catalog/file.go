// Package catalog reads merchant catalog files. Files are YAML, so plain JSON
// documents are accepted as well.
package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/foodcourier/marketplace/internal/core/domain"
)

type fileCatalog struct {
	Merchants []fileMerchant `yaml:"merchants"`
}

type fileMerchant struct {
	ID          string         `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Address     string         `yaml:"address"`
	Lat         float64        `yaml:"lat"`
	Lng         float64        `yaml:"lng"`
	Menu        []fileCategory `yaml:"menu"`
}

type fileCategory struct {
	Name  string     `yaml:"name"`
	Items []fileItem `yaml:"items"`
}

type fileItem struct {
	ID          string  `yaml:"id"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Price       float64 `yaml:"price"`
}

// LoadFile reads the catalog at path.
func LoadFile(path string) ([]domain.CatalogEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses a catalog document. Unknown keys are rejected so typos do
// not silently drop data.
func Decode(r io.Reader) ([]domain.CatalogEntry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f fileCatalog
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse catalog: empty document")
		}
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	entries := make([]domain.CatalogEntry, 0, len(f.Merchants))
	for _, m := range f.Merchants {
		entry := domain.CatalogEntry{
			Merchant: domain.Merchant{
				ID:          m.ID,
				Name:        m.Name,
				Description: m.Description,
				Address:     m.Address,
				Location:    domain.Coordinates{Lat: m.Lat, Lng: m.Lng},
			},
			Menu: make([]domain.MenuCategory, 0, len(m.Menu)),
		}
		for _, c := range m.Menu {
			cat := domain.MenuCategory{Name: c.Name, Items: make([]domain.MenuItem, 0, len(c.Items))}
			for _, it := range c.Items {
				cat.Items = append(cat.Items, domain.MenuItem{
					ID:          it.ID,
					Name:        it.Name,
					Description: it.Description,
					Price:       it.Price,
				})
			}
			entry.Menu = append(entry.Menu, cat)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
