package schema

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed catalog/*.yaml
var embedded embed.FS

// Catalog indexes services by operation name.
type Catalog struct {
	services map[string]*Service
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{services: make(map[string]*Service)}
}

// LoadCatalog loads the services shipped with the module.
func LoadCatalog() (*Catalog, error) {
	return LoadCatalogFS(embedded, "catalog")
}

// LoadCatalogDir loads every *.yaml service file in dir.
func LoadCatalogDir(dir string) (*Catalog, error) {
	return LoadCatalogFS(os.DirFS(dir), ".")
}

// LoadCatalogFS loads every *.yaml service file in dir of fsys.
func LoadCatalogFS(fsys fs.FS, dir string) (*Catalog, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog files: %w", err)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no service files in %s", dir)
	}

	cat := NewCatalog()

	for _, name := range matches {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read service file %s: %w", name, err)
		}

		svc, err := parseService(data, name)
		if err != nil {
			return nil, err
		}

		if err := cat.Add(svc); err != nil {
			return nil, err
		}
	}

	return cat, nil
}

// LoadServiceFile loads a single service definition.
func LoadServiceFile(filename string) (*Service, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read service file %s: %w", filename, err)
	}

	return parseService(data, filename)
}

// ParseService parses YAML data into a Service.
func ParseService(data []byte) (*Service, error) {
	return parseService(data, "<input>")
}

func parseService(data []byte, source string) (*Service, error) {
	var svc Service
	if err := yaml.Unmarshal(data, &svc); err != nil {
		return nil, invalidCatalogError(source, err)
	}

	if svc.Operation == "" {
		return nil, invalidCatalogError(source, errors.New("operation is required"))
	}

	svc.applyDefaults()

	return &svc, nil
}

// Add registers svc, rejecting duplicate operation names.
func (c *Catalog) Add(svc *Service) error {
	if _, exists := c.services[svc.Operation]; exists {
		return fmt.Errorf("duplicate service %q", svc.Operation)
	}

	c.services[svc.Operation] = svc

	return nil
}

// Service returns the service with the given operation name.
func (c *Catalog) Service(name string) (*Service, error) {
	if svc, ok := c.services[name]; ok {
		return svc, nil
	}

	return nil, unknownServiceError(name, c.Names())
}

// Names returns the operation names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.services))
	for name := range c.services {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Marshal serializes a Service to YAML.
func Marshal(svc *Service) ([]byte, error) {
	return yaml.Marshal(svc)
}
