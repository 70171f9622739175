package catalog

import (
	_ "embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed commands.yaml
var commandsYaml []byte

var (
	ErrUnknownCommand     = errors.New("unknown command")
	ErrTooFewArguments    = errors.New("not enough arguments")
	ErrTooManyArguments   = errors.New("too many arguments")
	defaultCatalog        *Catalog
	defaultCatalogErr     error
	defaultCatalogOnce    sync.Once
	formatArgumentName    = "FORMAT"
	variadicArgumentToken = "..."
)

type Argument struct {
	Name     string
	Optional bool
	Variadic bool
}

type Command struct {
	Name      string
	Arguments []Argument
}

type Catalog struct {
	commands map[string]Command
}

type catalogDocument struct {
	Commands map[string][]string `yaml:"commands"`
}

// Default returns the catalog shipped with the provider.
func Default() *Catalog {
	defaultCatalogOnce.Do(func() {
		defaultCatalog, defaultCatalogErr = Parse(commandsYaml)
	})
	if defaultCatalogErr != nil {
		panic(fmt.Sprintf("embedded command catalog is invalid: %v", defaultCatalogErr))
	}

	return defaultCatalog
}

func Parse(content []byte) (*Catalog, error) {
	var document catalogDocument
	if err := yaml.Unmarshal(content, &document); err != nil {
		return nil, errors.Wrap(err, "error parsing command catalog")
	}

	catalog := &Catalog{
		commands: make(map[string]Command, len(document.Commands)),
	}
	for name, arguments := range document.Commands {
		command := Command{
			Name:      name,
			Arguments: make([]Argument, 0, len(arguments)),
		}
		for _, raw := range arguments {
			argument := parseArgument(raw)
			if argument.Name == "" {
				return nil, fmt.Errorf("command %s has an empty argument name", name)
			}
			command.Arguments = append(command.Arguments, argument)
		}
		catalog.commands[name] = command
	}

	return catalog, nil
}

func parseArgument(raw string) Argument {
	argument := Argument{}
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "[") && strings.HasSuffix(raw, "]") {
		argument.Optional = true
		raw = strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
	}
	if strings.HasSuffix(raw, variadicArgumentToken) {
		argument.Variadic = true
		raw = strings.TrimSuffix(raw, variadicArgumentToken)
	}
	argument.Name = raw

	return argument
}

func (c *Catalog) Lookup(name string) (Command, bool) {
	command, ok := c.commands[name]
	return command, ok
}

func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (c *Catalog) Len() int {
	return len(c.commands)
}

// Validate checks the argument count of a call against the catalog entry.
func (c *Catalog) Validate(name string, arguments []string) error {
	command, ok := c.Lookup(name)
	if !ok {
		return errors.Wrap(ErrUnknownCommand, name)
	}

	return command.Validate(arguments)
}

func (c Command) Required() int {
	required := 0
	for _, argument := range c.Arguments {
		if !argument.Optional {
			required++
		}
	}

	return required
}

func (c Command) Variadic() bool {
	return len(c.Arguments) > 0 && c.Arguments[len(c.Arguments)-1].Variadic
}

func (c Command) Validate(arguments []string) error {
	if required := c.Required(); len(arguments) < required {
		return errors.Wrapf(ErrTooFewArguments, "%s expects at least %d, got %d (%s)", c.Name, required, len(arguments), c.Usage())
	}

	if !c.Variadic() && len(arguments) > len(c.Arguments) {
		return errors.Wrapf(ErrTooManyArguments, "%s expects at most %d, got %d (%s)", c.Name, len(c.Arguments), len(arguments), c.Usage())
	}

	return nil
}

// FormatIndex is the position of the FORMAT argument, or -1.
func (c Command) FormatIndex() int {
	for i, argument := range c.Arguments {
		if argument.Name == formatArgumentName {
			return i
		}
	}

	return -1
}

func (c Command) IsListing() bool {
	return c.FormatIndex() >= 0
}

func (c Command) Usage() string {
	parts := []string{c.Name}
	for _, argument := range c.Arguments {
		name := argument.Name
		if argument.Variadic {
			name += variadicArgumentToken
		}
		if argument.Optional {
			name = "[" + name + "]"
		}
		parts = append(parts, name)
	}

	return strings.Join(parts, " ")
}
