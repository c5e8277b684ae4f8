package configmanager

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// ConfigManagerBuilder creates ConfigManagers for a configuration file.
type ConfigManagerBuilder interface {
	New(path string) ConfigManager
}

type configManagerBuilder struct{}

func (*configManagerBuilder) New(path string) ConfigManager {
	return &configManager{
		path: path,
	}
}

func NewBuilder() ConfigManagerBuilder {
	return &configManagerBuilder{}
}

// ConfigManager loads configuration into a ConfigValidator.
type ConfigManager interface {
	Into(ConfigValidator) error
}

type configManager struct {
	path string
}

type ConfigValidator interface {
	IsValid() error
}

// Into decodes the configuration file into into and validates it. With no file configured
// into keeps its current values and is validated as is.
func (cm *configManager) Into(into ConfigValidator) error {
	if cm.path == "" {
		return into.IsValid()
	}
	yml, err := os.ReadFile(cm.path)
	if err != nil {
		return fmt.Errorf("unable to read config file %s: %w", cm.path, err)
	}
	err = yaml.UnmarshalStrict(yml, into)
	if err != nil {
		return fmt.Errorf("Check config file %s for incorrect yaml formatting %s", cm.path, err.Error())
	}

	return into.IsValid()
}
