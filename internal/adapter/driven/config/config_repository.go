package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml"
	"github.com/skytrade/uav-volume-dashboard-go/internal/domain/repository"
	"github.com/skytrade/uav-volume-dashboard-go/internal/shared/types"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
// O arquivo é lido sobre types.DefaultConfig: chaves omitidas mantêm o padrão,
// e listas presentes substituem as linhas padrão por inteiro.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	// Verifica se o arquivo existe
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config *types.Config

	switch fileExtension {
	case ".toml":
		// go-toml v1 zeroes fields missing from the document, so the tree
		// goes through JSON to merge over the defaults.
		tree, err := toml.LoadBytes(fileData)
		if err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
		data, err := json.Marshal(tree.ToMap())
		if err != nil {
			return nil, fmt.Errorf("error converting TOML file: %w", err)
		}
		if config, err = decodeOverDefaults(data, json.Unmarshal); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if config, err = decodeOverDefaults(fileData, yaml.Unmarshal); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if config, err = decodeOverDefaults(fileData, json.Unmarshal); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", types.ErrUnsupportedConfigFormat, fileExtension)
	}

	return config, nil
}

// decodeOverDefaults decodes data twice: once into an empty Config to see
// which lists the document carries, then over the defaults with those
// lists cleared. encoding/json would otherwise patch default rows by index.
func decodeOverDefaults(data []byte, unmarshal func([]byte, interface{}) error) (*types.Config, error) {
	present := &types.Config{}
	if err := unmarshal(data, present); err != nil {
		return nil, err
	}
	config := types.DefaultConfig()
	clearPresentLists(config, present)
	if err := unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

func clearPresentLists(config, present *types.Config) {
	if present.ReportType != nil {
		config.ReportType = nil
	}
	s, p := &config.Scenario, &present.Scenario
	if p.Agriculture.LandTypes != nil {
		s.Agriculture.LandTypes = nil
	}
	if p.Linear.Assets != nil {
		s.Linear.Assets = nil
	}
	if p.Structure.Assets != nil {
		s.Structure.Assets = nil
	}
	if p.Emergency.Coverage != nil {
		s.Emergency.Coverage = nil
	}
}

// SaveConfigFile grava a configuração no formato indicado pela extensão.
func (r *ConfigRepositoryImpl) SaveConfigFile(filePath string, config *types.Config) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".toml":
		data, err = marshalTOML(config)
	case ".yaml", ".yml":
		data, err = yaml.Marshal(config)
	case ".json":
		data, err = json.MarshalIndent(config, "", "  ")
	default:
		return fmt.Errorf("%w: %s", types.ErrUnsupportedConfigFormat, filepath.Ext(filePath))
	}
	if err != nil {
		return fmt.Errorf("error encoding config file: %w", err)
	}

	if dir := filepath.Dir(filePath); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating config directory: %w", err)
		}
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %w", err)
	}
	return nil
}

// marshalTOML builds the document from the JSON field names, the same
// shape LoadConfigFile reads back.
func marshalTOML(config *types.Config) ([]byte, error) {
	data, err := json.Marshal(config)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	tree, err := toml.TreeFromMap(dropNulls(m))
	if err != nil {
		return nil, err
	}
	s, err := tree.ToTomlString()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// dropNulls removes keys TOML cannot represent, such as unset lists.
func dropNulls(m map[string]interface{}) map[string]interface{} {
	for k, v := range m {
		switch val := v.(type) {
		case nil:
			delete(m, k)
		case map[string]interface{}:
			m[k] = dropNulls(val)
		case []interface{}:
			for _, item := range val {
				if sub, ok := item.(map[string]interface{}); ok {
					dropNulls(sub)
				}
			}
		}
	}
	return m
}
