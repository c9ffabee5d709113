package semantics

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Defaults Defaults `yaml:"defaults"`
	Paths    []Path   `yaml:"paths"`
}

// Path overrides the defaults for requests whose path matches Prefix.
// The longest matching prefix wins.
type Path struct {
	Prefix   string   `yaml:"prefix"`
	Defaults Defaults `yaml:"defaults"`
}

type Defaults struct {
	// CacheControl is the Cache-Control header value applied to
	// responses that do not set one themselves.
	CacheControl string `yaml:"cacheControl"`
	// SafeMethods lists request methods beyond GET and HEAD that
	// should be treated as safe, e.g. read-only POSTs.
	SafeMethods SafeMethods `yaml:"safeMethods"`
}

type SafeMethods []string

func (m SafeMethods) Has(method string) bool {
	for _, safe := range m {
		if safe == method {
			return true
		}
	}
	return false
}

// LoadConfig reads a YAML config file.
func LoadConfig(filename string) (Config, error) {
	var config Config
	configBytes, err := os.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = yaml.Unmarshal(configBytes, &config)
	return config, err
}
