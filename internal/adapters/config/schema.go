package config

import "go.trai.ch/depcache/internal/core/domain"

// Configfile represents the structure of the depcache.yaml configuration file.
type Configfile struct {
	Version string      `yaml:"version"`
	Store   string      `yaml:"store"`
	State   string      `yaml:"state"`
	Caches  []*CacheDTO `yaml:"caches"`
}

// CacheDTO represents a cache definition in the configuration.
type CacheDTO struct {
	Kind         string           `yaml:"kind"`
	Name         string           `yaml:"name"`
	Path         string           `yaml:"path"`
	ExtraKeys    string           `yaml:"extraKeys"`
	Paths        []domain.Pattern `yaml:"paths"`
	Dependencies []domain.Pattern `yaml:"dependencies"`
}
