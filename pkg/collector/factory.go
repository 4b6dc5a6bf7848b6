// Copyright (c) 2025, Confscope Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collector

import (
	"github.com/confscope/confscope/pkg/collector/host"
	"github.com/confscope/confscope/pkg/collector/process"
	"github.com/confscope/confscope/pkg/collector/systemd"
	"github.com/confscope/confscope/pkg/collector/webconfig"
)

// Factory creates collectors with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateWebConfigCollector() Collector
	CreateProcessCollector() Collector
	CreateSystemDCollector() Collector
	CreateHostCollector() Collector
}

// FactoryOption configures a DefaultFactory.
type FactoryOption func(*DefaultFactory)

// WithSystemDServices sets the systemd units the SystemD collector inspects.
func WithSystemDServices(services []string) FactoryOption {
	return func(f *DefaultFactory) {
		f.SystemDServices = services
	}
}

// WithConfigPath sets the nginx configuration root the web config collector
// parses.
func WithConfigPath(path string) FactoryOption {
	return func(f *DefaultFactory) {
		f.ConfigPath = path
	}
}

// WithProcessNames sets the process names the process collector reports on.
// An empty list means all processes.
func WithProcessNames(names []string) FactoryOption {
	return func(f *DefaultFactory) {
		f.ProcessNames = names
	}
}

// WithParserOptions forwards options to the nginx parser used by the web
// config collector.
func WithParserOptions(opts ...webconfig.ParserOption) FactoryOption {
	return func(f *DefaultFactory) {
		f.ParserOptions = opts
	}
}

// DefaultFactory creates collectors with production dependencies.
type DefaultFactory struct {
	SystemDServices []string
	ConfigPath      string
	ProcessNames    []string
	ParserOptions   []webconfig.ParserOption
}

// NewDefaultFactory creates a factory with web-stack defaults.
func NewDefaultFactory(opts ...FactoryOption) *DefaultFactory {
	f := &DefaultFactory{
		SystemDServices: []string{
			"nginx.service",
		},
		ConfigPath: webconfig.DefaultConfigPath,
		ProcessNames: []string{
			"nginx",
			"php-fpm",
		},
	}

	// Apply options
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateWebConfigCollector creates an nginx configuration collector.
func (f *DefaultFactory) CreateWebConfigCollector() Collector {
	return &webconfig.Collector{
		ConfigPath:    f.ConfigPath,
		ParserOptions: f.ParserOptions,
	}
}

// CreateProcessCollector creates a process inventory collector.
func (f *DefaultFactory) CreateProcessCollector() Collector {
	return &process.Collector{
		Names: f.ProcessNames,
	}
}

// CreateSystemDCollector creates a systemd collector.
func (f *DefaultFactory) CreateSystemDCollector() Collector {
	return &systemd.Collector{
		Services: f.SystemDServices,
	}
}

// CreateHostCollector creates a host information collector.
func (f *DefaultFactory) CreateHostCollector() Collector {
	return &host.Collector{}
}
