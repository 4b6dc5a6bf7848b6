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

// Package collector defines the interface and factory for gathering system
// configuration measurements.
//
// # Core Interface
//
// The Collector interface defines a single method for gathering data:
//
//	type Collector interface {
//	    Collect(ctx context.Context) (*measurement.Measurement, error)
//	}
//
// All collectors support context-based cancellation.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting collector construction. DefaultFactory provides production
// implementations with functional options:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithConfigPath("/etc/nginx/nginx.conf"),
//	    collector.WithSystemDServices([]string{"nginx.service", "php-fpm.service"}),
//	)
//
// # Subpackages
//
// Collectors are organized by data source:
//   - collector/webconfig - nginx configuration (via pkg/nginx)
//   - collector/process - running process inventory
//   - collector/systemd - systemd service states
//   - collector/host - OS release, kernel, uptime
//   - collector/file - line/key-value config file parsing, used by host
//
// # Error Handling
//
// Collectors return errors when required sources are unavailable, permissions
// are insufficient, or the context is canceled. The discovery layer treats a
// failed collector as fatal for the snapshot; partial web config parses are
// NOT errors, they surface in the measurement itself.
package collector
