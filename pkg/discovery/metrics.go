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

package discovery

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	discoveryDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "confscope_discovery_duration_seconds",
			Help:    "Time taken to collect a complete host snapshot",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300},
		},
	)

	discoveryTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "confscope_discovery_total",
			Help: "Total number of snapshot collection attempts",
		},
		[]string{"status"}, // success or error
	)

	collectorDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "confscope_discovery_collector_duration_seconds",
			Help:    "Time taken by individual collectors",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30},
		},
		[]string{"collector"}, // webconfig, process, systemd, host, metadata
	)

	measurementCount = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "confscope_discovery_measurements",
			Help: "Number of measurements in the last collected snapshot",
		},
	)
)
