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

// Package measurement defines the document model shared by all collectors.
//
// A Measurement identifies its source category (WebConfig, Process, SystemD,
// Host) and carries one or more named Subtypes, each a map of readings:
//
//	m := &Measurement{
//	    Type: TypeHost,
//	    Subtypes: []Subtype{
//	        {
//	            Name: "release",
//	            Data: map[string]any{
//	                "NAME":       "Ubuntu",
//	                "VERSION_ID": "22.04",
//	            },
//	        },
//	    },
//	}
//
// Reading values are JSON-compatible; ToValue normalizes anything a collector
// hands over. FilterOut / FilterIn redact readings by wildcard key patterns,
// used for example to drop credential-bearing systemd unit properties before
// a snapshot is persisted.
package measurement
