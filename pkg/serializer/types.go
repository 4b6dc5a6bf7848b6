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

// Package serializer renders documents to JSON, YAML or tabular output, to
// stdout, a file, or an HTTP response.
//
// Usage:
//
//	w := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer w.Close()
//	if err := w.Serialize(ctx, doc); err != nil {
//		log.Fatal(err)
//	}
//
// For HTTP responses:
//
//	serializer.RespondJSON(w, http.StatusOK, doc)
//
// Table output flattens nested structures into dotted keys and is meant for
// terminal viewing; JSON and YAML preserve structure.
package serializer

import "context"

// Serializer renders a document to its configured destination.
// The context is used for cancellation by implementations that perform
// remote I/O; local writers accept it for interface consistency.
type Serializer interface {
	Serialize(ctx context.Context, doc any) error
}

// Closer is an optional interface for Serializers that hold resources
// (e.g. open file handles).
type Closer interface {
	Close() error
}
