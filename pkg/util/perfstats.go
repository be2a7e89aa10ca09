// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"fmt"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time and memory at some starting point, such that the
// cost of an operation can be reported once it completes.
type PerfStats struct {
	// Time when the operation started
	startTime time.Time
	// Total bytes allocated when the operation started
	startMem uint64
	// Number of completed GC cycles when the operation started
	startGc uint32
}

// NewPerfStats creates a new snapshot of the current time and memory usage.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Log reports (at debug level) the time taken, the memory allocated and the
// number of GC cycles since this snapshot was created.
func (p *PerfStats) Log(operation string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	log.WithFields(log.Fields{
		"time":  time.Since(p.startTime).Round(time.Microsecond),
		"alloc": formatBytes(m.TotalAlloc - p.startMem),
		"gcs":   m.NumGC - p.startGc,
	}).Debugf("%s complete", operation)
}

func formatBytes(n uint64) string {
	const unit = 1024
	//
	switch {
	case n < unit:
		return fmt.Sprintf("%dB", n)
	case n < unit*unit:
		return fmt.Sprintf("%.1fKb", float64(n)/unit)
	default:
		return fmt.Sprintf("%.1fMb", float64(n)/(unit*unit))
	}
}
