// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package report

import (
	"fmt"
	"slices"
)

// Report is a collection of diagnostics about a piece of text.
type Report struct {
	// The text the diagnostics' spans refer to.
	Text string

	Diagnostics []Diagnostic
}

// Error pushes an error diagnostic onto this report.
func (r *Report) Error(err Diagnose) *Diagnostic {
	return r.push(err, Error)
}

// Warn pushes a warning diagnostic onto this report.
func (r *Report) Warn(err Diagnose) *Diagnostic {
	return r.push(err, Warning)
}

// Remark pushes a remark diagnostic onto this report.
func (r *Report) Remark(err Diagnose) *Diagnostic {
	return r.push(err, Remark)
}

// Errorf creates a new error diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Errorf(format string, args ...any) *Diagnostic {
	return r.pushErr(fmt.Errorf(format, args...), Error)
}

// Warnf creates a new warning diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Warnf(format string, args ...any) *Diagnostic {
	return r.pushErr(fmt.Errorf(format, args...), Warning)
}

// Remarkf creates a new remark diagnostic with an unspecified error type;
// analogous to [fmt.Errorf].
func (r *Report) Remarkf(format string, args ...any) *Diagnostic {
	return r.pushErr(fmt.Errorf(format, args...), Remark)
}

// Sort sorts this report's diagnostics by where their primary span starts.
// Diagnostics with no primary span sort last. The sort is stable.
func (r *Report) Sort() {
	offset := func(d *Diagnostic) int {
		if p, ok := d.Primary(); ok {
			return p.Start
		}
		return len(r.Text) + 1
	}
	slices.SortStableFunc(r.Diagnostics, func(a, b Diagnostic) int {
		return offset(&a) - offset(&b)
	})
}

func (r *Report) push(err Diagnose, level Level) *Diagnostic {
	d := r.pushErr(err, level)
	err.Diagnose(d)
	return d
}

// pushErr is the core "make me a diagnostic" function.
func (r *Report) pushErr(err error, level Level) *Diagnostic {
	r.Diagnostics = append(r.Diagnostics, Diagnostic{Err: err, Level: level})
	return &r.Diagnostics[len(r.Diagnostics)-1]
}
