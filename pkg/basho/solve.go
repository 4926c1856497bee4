// Copyright © 2025 the sumo-ilp authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package basho

import (
	"fmt"
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
	"github.com/sirupsen/logrus"
	"google.golang.org/protobuf/proto"
)

// Status is the closed set of solve outcomes. Every status maps to exactly
// one Outcome through a single table so the fatal/warn/proceed decision is
// centrally testable instead of scattered across call sites.
type Status int

const (
	// StatusOptimal means a provably optimal (or, without an objective, a
	// feasible) schedule was found.
	StatusOptimal Status = iota
	// StatusFeasible means a schedule was found but not proven optimal.
	StatusFeasible
	// StatusNoSolution means no schedule was found within the time budget;
	// one may still exist.
	StatusNoSolution
	// StatusInfeasible means the schedule is proven impossible.
	StatusInfeasible
	// StatusIntInfeasible means the integer relaxation is proven impossible.
	StatusIntInfeasible
	// StatusNotLoaded means the model was rejected before solving started,
	// which indicates internal misuse.
	StatusNotLoaded
	// StatusError means the solver failed internally.
	StatusError
	// StatusUnbounded means the objective diverges.
	StatusUnbounded
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusFeasible:
		return "feasible"
	case StatusNoSolution:
		return "no solution found"
	case StatusInfeasible:
		return "infeasible"
	case StatusIntInfeasible:
		return "integer infeasible"
	case StatusNotLoaded:
		return "not loaded"
	case StatusError:
		return "solver error"
	case StatusUnbounded:
		return "unbounded"
	default:
		return fmt.Sprintf("unknown status %d", int(s))
	}
}

// Outcome is what a status means for the run.
type Outcome int

const (
	// Proceed with the extracted schedule.
	Proceed Outcome = iota
	// Warn but proceed with the best schedule found.
	Warn
	// Fatal terminates the run with Status.Err.
	Fatal
)

// Outcome classifies the status. Only StatusOptimal proceeds cleanly and
// only StatusFeasible is a recoverable warning; everything else is fatal.
func (s Status) Outcome() Outcome {
	switch s {
	case StatusOptimal:
		return Proceed
	case StatusFeasible:
		return Warn
	default:
		return Fatal
	}
}

// Err returns the diagnostic for a fatal status and nil otherwise.
func (s Status) Err() error {
	switch s {
	case StatusOptimal, StatusFeasible:
		return nil
	case StatusNoSolution:
		return fmt.Errorf("%w: no schedule found, one may exist but the solver did not find it", ErrSolver)
	case StatusInfeasible, StatusIntInfeasible:
		return fmt.Errorf("%w: schedule impossible, proven %s", ErrSolver, s)
	case StatusNotLoaded:
		return fmt.Errorf("%w: query never loaded into the solver", ErrSolver)
	case StatusUnbounded:
		return fmt.Errorf("%w: objective is underconstrained and diverges", ErrSolver)
	default:
		return fmt.Errorf("%w: internal solver error", ErrSolver)
	}
}

// Solve hands the model to CP-SAT with the given time budget and translates
// the response into a Status. The returned Solution is non-nil only when the
// status's Outcome is Proceed or Warn. A model is solved at most once.
func (m *Model) Solve(limit time.Duration) (*Solution, Status) {
	instance, err := m.builder.Model()
	if err != nil {
		logrus.Debugf("instantiating model: %v", err)
		return nil, StatusNotLoaded
	}

	params := &sppb.SatParameters{
		MaxTimeInSeconds: proto.Float64(limit.Seconds()),
	}
	response, err := cpmodel.SolveCpModelWithParameters(instance, params)
	if err != nil {
		logrus.Debugf("solving model: %v", err)
		return nil, StatusError
	}

	switch response.GetStatus() {
	case cmpb.CpSolverStatus_OPTIMAL:
		return &Solution{model: m, response: response}, StatusOptimal
	case cmpb.CpSolverStatus_FEASIBLE:
		return &Solution{model: m, response: response}, StatusFeasible
	case cmpb.CpSolverStatus_INFEASIBLE:
		return nil, StatusInfeasible
	case cmpb.CpSolverStatus_MODEL_INVALID:
		return nil, StatusNotLoaded
	default:
		// CP-SAT reports UNKNOWN when the time budget expires first.
		return nil, StatusNoSolution
	}
}
