/*
Copyright 2026 The Squall Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package sqerrors

// State names a specific planning failure.
type State int

// All the error states
const (
	Undefined State = iota

	// failed precondition
	CyclicQuery

	// invalid argument
	DuplicateComponent
	ComponentNotInFrontier
	BadJoinCondition
	UnsupportedExpression
	EstimationFailed

	// not found
	UnknownTable
	UnknownColumn
	UnknownComponent
	NoJoinRatio

	// No state should be added below NumOfStates
	NumOfStates
)

var stateNames = [...]string{
	Undefined:              "Undefined",
	CyclicQuery:            "CyclicQuery",
	DuplicateComponent:     "DuplicateComponent",
	ComponentNotInFrontier: "ComponentNotInFrontier",
	BadJoinCondition:       "BadJoinCondition",
	UnsupportedExpression:  "UnsupportedExpression",
	EstimationFailed:       "EstimationFailed",
	UnknownTable:           "UnknownTable",
	UnknownColumn:          "UnknownColumn",
	UnknownComponent:       "UnknownComponent",
	NoJoinRatio:            "NoJoinRatio",
}

func (s State) String() string {
	if s >= 0 && s < NumOfStates {
		return stateNames[s]
	}
	return "State(?)"
}
