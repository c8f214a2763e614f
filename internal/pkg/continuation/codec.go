// Package continuation carries the wizard's between-step state in query
// parameters. There is no server-side session slot for an in-flight
// registration; whatever the next step needs travels in the address the
// previous step redirects to.
package continuation

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/bytedance/sonic"

	"github.com/astoulakis/onboard/internal/pkg/constants"
)

// Params names the query parameters a branch uses. The originals diverged
// per branch (numberOfRows vs numOfRows and so on) and the clients depend
// on those names, so they stay configurable.
type Params struct {
	ID     string
	Count  string
	Labels string
}

// State is everything a step hands to the next one: the parent row created
// in step one, how many child rows the price step wrote, and the first
// column of those rows for display continuity.
type State struct {
	ParentID int64
	RowCount int
	Labels   []string
}

// Encode renders the state as query parameters for the next step's address.
func (p Params) Encode(state State) (url.Values, error) {
	labels := state.Labels
	if labels == nil {
		labels = []string{}
	}
	encoded, err := sonic.MarshalString(labels)
	if err != nil {
		return nil, err
	}

	values := url.Values{}
	values.Set(p.ID, strconv.FormatInt(state.ParentID, 10))
	values.Set(p.Count, strconv.Itoa(state.RowCount))
	values.Set(p.Labels, encoded)
	return values, nil
}

// Decode parses the state back out. It is pure and side-effect-free so
// render handlers can call it speculatively. A missing or non-numeric id
// or count, a non-positive count, or a label parameter that is not a JSON
// array all fail with ErrInvalidContinuationState.
func (p Params) Decode(values url.Values) (State, error) {
	var state State

	rawID := values.Get(p.ID)
	if rawID == "" {
		return state, constants.ErrInvalidContinuationState.WithCause(
			fmt.Errorf("missing %s", p.ID))
	}
	parentID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || parentID < 1 {
		return state, constants.ErrInvalidContinuationState.WithCause(
			fmt.Errorf("%s must be a positive integer", p.ID))
	}

	rawCount := values.Get(p.Count)
	if rawCount == "" {
		return state, constants.ErrInvalidContinuationState.WithCause(
			fmt.Errorf("missing %s", p.Count))
	}
	rowCount, err := strconv.Atoi(rawCount)
	if err != nil || rowCount <= 0 {
		return state, constants.ErrInvalidContinuationState.WithCause(
			fmt.Errorf("%s must be a positive integer", p.Count))
	}

	var labels []string
	if raw := values.Get(p.Labels); raw != "" {
		// A nil slice after a clean unmarshal means the payload was JSON
		// null, which is not an array.
		if err := sonic.UnmarshalString(raw, &labels); err != nil || labels == nil {
			return state, constants.ErrInvalidContinuationState.WithCause(
				fmt.Errorf("%s must be a JSON string array", p.Labels))
		}
	}

	state.ParentID = parentID
	state.RowCount = rowCount
	state.Labels = labels
	return state, nil
}

// DecodeID reads just a branch's parent id, for steps whose continuation
// carries no row count (the terminal aggregation). Absence is fine; a
// present but non-numeric value is not.
func DecodeID(values url.Values, name string) (*int64, error) {
	raw := values.Get(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return nil, constants.ErrInvalidContinuationState.WithCause(
			fmt.Errorf("%s must be a positive integer", name))
	}
	return &id, nil
}
