package service

import (
	"fmt"

	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/apperrors"
	"github.com/jawebb/Brokerage-Account-Tracker-Backend/internal/model"
)

// ResolveSelection determines the single active (fund, duration) pair from
// one trigger event and the snapshots of both button groups.
//
// The trigger names which group fired and which member was activated; the
// other group contributes its currently active member. When the other group
// has no active marker, the duration defaults to "Total" (the first-load
// state) and the fund defaults to the first configured member.
//
// This is a pure function of its inputs: no click-count history, no hidden
// state, same snapshot in, same pair out.
func ResolveSelection(trigger model.TriggerEvent, fundGroup, durationGroup model.GroupState) (model.SelectionState, error) {
	switch trigger.Type {
	case model.GroupFund:
		if !memberOf(fundGroup, trigger.Index) {
			return model.SelectionState{}, fmt.Errorf("%w: unknown fund member %q",
				apperrors.ErrSelectionResolution, trigger.Index)
		}

		duration := model.DurationTotal
		if i := durationGroup.ActiveIndex(); i >= 0 {
			parsed, err := model.ParseDuration(durationGroup.IDs[i].Index)
			if err != nil {
				return model.SelectionState{}, fmt.Errorf("%w: active duration member %q",
					apperrors.ErrSelectionResolution, durationGroup.IDs[i].Index)
			}
			duration = parsed
		}

		return model.SelectionState{Fund: trigger.Index, Duration: duration}, nil

	case model.GroupDuration:
		if !memberOf(durationGroup, trigger.Index) {
			return model.SelectionState{}, fmt.Errorf("%w: unknown duration member %q",
				apperrors.ErrSelectionResolution, trigger.Index)
		}
		duration, err := model.ParseDuration(trigger.Index)
		if err != nil {
			return model.SelectionState{}, err
		}

		var fund string
		if i := fundGroup.ActiveIndex(); i >= 0 {
			fund = fundGroup.IDs[i].Index
		} else if len(fundGroup.IDs) > 0 {
			// No fund flagged active: fall back to the first configured fund.
			fund = fundGroup.IDs[0].Index
		} else {
			return model.SelectionState{}, fmt.Errorf("%w: no funds configured",
				apperrors.ErrSelectionResolution)
		}

		return model.SelectionState{Fund: fund, Duration: duration}, nil

	default:
		return model.SelectionState{}, fmt.Errorf("%w: unknown trigger group %q",
			apperrors.ErrSelectionResolution, trigger.Type)
	}
}

func memberOf(group model.GroupState, index string) bool {
	for _, id := range group.IDs {
		if id.Index == index {
			return true
		}
	}
	return false
}
