package trajopt

import (
	"fmt"

	"go.viam.com/trajopt/utils"
)

func newEmptyPathError() error {
	return utils.NewContractViolationError("path must have at least 2 waypoints")
}

func newZeroControlIntervalError(waypointIndex int) error {
	return utils.NewContractViolationError(fmt.Sprintf("waypoint %d has a control interval count of zero", waypointIndex))
}

func newMissingGuessPointsError(waypointIndex int) error {
	return utils.NewContractViolationError(fmt.Sprintf("waypoint %d has no initial guess points", waypointIndex))
}
