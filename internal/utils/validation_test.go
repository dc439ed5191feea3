package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

func TestValidateAssignmentTransition(t *testing.T) {
	require.NoError(t, ValidateAssignmentTransition(domain.AssignmentScheduled, domain.AssignmentInProgress))
	require.NoError(t, ValidateAssignmentTransition(domain.AssignmentScheduled, domain.AssignmentCancelled))
	require.NoError(t, ValidateAssignmentTransition(domain.AssignmentInProgress, domain.AssignmentCompleted))
	require.NoError(t, ValidateAssignmentTransition(domain.AssignmentInProgress, domain.AssignmentCancelled))

	// scheduled work cannot complete without starting
	require.Error(t, ValidateAssignmentTransition(domain.AssignmentScheduled, domain.AssignmentCompleted))
	// terminal statuses have no exits
	require.Error(t, ValidateAssignmentTransition(domain.AssignmentCompleted, domain.AssignmentInProgress))
	require.Error(t, ValidateAssignmentTransition(domain.AssignmentCancelled, domain.AssignmentScheduled))
	// self transitions are not moves
	require.Error(t, ValidateAssignmentTransition(domain.AssignmentScheduled, domain.AssignmentScheduled))
}

func TestValidateOrderTransition(t *testing.T) {
	require.NoError(t, ValidateOrderTransition(domain.OrderPending, domain.OrderPaid))
	require.NoError(t, ValidateOrderTransition(domain.OrderPaid, domain.OrderFulfilled))
	require.Error(t, ValidateOrderTransition(domain.OrderPending, domain.OrderFulfilled))
	require.Error(t, ValidateOrderTransition(domain.OrderFulfilled, domain.OrderPending))
}

func TestValidateShipmentTransition(t *testing.T) {
	require.NoError(t, ValidateShipmentTransition(domain.ShipmentPreparing, domain.ShipmentInTransit))
	// carriers post repeated in-transit scans
	require.NoError(t, ValidateShipmentTransition(domain.ShipmentInTransit, domain.ShipmentInTransit))
	require.NoError(t, ValidateShipmentTransition(domain.ShipmentInTransit, domain.ShipmentDelivered))
	require.Error(t, ValidateShipmentTransition(domain.ShipmentPreparing, domain.ShipmentDelivered))
	require.Error(t, ValidateShipmentTransition(domain.ShipmentDelivered, domain.ShipmentInTransit))
}
