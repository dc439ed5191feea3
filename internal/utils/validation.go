package utils

import (
	"fmt"

	"github.com/summit-surfaces/install-manager/backend/internal/domain"
)

// assignmentTransitions lists the allowed status moves. Terminal statuses
// have no exits.
var assignmentTransitions = map[domain.AssignmentStatus][]domain.AssignmentStatus{
	domain.AssignmentScheduled:  {domain.AssignmentInProgress, domain.AssignmentCancelled},
	domain.AssignmentInProgress: {domain.AssignmentCompleted, domain.AssignmentCancelled},
}

func ValidateAssignmentTransition(from, to domain.AssignmentStatus) error {
	for _, allowed := range assignmentTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("assignment cannot move from %s to %s", from, to)
}

var orderTransitions = map[domain.OrderStatus][]domain.OrderStatus{
	domain.OrderPending: {domain.OrderPaid, domain.OrderCancelled},
	domain.OrderPaid:    {domain.OrderFulfilled, domain.OrderCancelled},
}

func ValidateOrderTransition(from, to domain.OrderStatus) error {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("order cannot move from %s to %s", from, to)
}

var shipmentTransitions = map[domain.ShipmentStatus][]domain.ShipmentStatus{
	domain.ShipmentPreparing: {domain.ShipmentInTransit},
	domain.ShipmentInTransit: {domain.ShipmentInTransit, domain.ShipmentDelivered},
}

func ValidateShipmentTransition(from, to domain.ShipmentStatus) error {
	for _, allowed := range shipmentTransitions[from] {
		if allowed == to {
			return nil
		}
	}
	return fmt.Errorf("shipment cannot move from %s to %s", from, to)
}
