// Package notification decides whether and what to tell a journey owner
// about a new registration. Delivery is an external collaborator behind the
// Service port; this package only produces the decision and its payload.
package notification

import (
	"context"

	id "crewdock/pkg/domain"
)

// Payload is everything the delivery mechanism needs to render a "new
// registration" notification.
type Payload struct {
	OwnerID        id.UserID
	RegistrationID id.RegistrationID
	JourneyID      id.JourneyID
	JourneyName    string
	CrewName       string
}

// Decision is the policy outcome.
type Decision struct {
	Notify  bool
	Payload Payload
}

// Service delivers notifications; implementations live outside this core.
type Service interface {
	NotifyNewRegistration(ctx context.Context, payload Payload, actorID id.UserID) error
}

// Decide applies the notification rule for registration creation and
// reactivation: notify the owner immediately when auto-approval is not in
// effect (nothing further will be computed); suppress the immediate
// notification when it is, because the owner hears about the registration
// once the assessment resolves.
func Decide(autoApprovalInEffect bool, payload Payload) Decision {
	return Decision{
		Notify:  !autoApprovalInEffect,
		Payload: payload,
	}
}
