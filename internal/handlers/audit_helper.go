package handlers

import (
	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
)

const (
	actionSignIn        = "auth_sign_in"
	actionSignOut       = "auth_sign_out"
	actionSignUp        = "auth_sign_up"
	actionProfileUpdate = "profile_updated"
)

func writeAudit(
	d *audit.Dispatcher,
	userID string,
	action string,
	meta any,
) {
	d.Dispatch(audit.Event{
		UserID:   userID,
		Action:   action,
		Entity:   "user",
		EntityID: userID,
		Metadata: meta,
	})
}
