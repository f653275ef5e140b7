// FilePath: api/resources/api.resource.controls.go
package resources

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"
	nuts "github.com/vaudience/go-nuts"

	"github.com/airsentry/hub/internal/device"
	"github.com/airsentry/hub/internal/errors"
	"github.com/airsentry/hub/internal/hubservice"
)

// ControlHandlers encapsulates the fan/buzzer control HTTP handlers
type ControlHandlers struct {
	hubservice *hubservice.HubService
}

type commandResult struct {
	Device   string `json:"device"`
	Action   string `json:"action"`
	Accepted bool   `json:"accepted"`
}

// @Summary Set fan state
// @Description Send one on/off/auto command to the fan
// @Tags controls
// @Produce json
// @Param action path string true "Action (on|off|auto)"
// @Success 200 {object} commandResult
// @Failure 400 {object} errors.APIError
// @Router /fan/{action} [post]
func (h *ControlHandlers) SetFan(w http.ResponseWriter, r *http.Request) {
	h.handleCommand(w, r, "fan", h.hubservice.SetFan)
}

// @Summary Set buzzer state
// @Description Send one on/off/auto command to the buzzer
// @Tags controls
// @Produce json
// @Param action path string true "Action (on|off|auto)"
// @Success 200 {object} commandResult
// @Failure 400 {object} errors.APIError
// @Router /buzzer/{action} [post]
func (h *ControlHandlers) SetBuzzer(w http.ResponseWriter, r *http.Request) {
	h.handleCommand(w, r, "buzzer", h.hubservice.SetBuzzer)
}

// handleCommand validates the action, dispatches it, and answers 200 with an
// accepted flag. Device-side failures never surface as HTTP errors here; the
// command is fire-and-forget and only the confirmation hint differs.
func (h *ControlHandlers) handleCommand(w http.ResponseWriter, r *http.Request, name string, send func(context.Context, device.Action) bool) {
	vars := mux.Vars(r)
	requestID := nuts.NID("req", 12)

	action, err := device.ParseAction(vars["action"])
	if err != nil {
		respondWithError(w, errors.NewValidationError("invalid control action", err).WithRequestID(requestID))
		return
	}

	accepted := send(r.Context(), action)
	respondWithJSON(w, http.StatusOK, commandResult{
		Device:   name,
		Action:   string(action),
		Accepted: accepted,
	})
}
