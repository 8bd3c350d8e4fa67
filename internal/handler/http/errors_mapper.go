package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-box-keeper/internal/app"
	"github.com/MKhiriev/go-box-keeper/internal/logger"
	"github.com/MKhiriev/go-box-keeper/internal/service"
	"github.com/MKhiriev/go-box-keeper/internal/store"
	"github.com/MKhiriev/go-box-keeper/internal/utils"
	"github.com/MKhiriev/go-box-keeper/internal/validators"
	"github.com/MKhiriev/go-box-keeper/models"
)

// errorResponse maps an error to what the client sees.
type errorResponse struct {
	target  error
	status  int
	message string
}

// commonErrorResponses is searched in order after the route's own table.
var commonErrorResponses = []errorResponse{
	{ErrInvalidJSON, http.StatusBadRequest, app.MsgInvalidJSON},
	{ErrMalformedLogin, http.StatusBadRequest, app.MsgSpecifyLogin},
	{ErrSlotNumberType, http.StatusBadRequest, app.MsgSlotNumberType},
	{ErrBoxIDAndName, http.StatusBadRequest, app.MsgUseIDOrName},
	{ErrBoxNameType, http.StatusBadRequest, app.MsgNameType},
	{ErrBoxIDType, http.StatusBadRequest, app.MsgIDType},
	{ErrBoxKeyMissing, http.StatusBadRequest, app.MsgSpecifyBox},

	{service.ErrAdminLoginNotFound, http.StatusNotFound, app.MsgAdminLoginNotFound},
	{service.ErrBadLoginPassword, http.StatusForbidden, app.MsgBadLoginPassword},

	{service.ErrBoxKeyAmbiguous, http.StatusBadRequest, app.MsgSpecifyBox},
	{service.ErrBoxNotFound, http.StatusNotFound, app.MsgBoxNotFound},
	{service.ErrBoxBusy, http.StatusConflict, app.MsgBoxBusy},
	{service.ErrVersionConflict, http.StatusConflict, app.MsgBoxModified},
	{service.ErrLockUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
	{service.ErrSlotOutOfRange, http.StatusBadRequest, app.MsgSlotOutOfRange},
	{service.ErrSlotNotAllocated, http.StatusBadRequest, app.MsgSlotNotAllocated},
	{service.ErrSlotAlreadyAllocated, http.StatusConflict, app.MsgSlotAlreadyAllocated},
	{service.ErrSlotWithoutDate, http.StatusInternalServerError, app.MsgSlotWithoutDate},
	{service.ErrOccupantNotFound, http.StatusNotFound, app.MsgOccupantNotFound},
	{service.ErrOccupantCorrupted, http.StatusInternalServerError, app.MsgOccupantCorrupted},

	{service.ErrUserNotFound, http.StatusNotFound, app.MsgUserNotFound},
	{service.ErrAdminNotFound, http.StatusNotFound, app.MsgAdminNotFound},
	{service.ErrWrongCredentials, http.StatusForbidden, app.MsgWrongCredentials},
	{service.ErrUserEmailTaken, http.StatusConflict, app.MsgUserEmailTaken},
	{service.ErrAdminEmailTaken, http.StatusConflict, app.MsgAdminEmailTaken},

	{validators.ErrInvalidEmail, http.StatusBadRequest, app.MsgEmailType},
	{validators.ErrInvalidName, http.StatusBadRequest, app.MsgNameType},
	{validators.ErrInvalidPlacement, http.StatusBadRequest, app.MsgPlacementType},
	{validators.ErrInvalidBoxSize, http.StatusBadRequest, app.MsgBoxSize},
	{validators.ErrInvalidPassword, http.StatusBadRequest, app.MsgPasswordFormat},
	{validators.ErrInvalidOldPassword, http.StatusBadRequest, app.MsgOldPasswordFormat},
	{validators.ErrInvalidNewPassword, http.StatusBadRequest, app.MsgNewPasswordFormat},

	{store.ErrStorageUnavailable, http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

// resolveError finds the first entry matching err, looking at routeErrors
// before the common table. Unknown errors become 500.
func resolveError(err error, routeErrors []errorResponse) (int, string) {
	for _, table := range [][]errorResponse{routeErrors, commonErrorResponses} {
		for _, e := range table {
			if errors.Is(err, e.target) {
				return e.status, e.message
			}
		}
	}

	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and answers with the mapped status and message.
// Client errors are logged as warnings.
func writeError(w http.ResponseWriter, r *http.Request, err error, routeErrors []errorResponse) {
	log := logger.FromRequest(r)

	status, message := resolveError(err, routeErrors)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg(message)
	} else {
		log.Warn().Err(err).Int("status", status).Msg(message)
	}

	utils.WriteJSON(w, models.MessageResponse{Message: message}, status)
}

func writeMessage(w http.ResponseWriter, message string) {
	utils.WriteJSON(w, models.MessageResponse{Message: message}, http.StatusOK)
}
