package http

import (
	"errors"
	"net/http"

	"github.com/stackdesk/stackdesk/internal/desk/service"
	"github.com/stackdesk/stackdesk/pkg/desksdk"
	"github.com/stackdesk/stackdesk/pkg/httpx"
	"github.com/stackdesk/stackdesk/pkg/slogx"
)

// writeServiceError maps service-layer sentinel errors onto the API error
// envelope. Anything unmapped is a 500 with a generic body; the detail goes
// to the log, not the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		httpx.WriteJSON(w, http.StatusNotFound, desksdk.ErrorResponse{
			Error:            "not_found",
			ErrorDescription: "Resource not found",
		})
	case errors.Is(err, service.ErrForbidden):
		httpx.WriteJSON(w, http.StatusForbidden, desksdk.ErrorResponse{
			Error:            "forbidden",
			ErrorDescription: "You do not have permission to perform this action",
		})
	case errors.Is(err, service.ErrLastOwner):
		httpx.WriteJSON(w, http.StatusConflict, desksdk.ErrorResponse{
			Error:            "last_owner",
			ErrorDescription: "An organization must keep at least one owner",
		})
	case errors.Is(err, service.ErrInvalidSlug):
		httpx.WriteJSON(w, http.StatusBadRequest, desksdk.ErrorResponse{
			Error:            "invalid_slug",
			ErrorDescription: "Slug must be 1-63 lowercase alphanumerics with single hyphens and must not collide with a reserved route",
		})
	case errors.Is(err, service.ErrSlugTaken):
		httpx.WriteJSON(w, http.StatusConflict, desksdk.ErrorResponse{
			Error:            "slug_taken",
			ErrorDescription: "An organization with this slug already exists",
		})
	case errors.Is(err, service.ErrInvalidName):
		httpx.WriteJSON(w, http.StatusBadRequest, desksdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Organization name is required",
		})
	case errors.Is(err, service.ErrInvalidMemberRole):
		httpx.WriteJSON(w, http.StatusBadRequest, desksdk.ErrorResponse{
			Error:            "invalid_role",
			ErrorDescription: "Role must be one of owner, admin, member, guest",
		})
	case errors.Is(err, service.ErrInvalidEmail):
		httpx.WriteJSON(w, http.StatusBadRequest, desksdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "A valid invitee email is required",
		})
	case errors.Is(err, service.ErrCannotInviteOwner):
		httpx.WriteJSON(w, http.StatusBadRequest, desksdk.ErrorResponse{
			Error:            "cannot_invite_owner",
			ErrorDescription: "Ownership is granted by promoting an existing member, not by invitation",
		})
	case errors.Is(err, service.ErrDuplicateInvitation):
		httpx.WriteJSON(w, http.StatusConflict, desksdk.ErrorResponse{
			Error:            "duplicate_invitation",
			ErrorDescription: "A pending invitation already exists for this email",
		})
	case errors.Is(err, service.ErrInvitationExpired):
		httpx.WriteJSON(w, http.StatusGone, desksdk.ErrorResponse{
			Error:            "invitation_expired",
			ErrorDescription: "This invitation has expired; ask for a new one",
		})
	case errors.Is(err, service.ErrInvitationResolved):
		httpx.WriteJSON(w, http.StatusConflict, desksdk.ErrorResponse{
			Error:            "invitation_resolved",
			ErrorDescription: "This invitation has already been accepted, rejected, or cancelled",
		})
	default:
		slogx.FromContext(r.Context()).Error("unhandled service error", "err", err)
		httpx.WriteJSON(w, http.StatusInternalServerError, desksdk.ErrorResponse{
			Error:            "server_error",
			ErrorDescription: "Something went wrong",
		})
	}
}
