package http

import (
	"encoding/json"
	"net/http"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/service"
	"github.com/stackdesk/stackdesk/pkg/desksdk"
	"github.com/stackdesk/stackdesk/pkg/httpx"
)

type InvitationsHandler struct {
	InvitationService *service.InvitationService
}

// HandleCreate godoc
//
//	@Summary		Create Invitation
//	@Description	Invite an email address into the organization at a role. The redemption
//	@Description	token travels only in the invitation email; it is never returned here.
//	@Description	Inviting at the owner role is rejected.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string							true	"Organization ID"
//	@Param			request	body		desksdk.CreateInvitationRequest	true	"Invitee and role"
//	@Success		201		{object}	desksdk.InvitationResponse		"id, email, role, status, expires_at"
//	@Failure		400		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	desksdk.ErrorResponse			"error, error_description"
//	@Failure		409		{object}	desksdk.ErrorResponse			"error, error_description - duplicate pending invitation"
//	@Router			/v1/organizations/{id}/invitations [post].
func (h *InvitationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req desksdk.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, desksdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		writeServiceError(w, r, service.ErrInvalidMemberRole)
		return
	}

	inv, err := h.InvitationService.Create(ctx,
		r.PathValue("id"), httpx.UserIDFromCtx(ctx), req.Email, role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInvitationResponse(inv))
}

// HandleList godoc
//
//	@Summary		List Invitations
//	@Description	Return the organization's invitations, newest first. Requires the
//	@Description	invite capability (owner or admin).
//	@Tags			Invitations
//	@Produce		json
//	@Param			id	path		string							true	"Organization ID"
//	@Success		200	{object}	desksdk.InvitationListResponse	"invitations"
//	@Failure		403	{object}	desksdk.ErrorResponse			"error, error_description"
//	@Router			/v1/organizations/{id}/invitations [get].
func (h *InvitationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	invs, err := h.InvitationService.List(ctx, r.PathValue("id"), httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := desksdk.InvitationListResponse{
		Invitations: make([]desksdk.InvitationResponse, 0, len(invs)),
	}
	for _, inv := range invs {
		resp.Invitations = append(resp.Invitations, toInvitationResponse(inv))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleCancel godoc
//
//	@Summary		Cancel Invitation
//	@Description	Withdraw a pending invitation from the organization side. Requires the
//	@Description	cancel capability (owner or admin). Expired invitations can still be cancelled.
//	@Tags			Invitations
//	@Produce		json
//	@Param			id				path	string	true	"Organization ID"
//	@Param			invitationID	path	string	true	"Invitation ID"
//	@Success		204				"cancelled"
//	@Failure		403				{object}	desksdk.ErrorResponse	"error, error_description"
//	@Failure		409				{object}	desksdk.ErrorResponse	"error, error_description - already resolved"
//	@Router			/v1/organizations/{id}/invitations/{invitationID} [delete].
func (h *InvitationsHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.InvitationService.Cancel(ctx,
		r.PathValue("id"), httpx.UserIDFromCtx(ctx), r.PathValue("invitationID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleAccept godoc
//
//	@Summary		Accept Invitation
//	@Description	Accept an invitation addressed to the caller's email. On success the caller
//	@Description	becomes a member at the invited role, atomically with the status change.
//	@Tags			Invitations
//	@Produce		json
//	@Param			invitationID	path		string					true	"Invitation ID"
//	@Success		200				{object}	desksdk.MemberResponse	"id, user_id, email, role"
//	@Failure		403				{object}	desksdk.ErrorResponse	"error, error_description - not the invitee"
//	@Failure		409				{object}	desksdk.ErrorResponse	"error, error_description - already resolved"
//	@Failure		410				{object}	desksdk.ErrorResponse	"error, error_description - expired"
//	@Router			/v1/invitations/{invitationID}/accept [post].
func (h *InvitationsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := httpx.SessionFromCtx(ctx)

	member, err := h.InvitationService.Accept(ctx, r.PathValue("invitationID"), sess.UserID, sess.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMemberResponse(member))
}

// HandleAcceptByToken godoc
//
//	@Summary		Redeem Invitation Token
//	@Description	Accept an invitation via the opaque token from the invitation email.
//	@Description	The caller's session email must still match the invitee address.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		desksdk.AcceptInvitationRequest	true	"Redemption token"
//	@Success		200		{object}	desksdk.MemberResponse			"id, user_id, email, role"
//	@Failure		403		{object}	desksdk.ErrorResponse			"error, error_description - not the invitee"
//	@Failure		404		{object}	desksdk.ErrorResponse			"error, error_description - unknown token"
//	@Failure		410		{object}	desksdk.ErrorResponse			"error, error_description - expired"
//	@Router			/v1/invitations/accept [post].
func (h *InvitationsHandler) HandleAcceptByToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := httpx.SessionFromCtx(ctx)

	var req desksdk.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Token == "" {
		httpx.WriteJSON(w, http.StatusBadRequest, desksdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "token is required",
		})
		return
	}

	member, err := h.InvitationService.AcceptByToken(ctx, req.Token, sess.UserID, sess.Email)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMemberResponse(member))
}

// HandleReject godoc
//
//	@Summary		Reject Invitation
//	@Description	Decline a pending invitation addressed to the caller's email.
//	@Tags			Invitations
//	@Produce		json
//	@Param			invitationID	path	string	true	"Invitation ID"
//	@Success		204				"rejected"
//	@Failure		403				{object}	desksdk.ErrorResponse	"error, error_description - not the invitee"
//	@Failure		409				{object}	desksdk.ErrorResponse	"error, error_description - already resolved"
//	@Router			/v1/invitations/{invitationID}/reject [post].
func (h *InvitationsHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := httpx.SessionFromCtx(ctx)

	if err := h.InvitationService.Reject(ctx, r.PathValue("invitationID"), sess.Email); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toInvitationResponse(inv domain.Invitation) desksdk.InvitationResponse {
	return desksdk.InvitationResponse{
		ID:             inv.ID,
		Email:          inv.Email,
		OrganizationID: inv.OrganizationID,
		Role:           string(inv.Role),
		Status:         string(inv.Status),
		ExpiresAt:      inv.ExpiresAt.Unix(),
		CreatedAt:      inv.CreatedAt.Unix(),
	}
}
