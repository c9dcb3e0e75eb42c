package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/service"
	"github.com/stackdesk/stackdesk/internal/desk/store"
	"github.com/stackdesk/stackdesk/pkg/desksdk"
	"github.com/stackdesk/stackdesk/pkg/httpx"
)

type MembersHandler struct {
	MembershipService *service.MembershipService
}

// HandleList godoc
//
//	@Summary		List Members
//	@Description	Return the organization roster. Any member may read it.
//	@Description	Sort with ?sort=joined|email|role, paginate with ?limit= and ?offset=.
//	@Tags			Members
//	@Produce		json
//	@Param			id		path		string	true	"Organization ID"
//	@Param			sort	query		string	false	"Sort order (joined, email, role)"
//	@Param			limit	query		int		false	"Page size"
//	@Param			offset	query		int		false	"Page offset"
//	@Success		200		{object}	desksdk.MemberListResponse	"members"
//	@Failure		403		{object}	desksdk.ErrorResponse		"error, error_description"
//	@Router			/v1/organizations/{id}/members [get].
func (h *MembersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sort := store.MemberSortJoined
	switch store.MemberSort(r.URL.Query().Get("sort")) {
	case store.MemberSortEmail:
		sort = store.MemberSortEmail
	case store.MemberSortRole:
		sort = store.MemberSortRole
	}

	var page store.Page
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && v > 0 {
		page.Limit = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("offset")); err == nil && v > 0 {
		page.Offset = v
	}

	members, err := h.MembershipService.ListMembers(ctx, r.PathValue("id"), httpx.UserIDFromCtx(ctx), sort, page)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := desksdk.MemberListResponse{
		Members: make([]desksdk.MemberResponse, 0, len(members)),
	}
	for _, m := range members {
		resp.Members = append(resp.Members, toMemberResponse(m))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleUpdateRole godoc
//
//	@Summary		Update Member Role
//	@Description	Change a member's role. Owners may set any role; admins may move members
//	@Description	between admin, member, and guest but cannot touch owners or grant ownership.
//	@Description	The last owner can never be demoted.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			id			path		string							true	"Organization ID"
//	@Param			memberID	path		string							true	"Membership ID"
//	@Param			request		body		desksdk.UpdateMemberRoleRequest	true	"New role"
//	@Success		200			{object}	desksdk.MemberResponse			"id, user_id, email, role"
//	@Failure		403			{object}	desksdk.ErrorResponse			"error, error_description"
//	@Failure		409			{object}	desksdk.ErrorResponse			"error, error_description - last owner"
//	@Router			/v1/organizations/{id}/members/{memberID} [patch].
func (h *MembersHandler) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req desksdk.UpdateMemberRoleRequest
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

	member, err := h.MembershipService.UpdateRole(ctx,
		r.PathValue("id"), httpx.UserIDFromCtx(ctx), r.PathValue("memberID"), role)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMemberResponse(member))
}

// HandleRemove godoc
//
//	@Summary		Remove Member
//	@Description	Remove a member from the organization. The path accepts a membership id
//	@Description	or the member's email address. Admins cannot remove owners, and the last
//	@Description	owner can never be removed.
//	@Tags			Members
//	@Produce		json
//	@Param			id			path	string	true	"Organization ID"
//	@Param			memberID	path	string	true	"Membership ID or email"
//	@Success		204			"removed"
//	@Failure		403			{object}	desksdk.ErrorResponse	"error, error_description"
//	@Failure		409			{object}	desksdk.ErrorResponse	"error, error_description - last owner"
//	@Router			/v1/organizations/{id}/members/{memberID} [delete].
func (h *MembersHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := h.MembershipService.RemoveMember(ctx,
		r.PathValue("id"), httpx.UserIDFromCtx(ctx), r.PathValue("memberID"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toMemberResponse(m domain.Membership) desksdk.MemberResponse {
	return desksdk.MemberResponse{
		ID:       m.ID,
		UserID:   m.UserID,
		Email:    m.Email,
		Role:     string(m.Role),
		JoinedAt: m.CreatedAt.Unix(),
	}
}
