package http

import (
	"encoding/json"
	"net/http"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/service"
	"github.com/stackdesk/stackdesk/pkg/desksdk"
	"github.com/stackdesk/stackdesk/pkg/httpx"
)

type OrganizationsHandler struct {
	OrganizationService *service.OrganizationService
}

// HandleCreate godoc
//
//	@Summary		Create Organization
//	@Description	Provision a new tenant. The caller becomes the organization's first owner.
//	@Description	The slug is the permanent routing key and cannot be changed afterwards.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		desksdk.CreateOrganizationRequest	true	"Organization to create"
//	@Success		201		{object}	desksdk.OrganizationResponse		"id, slug, name"
//	@Failure		400		{object}	desksdk.ErrorResponse				"error, error_description"
//	@Failure		409		{object}	desksdk.ErrorResponse				"error, error_description"
//	@Router			/v1/organizations [post].
func (h *OrganizationsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sess := httpx.SessionFromCtx(ctx)

	var req desksdk.CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, desksdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	org, err := h.OrganizationService.Create(ctx, sess.UserID, sess.Email, req.Slug, req.Name, req.Metadata)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toOrganizationResponse(org))
}

// HandleList godoc
//
//	@Summary		List My Organizations
//	@Description	Return every organization the caller is a member of, ordered by name.
//	@Tags			Organizations
//	@Produce		json
//	@Success		200	{object}	desksdk.OrganizationListResponse	"organizations"
//	@Failure		401	{object}	desksdk.ErrorResponse				"error, error_description"
//	@Router			/v1/organizations [get].
func (h *OrganizationsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	orgs, err := h.OrganizationService.ListForUser(ctx, httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	resp := desksdk.OrganizationListResponse{
		Organizations: make([]desksdk.OrganizationResponse, 0, len(orgs)),
	}
	for _, org := range orgs {
		resp.Organizations = append(resp.Organizations, toOrganizationResponse(org))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGet godoc
//
//	@Summary		Get Organization
//	@Description	Fetch a single organization. Members only; non-members receive 403
//	@Description	whether or not the organization exists.
//	@Tags			Organizations
//	@Produce		json
//	@Param			id	path		string							true	"Organization ID"
//	@Success		200	{object}	desksdk.OrganizationResponse	"id, slug, name"
//	@Failure		403	{object}	desksdk.ErrorResponse			"error, error_description"
//	@Router			/v1/organizations/{id} [get].
func (h *OrganizationsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	org, err := h.OrganizationService.Get(ctx, r.PathValue("id"), httpx.UserIDFromCtx(ctx))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOrganizationResponse(org))
}

// HandleRename godoc
//
//	@Summary		Rename Organization
//	@Description	Change the display name. Requires the settings capability (owner or admin).
//	@Description	The slug never changes.
//	@Tags			Organizations
//	@Accept			json
//	@Produce		json
//	@Param			id		path	string								true	"Organization ID"
//	@Param			request	body	desksdk.RenameOrganizationRequest	true	"New name"
//	@Success		204		"renamed"
//	@Failure		400		{object}	desksdk.ErrorResponse	"error, error_description"
//	@Failure		403		{object}	desksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/organizations/{id} [patch].
func (h *OrganizationsHandler) HandleRename(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req desksdk.RenameOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteJSON(w, http.StatusBadRequest, desksdk.ErrorResponse{
			Error:            "invalid_request",
			ErrorDescription: "Invalid JSON body",
		})
		return
	}

	if err := h.OrganizationService.Rename(ctx, r.PathValue("id"), httpx.UserIDFromCtx(ctx), req.Name); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete godoc
//
//	@Summary		Delete Organization
//	@Description	Remove the organization with its memberships and pending invitations. Owners only.
//	@Tags			Organizations
//	@Produce		json
//	@Param			id	path	string	true	"Organization ID"
//	@Success		204	"deleted"
//	@Failure		403	{object}	desksdk.ErrorResponse	"error, error_description"
//	@Router			/v1/organizations/{id} [delete].
func (h *OrganizationsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.OrganizationService.Delete(ctx, r.PathValue("id"), httpx.UserIDFromCtx(ctx)); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toOrganizationResponse(org domain.Organization) desksdk.OrganizationResponse {
	return desksdk.OrganizationResponse{
		ID:        org.ID,
		Slug:      org.Slug,
		Name:      org.Name,
		Metadata:  org.Metadata,
		CreatedAt: org.CreatedAt.Unix(),
	}
}
