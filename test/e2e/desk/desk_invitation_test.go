package desk_test

import (
	"net/http"
	"testing"

	"github.com/stackdesk/stackdesk/pkg/desksdk"
	"github.com/stretchr/testify/require"
)

func TestInvitationFlow(t *testing.T) {
	baseURL, cleanup := setupDeskContainer(t)
	defer cleanup()

	owner := mintSession(t, "user-owner", "owner@example.com", true)
	invitee := mintSession(t, "user-invitee", "invitee@example.com", true)
	impostor := mintSession(t, "user-impostor", "impostor@example.com", true)

	var org desksdk.OrganizationResponse
	status := doJSON(t, http.MethodPost, baseURL+"/v1/organizations", owner,
		desksdk.CreateOrganizationRequest{Slug: "widgets", Name: "Widgets Inc"}, &org)
	require.Equal(t, http.StatusCreated, status)

	invitationsURL := baseURL + "/v1/organizations/" + org.ID + "/invitations"

	var inv desksdk.InvitationResponse

	t.Run("owner invites at admin role", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, invitationsURL, owner,
			desksdk.CreateInvitationRequest{Email: "invitee@example.com", Role: "admin"}, &inv)
		require.Equal(t, http.StatusCreated, status)
		require.Equal(t, "pending", inv.Status)
		require.Equal(t, "invitee@example.com", inv.Email)
	})

	t.Run("owner role cannot be invited", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, invitationsURL, owner,
			desksdk.CreateInvitationRequest{Email: "boss@example.com", Role: "owner"}, nil)
		require.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("duplicate pending invitation conflicts", func(t *testing.T) {
		status := doJSON(t, http.MethodPost, invitationsURL, owner,
			desksdk.CreateInvitationRequest{Email: "invitee@example.com", Role: "member"}, nil)
		require.Equal(t, http.StatusConflict, status)
	})

	t.Run("the wrong account cannot accept", func(t *testing.T) {
		status := doJSON(t, http.MethodPost,
			baseURL+"/v1/invitations/"+inv.ID+"/accept", impostor, nil, nil)
		require.Equal(t, http.StatusForbidden, status)
	})

	t.Run("the invitee accepts and lands on the roster", func(t *testing.T) {
		var member desksdk.MemberResponse
		status := doJSON(t, http.MethodPost,
			baseURL+"/v1/invitations/"+inv.ID+"/accept", invitee, nil, &member)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, "admin", member.Role)
		require.Equal(t, "user-invitee", member.UserID)

		var members desksdk.MemberListResponse
		doJSON(t, http.MethodGet, baseURL+"/v1/organizations/"+org.ID+"/members", owner, nil, &members)
		require.Len(t, members.Members, 2)
	})

	t.Run("a second accept conflicts", func(t *testing.T) {
		status := doJSON(t, http.MethodPost,
			baseURL+"/v1/invitations/"+inv.ID+"/accept", invitee, nil, nil)
		require.Equal(t, http.StatusConflict, status)
	})

	t.Run("new admin can invite and cancel", func(t *testing.T) {
		var second desksdk.InvitationResponse
		status := doJSON(t, http.MethodPost, invitationsURL, invitee,
			desksdk.CreateInvitationRequest{Email: "third@example.com", Role: "guest"}, &second)
		require.Equal(t, http.StatusCreated, status)

		status = doJSON(t, http.MethodDelete,
			invitationsURL+"/"+second.ID, invitee, nil, nil)
		require.Equal(t, http.StatusNoContent, status)
	})

	t.Run("plain member cannot invite", func(t *testing.T) {
		var memberInv desksdk.InvitationResponse
		status := doJSON(t, http.MethodPost, invitationsURL, owner,
			desksdk.CreateInvitationRequest{Email: "plain@example.com", Role: "member"}, &memberInv)
		require.Equal(t, http.StatusCreated, status)

		plain := mintSession(t, "user-plain", "plain@example.com", true)
		var m desksdk.MemberResponse
		status = doJSON(t, http.MethodPost,
			baseURL+"/v1/invitations/"+memberInv.ID+"/accept", plain, nil, &m)
		require.Equal(t, http.StatusOK, status)

		status = doJSON(t, http.MethodPost, invitationsURL, plain,
			desksdk.CreateInvitationRequest{Email: "friend@example.com", Role: "member"}, nil)
		require.Equal(t, http.StatusForbidden, status)
	})

	t.Run("invitee rejects a pending invitation", func(t *testing.T) {
		var rejectInv desksdk.InvitationResponse
		status := doJSON(t, http.MethodPost, invitationsURL, owner,
			desksdk.CreateInvitationRequest{Email: "decliner@example.com", Role: "member"}, &rejectInv)
		require.Equal(t, http.StatusCreated, status)

		decliner := mintSession(t, "user-decliner", "decliner@example.com", true)
		status = doJSON(t, http.MethodPost,
			baseURL+"/v1/invitations/"+rejectInv.ID+"/reject", decliner, nil, nil)
		require.Equal(t, http.StatusNoContent, status)
	})
}
