// File: handlers/group.go
package handlers

import (
	"net/http"

	"github.com/brenonevs/prs-timemesh/models"
	"github.com/brenonevs/prs-timemesh/services/group"

	"github.com/gin-gonic/gin"
)

// GroupHandler exposes group and invite endpoints.
type GroupHandler struct {
	Groups group.GroupService
}

func NewGroupHandler(svc group.GroupService) *GroupHandler {
	return &GroupHandler{Groups: svc}
}

// CreateGroupHandler handles POST /api/groups.
func (h *GroupHandler) CreateGroupHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	grp, err := h.Groups.CreateGroup(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, grp)
}

// ListGroupsHandler handles GET /api/groups.
func (h *GroupHandler) ListGroupsHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	groups, err := h.Groups.ListGroups(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if groups == nil {
		groups = []models.Group{}
	}
	c.JSON(http.StatusOK, gin.H{"groups": groups})
}

// DeleteGroupHandler handles DELETE /api/groups/:groupID.
func (h *GroupHandler) DeleteGroupHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Groups.DeleteGroup(c.Request.Context(), userID, c.Param("groupID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Group deleted"})
}

// InviteHandler handles POST /api/groups/:groupID/invite.
func (h *GroupHandler) InviteHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Groups.Invite(c.Request.Context(), userID, c.Param("groupID"), req.Username); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invite sent"})
}

// AcceptInviteHandler handles POST /api/groups/:groupID/accept.
func (h *GroupHandler) AcceptInviteHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Groups.AcceptInvite(c.Request.Context(), userID, c.Param("groupID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invite accepted"})
}

// RejectInviteHandler handles POST /api/groups/:groupID/reject.
func (h *GroupHandler) RejectInviteHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Groups.RejectInvite(c.Request.Context(), userID, c.Param("groupID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invite rejected"})
}

// PendingInvitesHandler handles GET /api/groups/pending-invites.
func (h *GroupHandler) PendingInvitesHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	invites, err := h.Groups.PendingInvites(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	if invites == nil {
		invites = []models.PendingInviteDTO{}
	}
	c.JSON(http.StatusOK, gin.H{"invites": invites})
}

// MembersHandler handles GET /api/groups/:groupID/members.
func (h *GroupHandler) MembersHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	members, err := h.Groups.Members(c.Request.Context(), userID, c.Param("groupID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"members": members})
}

// RemoveMemberHandler handles POST /api/groups/remove-member.
func (h *GroupHandler) RemoveMemberHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.MemberActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Groups.RemoveMember(c.Request.Context(), userID, req.GroupID, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member removed"})
}

// TransferOwnershipHandler handles POST /api/groups/transfer-ownership.
func (h *GroupHandler) TransferOwnershipHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req models.MemberActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Groups.TransferOwnership(c.Request.Context(), userID, req.GroupID, req.UserID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ownership transferred"})
}
