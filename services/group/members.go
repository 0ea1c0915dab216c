// File: services/group/members.go
package group

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/brenonevs/prs-timemesh/models"
	"github.com/brenonevs/prs-timemesh/utils"

	"go.uber.org/zap"
)

// Members lists accepted members. Only members may see the roster.
func (s *DefaultGroupService) Members(ctx context.Context, requesterID, groupID string) ([]models.GroupMemberDTO, error) {
	isMember, _, err := s.ResolveMembers(ctx, groupID, requesterID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, ErrNotMember{}
	}

	memberships, err := s.Repo.ListMemberships(ctx, groupID, true)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, 2*len(memberships))
	for _, m := range memberships {
		ids = append(ids, m.UserID, m.InvitedBy)
	}
	names, err := s.Users.Usernames(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve usernames: %w", err)
	}

	members := make([]models.GroupMemberDTO, len(memberships))
	for i, m := range memberships {
		members[i] = models.GroupMemberDTO{
			UserID:    m.UserID,
			Username:  names[m.UserID],
			InvitedBy: names[m.InvitedBy],
			Accepted:  m.Accepted,
			InvitedAt: m.InvitedAt,
		}
	}
	return members, nil
}

// ResolveMembers returns whether the requester is an accepted member and the
// full accepted member-id list. Member lists are cached briefly in Redis;
// membership changes invalidate the entry.
func (s *DefaultGroupService) ResolveMembers(ctx context.Context, groupID, requesterID string) (bool, []string, error) {
	memberIDs, err := s.cachedMemberIDs(ctx, groupID)
	if err != nil {
		return false, nil, err
	}

	for _, id := range memberIDs {
		if id == requesterID {
			return true, memberIDs, nil
		}
	}
	return false, nil, nil
}

func (s *DefaultGroupService) cachedMemberIDs(ctx context.Context, groupID string) ([]string, error) {
	if s.Cache == nil {
		return s.Repo.AcceptedMemberIDs(ctx, groupID)
	}

	key := utils.GroupMembersCachePrefix + groupID
	if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
		var ids []string
		if err := json.Unmarshal([]byte(data), &ids); err == nil {
			return ids, nil
		}
	}

	ids, err := s.Repo.AcceptedMemberIDs(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if data, err := json.Marshal(ids); err == nil {
		if err := s.Cache.Set(ctx, key, data, utils.GroupMembersCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache member list",
				zap.String("groupID", groupID), zap.Error(err))
		}
	}
	return ids, nil
}

func (s *DefaultGroupService) invalidateMemberCache(ctx context.Context, groupID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, utils.GroupMembersCachePrefix+groupID).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate member cache",
			zap.String("groupID", groupID), zap.Error(err))
	}
}
