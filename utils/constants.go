// File: utils/constants.go
package utils

import "time"

// AuthCachePrefix is the prefix used for Redis authorization cache keys.
const AuthCachePrefix = "auth:"

// AuthCacheTTL is the time-to-live for authorization cache entries.
const AuthCacheTTL = 10 * time.Minute

// GroupMembersCachePrefix is the prefix for cached accepted-member-id lists.
const GroupMembersCachePrefix = "groupMembers:"

// GroupMembersCacheTTL is the time-to-live for cached member lists.
const GroupMembersCacheTTL = 5 * time.Minute
