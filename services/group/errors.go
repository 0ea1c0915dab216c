package group

// ErrNotOwner signals an owner-only action attempted by a non-owner.
type ErrNotOwner struct{}

func (ErrNotOwner) Error() string { return "only the group owner may perform this action" }

// ErrNotMember signals a member-only resource requested by a non-member.
type ErrNotMember struct{}

func (ErrNotMember) Error() string { return "you are not a member of this group" }

// ErrGroupNotFound signals a missing group.
type ErrGroupNotFound struct{}

func (ErrGroupNotFound) Error() string { return "group not found" }

// ErrAlreadyInvited signals a duplicate invite.
type ErrAlreadyInvited struct{}

func (ErrAlreadyInvited) Error() string { return "user has already been invited or is a member" }

// ErrNoPendingInvite signals accept/reject without a pending invite.
type ErrNoPendingInvite struct{}

func (ErrNoPendingInvite) Error() string { return "you have no pending invite for this group" }
