package evolution

import "context"

type GroupResource struct{ resource }

func (r *GroupResource) Create(ctx context.Context, in CreateGroupInput) (map[string]any, error) {
	return r.service.Post(ctx, r.path("group", "create"), in.Body())
}

func (r *GroupResource) UpdatePicture(ctx context.Context, groupJid, image string) (map[string]any, error) {
	return r.service.Post(ctx, r.groupPath("updateGroupPicture", groupJid), map[string]any{"image": image})
}

func (r *GroupResource) UpdateSubject(ctx context.Context, groupJid, subject string) (map[string]any, error) {
	return r.service.Post(ctx, r.groupPath("updateGroupSubject", groupJid), map[string]any{"subject": subject})
}

func (r *GroupResource) UpdateDescription(ctx context.Context, groupJid, description string) (map[string]any, error) {
	return r.service.Post(ctx, r.groupPath("updateGroupDescription", groupJid), map[string]any{"description": description})
}

func (r *GroupResource) InviteCode(ctx context.Context, groupJid string) (map[string]any, error) {
	return r.service.Get(ctx, r.path("group", "inviteCode"), map[string]string{"groupJid": groupJid})
}

func (r *GroupResource) RevokeInviteCode(ctx context.Context, groupJid string) (map[string]any, error) {
	return r.service.Post(ctx, r.groupPath("revokeInviteCode", groupJid), nil)
}

func (r *GroupResource) SendInvite(ctx context.Context, groupJid, description string, numbers []string) (map[string]any, error) {
	body := map[string]any{
		"groupJid":    groupJid,
		"description": description,
		"numbers":     numbers,
	}
	return r.service.Post(ctx, r.path("group", "sendInvite"), body)
}

func (r *GroupResource) InviteInfo(ctx context.Context, inviteCode string) (map[string]any, error) {
	return r.service.Get(ctx, r.path("group", "inviteInfo"), map[string]string{"inviteCode": inviteCode})
}

func (r *GroupResource) FindInfo(ctx context.Context, groupJid string) (map[string]any, error) {
	return r.service.Get(ctx, r.path("group", "findGroupInfos"), map[string]string{"groupJid": groupJid})
}

func (r *GroupResource) FetchAll(ctx context.Context, withParticipants bool) (map[string]any, error) {
	return r.service.Get(ctx, r.path("group", "fetchAllGroups"), map[string]string{"getParticipants": boolString(withParticipants)})
}

func (r *GroupResource) Participants(ctx context.Context, groupJid string) (map[string]any, error) {
	return r.service.Get(ctx, r.path("group", "participants"), map[string]string{"groupJid": groupJid})
}

// UpdateParticipant: action add, remove, promote ou demote.
func (r *GroupResource) UpdateParticipant(ctx context.Context, groupJid, action string, participants []string) (map[string]any, error) {
	body := map[string]any{
		"action":       action,
		"participants": participants,
	}
	return r.service.Post(ctx, r.groupPath("updateParticipant", groupJid), body)
}

// UpdateSetting: announcement, not_announcement, locked ou unlocked.
func (r *GroupResource) UpdateSetting(ctx context.Context, groupJid, action string) (map[string]any, error) {
	return r.service.Post(ctx, r.groupPath("updateSetting", groupJid), map[string]any{"action": action})
}

// ToggleEphemeral: expiration em segundos (0, 86400, 604800, 7776000).
func (r *GroupResource) ToggleEphemeral(ctx context.Context, groupJid string, expiration int) (map[string]any, error) {
	return r.service.Post(ctx, r.groupPath("toggleEphemeral", groupJid), map[string]any{"expiration": expiration})
}

func (r *GroupResource) Leave(ctx context.Context, groupJid string) (map[string]any, error) {
	return r.service.Delete(ctx, r.path("group", "leaveGroup"), map[string]string{"groupJid": groupJid})
}
