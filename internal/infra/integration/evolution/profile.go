package evolution

import "context"

type ProfileResource struct{ resource }

func (r *ProfileResource) Fetch(ctx context.Context, number string) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "fetchProfile"), map[string]any{"number": number})
}

func (r *ProfileResource) FetchBusiness(ctx context.Context, number string) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "fetchBusinessProfile"), map[string]any{"number": number})
}

func (r *ProfileResource) UpdateName(ctx context.Context, name string) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "updateProfileName"), map[string]any{"name": name})
}

func (r *ProfileResource) UpdateStatus(ctx context.Context, status string) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "updateProfileStatus"), map[string]any{"status": status})
}

func (r *ProfileResource) UpdatePicture(ctx context.Context, picture string) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "updateProfilePicture"), map[string]any{"picture": picture})
}

func (r *ProfileResource) RemovePicture(ctx context.Context) (map[string]any, error) {
	return r.service.Delete(ctx, r.path("chat", "removeProfilePicture"), nil)
}

func (r *ProfileResource) FetchPrivacySettings(ctx context.Context) (map[string]any, error) {
	return r.service.Get(ctx, r.path("chat", "fetchPrivacySettings"), nil)
}

// UpdatePrivacySettings recebe readreceipts, profile, status, online, last, groupadd.
func (r *ProfileResource) UpdatePrivacySettings(ctx context.Context, settings map[string]any) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "updatePrivacySettings"), settings)
}
