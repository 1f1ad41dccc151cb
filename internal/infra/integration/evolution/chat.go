package evolution

import "context"

type ChatResource struct{ resource }

// CheckWhatsAppNumbers diz quais números têm conta no WhatsApp.
func (r *ChatResource) CheckWhatsAppNumbers(ctx context.Context, numbers []string) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "whatsappNumbers"), map[string]any{"numbers": numbers})
}

// MarkMessageAsRead recebe as keys ({remoteJid, fromMe, id}) das mensagens.
func (r *ChatResource) MarkMessageAsRead(ctx context.Context, keys []map[string]any) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "markMessageAsRead"), map[string]any{"readMessages": keys})
}

func (r *ChatResource) Archive(ctx context.Context, chat string, lastMessage map[string]any, archive bool) (map[string]any, error) {
	body := map[string]any{
		"chat":    chat,
		"archive": archive,
	}
	if lastMessage != nil {
		body["lastMessage"] = lastMessage
	}
	return r.service.Post(ctx, r.path("chat", "archiveChat"), body)
}

func (r *ChatResource) DeleteMessageForEveryone(ctx context.Context, id, remoteJid string, fromMe bool, participant string) (map[string]any, error) {
	query := map[string]string{
		"id":        id,
		"remoteJid": remoteJid,
		"fromMe":    boolString(fromMe),
	}
	if participant != "" {
		query["participant"] = participant
	}
	return r.service.Delete(ctx, r.path("chat", "deleteMessageForEveryone"), query)
}

func (r *ChatResource) FetchProfilePictureURL(ctx context.Context, number string) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "fetchProfilePictureUrl"), map[string]any{"number": number})
}

func (r *ChatResource) FindContacts(ctx context.Context, where map[string]any) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "findContacts"), wrapWhere(where))
}

func (r *ChatResource) FindMessages(ctx context.Context, where map[string]any) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "findMessages"), wrapWhere(where))
}

func (r *ChatResource) FindStatusMessage(ctx context.Context, where map[string]any) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "findStatusMessage"), wrapWhere(where))
}

func (r *ChatResource) FindChats(ctx context.Context) (map[string]any, error) {
	return r.service.Post(ctx, r.path("chat", "findChats"), nil)
}

// SendPresence: composing, recording, paused...
func (r *ChatResource) SendPresence(ctx context.Context, number, presence string, delay int) (map[string]any, error) {
	body := map[string]any{
		"number":   number,
		"presence": presence,
		"delay":    delay,
	}
	return r.service.Post(ctx, r.path("chat", "sendPresence"), body)
}

func (r *ChatResource) UpdateMessage(ctx context.Context, number string, key map[string]any, text string) (map[string]any, error) {
	body := map[string]any{
		"number": number,
		"key":    key,
		"text":   text,
	}
	return r.service.Put(ctx, r.path("chat", "updateMessage"), body)
}

func wrapWhere(where map[string]any) map[string]any {
	if where == nil {
		where = map[string]any{}
	}
	return map[string]any{"where": where}
}
