package evolution

import "context"

// Endpoints de envio (message/<kind>/<instance>).
const (
	KindText     = "sendText"
	KindMedia    = "sendMedia"
	KindAudio    = "sendWhatsAppAudio"
	KindSticker  = "sendSticker"
	KindLocation = "sendLocation"
	KindContact  = "sendContact"
	KindReaction = "sendReaction"
	KindPoll     = "sendPoll"
	KindList     = "sendList"
	KindButtons  = "sendButtons"
	KindStatus   = "sendStatus"
)

var messageKinds = map[string]bool{
	KindText: true, KindMedia: true, KindAudio: true, KindSticker: true, KindLocation: true,
	KindContact: true, KindReaction: true, KindPoll: true, KindList: true, KindButtons: true, KindStatus: true,
}

func IsMessageKind(kind string) bool {
	return messageKinds[kind]
}

type MessageResource struct{ resource }

// Send posta um corpo já montado no endpoint do kind. É o que o worker usa para reenviar o que veio da fila.
func (r *MessageResource) Send(ctx context.Context, kind string, body map[string]any) (map[string]any, error) {
	return r.service.Post(ctx, r.path("message", kind), body)
}

func (r *MessageResource) SendText(ctx context.Context, in SendTextInput) (map[string]any, error) {
	return r.Send(ctx, KindText, in.Body())
}

func (r *MessageResource) SendMedia(ctx context.Context, in SendMediaInput) (map[string]any, error) {
	return r.Send(ctx, KindMedia, in.Body())
}

func (r *MessageResource) SendAudio(ctx context.Context, in SendAudioInput) (map[string]any, error) {
	return r.Send(ctx, KindAudio, in.Body())
}

func (r *MessageResource) SendSticker(ctx context.Context, in SendStickerInput) (map[string]any, error) {
	return r.Send(ctx, KindSticker, in.Body())
}

func (r *MessageResource) SendLocation(ctx context.Context, in SendLocationInput) (map[string]any, error) {
	return r.Send(ctx, KindLocation, in.Body())
}

func (r *MessageResource) SendContact(ctx context.Context, in SendContactInput) (map[string]any, error) {
	return r.Send(ctx, KindContact, in.Body())
}

func (r *MessageResource) SendReaction(ctx context.Context, in SendReactionInput) (map[string]any, error) {
	return r.Send(ctx, KindReaction, in.Body())
}

func (r *MessageResource) SendPoll(ctx context.Context, in SendPollInput) (map[string]any, error) {
	return r.Send(ctx, KindPoll, in.Body())
}

func (r *MessageResource) SendList(ctx context.Context, in SendListInput) (map[string]any, error) {
	return r.Send(ctx, KindList, in.Body())
}

func (r *MessageResource) SendButtons(ctx context.Context, in SendButtonsInput) (map[string]any, error) {
	return r.Send(ctx, KindButtons, in.Body())
}

func (r *MessageResource) SendStatus(ctx context.Context, in SendStatusInput) (map[string]any, error) {
	return r.Send(ctx, KindStatus, in.Body())
}
