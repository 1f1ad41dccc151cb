package evolution

import "github.com/xavierca1/evolution-relay/internal/entity"

// Campos opcionais só entram no corpo quando preenchidos (zero value = ausente).

type SendTextInput struct {
	Number           string
	Text             string
	Delay            int
	LinkPreview      *bool
	MentionsEveryOne bool
	Mentioned        []string
	Quoted           *entity.QuotedMessage
}

func (in SendTextInput) Body() map[string]any {
	body := map[string]any{
		"number": in.Number,
		"text":   in.Text,
	}
	if in.LinkPreview != nil {
		body["linkPreview"] = *in.LinkPreview
	}
	if in.MentionsEveryOne {
		body["mentionsEveryOne"] = true
	}
	if len(in.Mentioned) > 0 {
		body["mentioned"] = in.Mentioned
	}
	return withOptions(body, in.Delay, in.Quoted)
}

type SendMediaInput struct {
	Number    string
	MediaType string // image, video, document
	MimeType  string
	Caption   string
	Media     string // URL ou base64
	FileName  string
	Delay     int
	Quoted    *entity.QuotedMessage
}

func (in SendMediaInput) Body() map[string]any {
	body := map[string]any{
		"number":    in.Number,
		"mediatype": in.MediaType,
		"media":     in.Media,
	}
	setIfNotEmpty(body, "mimetype", in.MimeType)
	setIfNotEmpty(body, "caption", in.Caption)
	setIfNotEmpty(body, "fileName", in.FileName)
	return withOptions(body, in.Delay, in.Quoted)
}

type SendAudioInput struct {
	Number string
	Audio  string
	Delay  int
	Quoted *entity.QuotedMessage
}

func (in SendAudioInput) Body() map[string]any {
	return withOptions(map[string]any{"number": in.Number, "audio": in.Audio}, in.Delay, in.Quoted)
}

type SendStickerInput struct {
	Number  string
	Sticker string
	Delay   int
}

func (in SendStickerInput) Body() map[string]any {
	return withOptions(map[string]any{"number": in.Number, "sticker": in.Sticker}, in.Delay, nil)
}

type SendLocationInput struct {
	Number    string
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Delay     int
	Quoted    *entity.QuotedMessage
}

func (in SendLocationInput) Body() map[string]any {
	body := map[string]any{
		"number":    in.Number,
		"name":      in.Name,
		"address":   in.Address,
		"latitude":  in.Latitude,
		"longitude": in.Longitude,
	}
	return withOptions(body, in.Delay, in.Quoted)
}

type SendContactInput struct {
	Number   string
	Contacts []entity.Contact
}

func (in SendContactInput) Body() map[string]any {
	contacts := make([]map[string]any, 0, len(in.Contacts))
	for _, c := range in.Contacts {
		contacts = append(contacts, c.ToMap())
	}
	return map[string]any{"number": in.Number, "contact": contacts}
}

type SendReactionInput struct {
	Key      map[string]any // remoteJid, fromMe, id
	Reaction string
}

func (in SendReactionInput) Body() map[string]any {
	return map[string]any{"key": in.Key, "reaction": in.Reaction}
}

type SendPollInput struct {
	Number          string
	Name            string
	SelectableCount int
	Values          []string
	Delay           int
	Quoted          *entity.QuotedMessage
}

func (in SendPollInput) Body() map[string]any {
	values := in.Values
	if values == nil {
		values = []string{}
	}
	body := map[string]any{
		"number":          in.Number,
		"name":            in.Name,
		"selectableCount": in.SelectableCount,
		"values":          values,
	}
	return withOptions(body, in.Delay, in.Quoted)
}

type SendListInput struct {
	Number      string
	Title       string
	Description string
	ButtonText  string
	FooterText  string
	Sections    []entity.ListSection
	Delay       int
	Quoted      *entity.QuotedMessage
}

func (in SendListInput) Body() map[string]any {
	sections := make([]map[string]any, 0, len(in.Sections))
	for _, s := range in.Sections {
		sections = append(sections, s.ToMap())
	}
	body := map[string]any{
		"number":      in.Number,
		"title":       in.Title,
		"description": in.Description,
		"buttonText":  in.ButtonText,
		"footerText":  in.FooterText,
		"sections":    sections,
	}
	return withOptions(body, in.Delay, in.Quoted)
}

type SendButtonsInput struct {
	Number      string
	Title       string
	Description string
	Footer      string
	Buttons     []entity.Button
	Delay       int
	Quoted      *entity.QuotedMessage
}

func (in SendButtonsInput) Body() map[string]any {
	buttons := make([]map[string]any, 0, len(in.Buttons))
	for _, b := range in.Buttons {
		buttons = append(buttons, b.ToMap())
	}
	body := map[string]any{
		"number":      in.Number,
		"title":       in.Title,
		"description": in.Description,
		"footer":      in.Footer,
		"buttons":     buttons,
	}
	return withOptions(body, in.Delay, in.Quoted)
}

type SendStatusInput struct {
	Type            string // text, image, video, audio
	Content         string
	Caption         string
	BackgroundColor string
	Font            int
	AllContacts     bool
	StatusJidList   []string
}

func (in SendStatusInput) Body() map[string]any {
	body := map[string]any{
		"type":        in.Type,
		"content":     in.Content,
		"allContacts": in.AllContacts,
	}
	setIfNotEmpty(body, "caption", in.Caption)
	setIfNotEmpty(body, "backgroundColor", in.BackgroundColor)
	if in.Font > 0 {
		body["font"] = in.Font
	}
	if len(in.StatusJidList) > 0 {
		body["statusJidList"] = in.StatusJidList
	}
	return body
}

type CreateInstanceInput struct {
	InstanceName string
	Token        string
	Number       string
	QRCode       bool
	Integration  string // WHATSAPP-BAILEYS (padrão) ou WHATSAPP-BUSINESS
}

func (in CreateInstanceInput) Body() map[string]any {
	integration := in.Integration
	if integration == "" {
		integration = "WHATSAPP-BAILEYS"
	}
	body := map[string]any{
		"instanceName": in.InstanceName,
		"qrcode":       in.QRCode,
		"integration":  integration,
	}
	setIfNotEmpty(body, "token", in.Token)
	setIfNotEmpty(body, "number", in.Number)
	return body
}

type CreateGroupInput struct {
	Subject      string
	Description  string
	Participants []string
}

func (in CreateGroupInput) Body() map[string]any {
	participants := in.Participants
	if participants == nil {
		participants = []string{}
	}
	body := map[string]any{
		"subject":      in.Subject,
		"participants": participants,
	}
	setIfNotEmpty(body, "description", in.Description)
	return body
}

func withOptions(body map[string]any, delay int, quoted *entity.QuotedMessage) map[string]any {
	if delay > 0 {
		body["delay"] = delay
	}
	if quoted != nil {
		body["quoted"] = quoted.ToMap()
	}
	return body
}

func setIfNotEmpty(body map[string]any, key, value string) {
	if value != "" {
		body[key] = value
	}
}
