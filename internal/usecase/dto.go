package usecase

import (
	"time"

	"github.com/xavierca1/evolution-relay/internal/entity"
	"github.com/xavierca1/evolution-relay/internal/infra/integration/evolution"
)

// MessageRequest é uma mensagem recebida pela API, pronta para virar Delivery.
type MessageRequest interface {
	Kind() string
	Recipient() string
	TargetInstance() string
	Body() map[string]any
	Validate() []ValidationError
}

type QuotedRequest struct {
	Key     map[string]any `json:"key"`
	Message map[string]any `json:"message"`
}

func (q *QuotedRequest) toEntity() *entity.QuotedMessage {
	if q == nil {
		return nil
	}
	quoted := entity.NewQuotedMessage(q.Key, q.Message)
	return &quoted
}

type SendTextRequest struct {
	Instance    string         `json:"instance"`
	Number      string         `json:"number"`
	Text        string         `json:"text"`
	Delay       int            `json:"delay"`
	LinkPreview *bool          `json:"link_preview"`
	Mentioned   []string       `json:"mentioned"`
	Quoted      *QuotedRequest `json:"quoted"`
}

func (r SendTextRequest) Kind() string           { return evolution.KindText }
func (r SendTextRequest) Recipient() string      { return r.Number }
func (r SendTextRequest) TargetInstance() string { return r.Instance }

func (r SendTextRequest) Body() map[string]any {
	return evolution.SendTextInput{
		Number:      r.Number,
		Text:        r.Text,
		Delay:       r.Delay,
		LinkPreview: r.LinkPreview,
		Mentioned:   r.Mentioned,
		Quoted:      r.Quoted.toEntity(),
	}.Body()
}

// ButtonRequest: Attributes são as chaves extras do tipo (id, url, phoneNumber, copyCode...).
type ButtonRequest struct {
	Type        string         `json:"type"`
	DisplayText string         `json:"display_text"`
	Attributes  map[string]any `json:"attributes"`
}

type SendButtonsRequest struct {
	Instance    string          `json:"instance"`
	Number      string          `json:"number"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Footer      string          `json:"footer"`
	Buttons     []ButtonRequest `json:"buttons"`
	Delay       int             `json:"delay"`
	Quoted      *QuotedRequest  `json:"quoted"`
}

func (r SendButtonsRequest) Kind() string           { return evolution.KindButtons }
func (r SendButtonsRequest) Recipient() string      { return r.Number }
func (r SendButtonsRequest) TargetInstance() string { return r.Instance }

func (r SendButtonsRequest) Body() map[string]any {
	buttons := make([]entity.Button, 0, len(r.Buttons))
	for _, b := range r.Buttons {
		buttons = append(buttons, entity.NewButton(b.Type, b.DisplayText, b.Attributes))
	}
	return evolution.SendButtonsInput{
		Number:      r.Number,
		Title:       r.Title,
		Description: r.Description,
		Footer:      r.Footer,
		Buttons:     buttons,
		Delay:       r.Delay,
		Quoted:      r.Quoted.toEntity(),
	}.Body()
}

type ListRowRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	RowID       string `json:"row_id"`
}

type ListSectionRequest struct {
	Title string           `json:"title"`
	Rows  []ListRowRequest `json:"rows"`
}

type SendListRequest struct {
	Instance    string               `json:"instance"`
	Number      string               `json:"number"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	ButtonText  string               `json:"button_text"`
	FooterText  string               `json:"footer_text"`
	Sections    []ListSectionRequest `json:"sections"`
	Delay       int                  `json:"delay"`
	Quoted      *QuotedRequest       `json:"quoted"`
}

func (r SendListRequest) Kind() string           { return evolution.KindList }
func (r SendListRequest) Recipient() string      { return r.Number }
func (r SendListRequest) TargetInstance() string { return r.Instance }

func (r SendListRequest) Body() map[string]any {
	sections := make([]entity.ListSection, 0, len(r.Sections))
	for _, s := range r.Sections {
		rows := make([]entity.Row, 0, len(s.Rows))
		for _, row := range s.Rows {
			rows = append(rows, entity.NewListRow(row.Title, row.Description, row.RowID))
		}
		sections = append(sections, entity.NewListSection(s.Title, rows...))
	}
	return evolution.SendListInput{
		Number:      r.Number,
		Title:       r.Title,
		Description: r.Description,
		ButtonText:  r.ButtonText,
		FooterText:  r.FooterText,
		Sections:    sections,
		Delay:       r.Delay,
		Quoted:      r.Quoted.toEntity(),
	}.Body()
}

type ContactRequest struct {
	FullName     string  `json:"full_name"`
	Wuid         string  `json:"wuid"`
	PhoneNumber  string  `json:"phone_number"`
	Organization *string `json:"organization"`
	Email        *string `json:"email"`
	URL          *string `json:"url"`
}

type SendContactRequest struct {
	Instance string           `json:"instance"`
	Number   string           `json:"number"`
	Contacts []ContactRequest `json:"contacts"`
}

func (r SendContactRequest) Kind() string           { return evolution.KindContact }
func (r SendContactRequest) Recipient() string      { return r.Number }
func (r SendContactRequest) TargetInstance() string { return r.Instance }

func (r SendContactRequest) Body() map[string]any {
	contacts := make([]entity.Contact, 0, len(r.Contacts))
	for _, c := range r.Contacts {
		var opts []entity.ContactOption
		if c.Organization != nil {
			opts = append(opts, entity.WithOrganization(*c.Organization))
		}
		if c.Email != nil {
			opts = append(opts, entity.WithEmail(*c.Email))
		}
		if c.URL != nil {
			opts = append(opts, entity.WithURL(*c.URL))
		}
		contacts = append(contacts, entity.NewContact(c.FullName, c.Wuid, c.PhoneNumber, opts...))
	}
	return evolution.SendContactInput{Number: r.Number, Contacts: contacts}.Body()
}

type SendLocationRequest struct {
	Instance  string         `json:"instance"`
	Number    string         `json:"number"`
	Name      string         `json:"name"`
	Address   string         `json:"address"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Delay     int            `json:"delay"`
	Quoted    *QuotedRequest `json:"quoted"`
}

func (r SendLocationRequest) Kind() string           { return evolution.KindLocation }
func (r SendLocationRequest) Recipient() string      { return r.Number }
func (r SendLocationRequest) TargetInstance() string { return r.Instance }

func (r SendLocationRequest) Body() map[string]any {
	return evolution.SendLocationInput{
		Number:    r.Number,
		Name:      r.Name,
		Address:   r.Address,
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
		Delay:     r.Delay,
		Quoted:    r.Quoted.toEntity(),
	}.Body()
}

type EnqueueOutput struct {
	ID       string `json:"id"`
	Instance string `json:"instance"`
	Kind     string `json:"kind"`
	Status   string `json:"status"`
}

type DeliveryOutput struct {
	ID           string    `json:"id"`
	Instance     string    `json:"instance"`
	Kind         string    `json:"kind"`
	Number       string    `json:"number"`
	Status       string    `json:"status"`
	RemoteID     string    `json:"remote_id,omitempty"`
	ErrorCode    int       `json:"error_code,omitempty"`
	ErrorMessage string    `json:"error_message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type LabelRequest struct {
	Instance string `json:"instance"`
	Number   string `json:"number"`
	LabelID  string `json:"label_id"`
	Action   string `json:"action"`
}

type CallRequest struct {
	Instance     string `json:"instance"`
	Number       string `json:"number"`
	IsVideo      bool   `json:"is_video"`
	CallDuration int    `json:"call_duration"`
}

type CreateInstanceRequest struct {
	InstanceName string `json:"instance_name"`
	Token        string `json:"token"`
	Number       string `json:"number"`
	QRCode       bool   `json:"qrcode"`
	Integration  string `json:"integration"`
}
