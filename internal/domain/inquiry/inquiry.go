package inquiry

import (
	"fmt"
	"net/mail"
	"time"

	vo "aster/internal/domain/inquiry/valueobjects"
)

// Inquiry is a customer-reported issue tracked through a status/priority
// lifecycle, with a response log and attachments.
type Inquiry struct {
	id            uint
	title         string
	content       string
	customerName  string
	customerEmail string
	customerPhone string
	status        vo.Status
	priority      vo.Priority
	categoryID    *uint
	assigneeID    *uint
	tags          []string
	createdAt     time.Time
	updatedAt     time.Time
	resolvedAt    *time.Time
	responses     []*Response
	attachments   []*Attachment
}

func NewInquiry(
	title string,
	content string,
	customerName string,
	customerEmail string,
	customerPhone string,
	priority vo.Priority,
	categoryID *uint,
	tags []string,
) (*Inquiry, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(customerName) == 0 {
		return nil, fmt.Errorf("customer name is required")
	}
	if len(customerName) > 100 {
		return nil, fmt.Errorf("customer name exceeds maximum length of 100 characters")
	}
	if _, err := mail.ParseAddress(customerEmail); err != nil {
		return nil, fmt.Errorf("invalid customer email")
	}
	if priority == "" {
		priority = vo.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if tags == nil {
		tags = []string{}
	}

	now := time.Now()

	return &Inquiry{
		title:         title,
		content:       content,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		status:        vo.StatusNew,
		priority:      priority,
		categoryID:    categoryID,
		tags:          tags,
		createdAt:     now,
		updatedAt:     now,
		responses:     []*Response{},
		attachments:   []*Attachment{},
	}, nil
}

func ReconstructInquiry(
	id uint,
	title string,
	content string,
	customerName string,
	customerEmail string,
	customerPhone string,
	status vo.Status,
	priority vo.Priority,
	categoryID *uint,
	assigneeID *uint,
	tags []string,
	createdAt, updatedAt time.Time,
	resolvedAt *time.Time,
) (*Inquiry, error) {
	if id == 0 {
		return nil, fmt.Errorf("inquiry ID cannot be zero")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if tags == nil {
		tags = []string{}
	}

	return &Inquiry{
		id:            id,
		title:         title,
		content:       content,
		customerName:  customerName,
		customerEmail: customerEmail,
		customerPhone: customerPhone,
		status:        status,
		priority:      priority,
		categoryID:    categoryID,
		assigneeID:    assigneeID,
		tags:          tags,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		resolvedAt:    resolvedAt,
		responses:     []*Response{},
		attachments:   []*Attachment{},
	}, nil
}

func (i *Inquiry) ID() uint                { return i.id }
func (i *Inquiry) Title() string           { return i.title }
func (i *Inquiry) Content() string         { return i.content }
func (i *Inquiry) CustomerName() string    { return i.customerName }
func (i *Inquiry) CustomerEmail() string   { return i.customerEmail }
func (i *Inquiry) CustomerPhone() string   { return i.customerPhone }
func (i *Inquiry) Status() vo.Status       { return i.status }
func (i *Inquiry) Priority() vo.Priority   { return i.priority }
func (i *Inquiry) CategoryID() *uint       { return i.categoryID }
func (i *Inquiry) AssigneeID() *uint       { return i.assigneeID }
func (i *Inquiry) CreatedAt() time.Time    { return i.createdAt }
func (i *Inquiry) UpdatedAt() time.Time    { return i.updatedAt }
func (i *Inquiry) ResolvedAt() *time.Time  { return i.resolvedAt }

func (i *Inquiry) Tags() []string {
	tagsCopy := make([]string, len(i.tags))
	copy(tagsCopy, i.tags)
	return tagsCopy
}

func (i *Inquiry) Responses() []*Response {
	responsesCopy := make([]*Response, len(i.responses))
	copy(responsesCopy, i.responses)
	return responsesCopy
}

func (i *Inquiry) Attachments() []*Attachment {
	attachmentsCopy := make([]*Attachment, len(i.attachments))
	copy(attachmentsCopy, i.attachments)
	return attachmentsCopy
}

func (i *Inquiry) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("inquiry ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("inquiry ID cannot be zero")
	}
	i.id = id
	return nil
}

// ChangeStatus sets the status to any of the enumerated values. The first
// transition into resolved stamps resolvedAt; it is never cleared or
// restamped afterward, even if the status leaves and re-enters resolved.
func (i *Inquiry) ChangeStatus(newStatus vo.Status) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}

	i.status = newStatus
	i.updatedAt = time.Now()

	if newStatus.IsResolved() && i.resolvedAt == nil {
		now := time.Now()
		i.resolvedAt = &now
	}

	return nil
}

func (i *Inquiry) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}

	i.priority = newPriority
	i.updatedAt = time.Now()
	return nil
}

func (i *Inquiry) AssignTo(assigneeID uint) error {
	if assigneeID == 0 {
		return fmt.Errorf("assignee ID cannot be zero")
	}

	i.assigneeID = &assigneeID
	i.updatedAt = time.Now()
	return nil
}

func (i *Inquiry) Unassign() {
	i.assigneeID = nil
	i.updatedAt = time.Now()
}

func (i *Inquiry) ChangeCategory(categoryID *uint) {
	i.categoryID = categoryID
	i.updatedAt = time.Now()
}

func (i *Inquiry) UpdateDetails(title, content, customerName, customerEmail, customerPhone string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(content) == 0 {
		return fmt.Errorf("content is required")
	}
	if len(customerName) == 0 {
		return fmt.Errorf("customer name is required")
	}
	if _, err := mail.ParseAddress(customerEmail); err != nil {
		return fmt.Errorf("invalid customer email")
	}

	i.title = title
	i.content = content
	i.customerName = customerName
	i.customerEmail = customerEmail
	i.customerPhone = customerPhone
	i.updatedAt = time.Now()
	return nil
}

func (i *Inquiry) ReplaceTags(tags []string) {
	if tags == nil {
		tags = []string{}
	}
	i.tags = tags
	i.updatedAt = time.Now()
}

// AttachResponses replaces the in-memory response log during reconstruction.
// Unlike AddResponse it does not touch the update timestamp.
func (i *Inquiry) AttachResponses(responses []*Response) {
	if responses == nil {
		responses = []*Response{}
	}
	i.responses = responses
}

// AttachAttachments replaces the in-memory attachment list during
// reconstruction without touching the update timestamp.
func (i *Inquiry) AttachAttachments(attachments []*Attachment) {
	if attachments == nil {
		attachments = []*Attachment{}
	}
	i.attachments = attachments
}

func (i *Inquiry) AddResponse(response *Response) error {
	if response == nil {
		return fmt.Errorf("response cannot be nil")
	}
	if response.InquiryID() != i.id {
		return fmt.Errorf("response inquiry ID mismatch")
	}

	i.responses = append(i.responses, response)
	i.updatedAt = time.Now()
	return nil
}

func (i *Inquiry) AddAttachment(attachment *Attachment) error {
	if attachment == nil {
		return fmt.Errorf("attachment cannot be nil")
	}
	if attachment.InquiryID() != i.id {
		return fmt.Errorf("attachment inquiry ID mismatch")
	}

	i.attachments = append(i.attachments, attachment)
	i.updatedAt = time.Now()
	return nil
}
