package inquiry

import (
	"fmt"
	"time"
)

// Attachment is a stored file reference owned by an inquiry. The blob itself
// lives in the attachment store; only the storage key is tracked here.
type Attachment struct {
	id          uint
	inquiryID   uint
	storageKey  string
	filename    string
	contentType string
	size        int64
	uploadedAt  time.Time
}

func NewAttachment(inquiryID uint, storageKey, filename, contentType string, size int64) (*Attachment, error) {
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}
	if len(storageKey) == 0 {
		return nil, fmt.Errorf("storage key is required")
	}
	if len(filename) == 0 {
		return nil, fmt.Errorf("filename is required")
	}
	if len(filename) > 255 {
		return nil, fmt.Errorf("filename exceeds maximum length of 255 characters")
	}

	return &Attachment{
		inquiryID:   inquiryID,
		storageKey:  storageKey,
		filename:    filename,
		contentType: contentType,
		size:        size,
		uploadedAt:  time.Now(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	inquiryID uint,
	storageKey string,
	filename string,
	contentType string,
	size int64,
	uploadedAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}

	return &Attachment{
		id:          id,
		inquiryID:   inquiryID,
		storageKey:  storageKey,
		filename:    filename,
		contentType: contentType,
		size:        size,
		uploadedAt:  uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint              { return a.id }
func (a *Attachment) InquiryID() uint       { return a.inquiryID }
func (a *Attachment) StorageKey() string    { return a.storageKey }
func (a *Attachment) Filename() string      { return a.filename }
func (a *Attachment) ContentType() string   { return a.contentType }
func (a *Attachment) Size() int64           { return a.size }
func (a *Attachment) UploadedAt() time.Time { return a.uploadedAt }

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}
