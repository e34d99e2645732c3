package inquiry

import (
	"fmt"
	"time"
)

// Response is a timestamped entry in an inquiry's resolution log.
// Responses are immutable once created; internal responses are hidden from
// customer-facing views.
type Response struct {
	id          uint
	inquiryID   uint
	responderID uint
	content     string
	isInternal  bool
	createdAt   time.Time
}

func NewResponse(inquiryID, responderID uint, content string, isInternal bool) (*Response, error) {
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}
	if responderID == 0 {
		return nil, fmt.Errorf("responder ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > 5000 {
		return nil, fmt.Errorf("content exceeds maximum length of 5000 characters")
	}

	return &Response{
		inquiryID:   inquiryID,
		responderID: responderID,
		content:     content,
		isInternal:  isInternal,
		createdAt:   time.Now(),
	}, nil
}

func ReconstructResponse(
	id uint,
	inquiryID uint,
	responderID uint,
	content string,
	isInternal bool,
	createdAt time.Time,
) (*Response, error) {
	if id == 0 {
		return nil, fmt.Errorf("response ID cannot be zero")
	}
	if inquiryID == 0 {
		return nil, fmt.Errorf("inquiry ID is required")
	}

	return &Response{
		id:          id,
		inquiryID:   inquiryID,
		responderID: responderID,
		content:     content,
		isInternal:  isInternal,
		createdAt:   createdAt,
	}, nil
}

func (r *Response) ID() uint             { return r.id }
func (r *Response) InquiryID() uint      { return r.inquiryID }
func (r *Response) ResponderID() uint    { return r.responderID }
func (r *Response) Content() string      { return r.content }
func (r *Response) IsInternal() bool     { return r.isInternal }
func (r *Response) CreatedAt() time.Time { return r.createdAt }

func (r *Response) SetID(id uint) error {
	if r.id != 0 {
		return fmt.Errorf("response ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("response ID cannot be zero")
	}
	r.id = id
	return nil
}
