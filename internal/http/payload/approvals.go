package payload

import (
	"github.com/jellydator/validation"
)

type RequestApprovalRequest struct {
	Reason string `json:"reason"`
}

func (r RequestApprovalRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Reason, validation.Required),
	)
}

type ProcessApprovalRequest struct {
	Approved *bool  `json:"approved"`
	Reason   string `json:"reason"`
}

func (r ProcessApprovalRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Approved, validation.NotNil),
		validation.Field(&r.Reason, validation.Required),
	)
}
